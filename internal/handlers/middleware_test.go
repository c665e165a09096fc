package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireLoginRedirectsAnonymous(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-secret"))
	r := gin.New()
	r.GET("/", RequireLogin(store), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRequireLoginPassesAuthenticatedSession(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-secret"))
	r := gin.New()
	r.GET("/", RequireLogin(store), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(contextUserKey))
	})

	// establish a session the way the login handler does
	seed := httptest.NewRequest(http.MethodGet, "/", nil)
	seedRec := httptest.NewRecorder()
	session, _ := store.Get(seed, sessionName)
	session.Values["authenticated"] = true
	session.Values["username"] = "alice"
	require.NoError(t, session.Save(seed, seedRec))
	cookie := seedRec.Header().Get("Set-Cookie")
	require.NotEmpty(t, cookie)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Cookie", cookie)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", rec.Body.String())
}

func TestRequireLoginRejectsLoggedOutSession(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-secret"))
	r := gin.New()
	r.GET("/", RequireLogin(store), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	seed := httptest.NewRequest(http.MethodGet, "/", nil)
	seedRec := httptest.NewRecorder()
	session, _ := store.Get(seed, sessionName)
	session.Values["authenticated"] = false
	require.NoError(t, session.Save(seed, seedRec))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Cookie", seedRec.Header().Get("Set-Cookie"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
}
