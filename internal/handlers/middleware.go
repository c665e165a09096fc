package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

const (
	sessionName = "invoicing-session"

	// contextUserKey carries the logged-in username through a request.
	contextUserKey = "username"
)

// RequireLogin guards pages and API routes alike. Anonymous requests are
// redirected to the login page, matching browser-first navigation, rather
// than answered with an API error.
func RequireLogin(store sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, _ := store.Get(c.Request, sessionName)
		authed, ok := session.Values["authenticated"].(bool)
		if !ok || !authed {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		if username, ok := session.Values["username"].(string); ok {
			c.Set(contextUserKey, username)
		}
		c.Next()
	}
}
