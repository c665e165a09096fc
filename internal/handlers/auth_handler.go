package handlers

import (
	"errors"
	"net/http"

	"invoicing-backend/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

type AuthHandler struct {
	auth     *auth.Service
	sessions sessions.Store
	log      *zap.Logger
}

func NewAuthHandler(a *auth.Service, store sessions.Store, log *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: a, sessions: store, log: log}
}

func (h *AuthHandler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if err := h.auth.Verify(username, password); err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			h.log.Error("credential check failed", zap.Error(err))
		}
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"Error": "Invalid username or password",
		})
		return
	}

	session, _ := h.sessions.Get(c.Request, sessionName)
	session.Values["authenticated"] = true
	session.Values["username"] = username
	session.Options.Path = "/"
	if err := session.Save(c.Request, c.Writer); err != nil {
		h.log.Error("saving session failed", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Error": "Could not start a session",
		})
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session, _ := h.sessions.Get(c.Request, sessionName)
	session.Values["authenticated"] = false
	delete(session.Values, "username")
	session.Options.MaxAge = -1
	_ = session.Save(c.Request, c.Writer)
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *AuthHandler) RegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{})
}

func (h *AuthHandler) Register(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	err := h.auth.Register(username, password)
	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, "/login")
	case errors.Is(err, auth.ErrUserExists):
		c.HTML(http.StatusConflict, "register.html", gin.H{
			"Error": "Username already taken",
		})
	case errors.Is(err, auth.ErrMissingFields):
		c.HTML(http.StatusBadRequest, "register.html", gin.H{
			"Error": "Username and password are required",
		})
	default:
		h.log.Error("registration failed", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "register.html", gin.H{
			"Error": "Registration failed, try again",
		})
	}
}
