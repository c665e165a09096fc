package handlers

import (
	"net/http"
	"time"

	"invoicing-backend/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfileStore is the persistence slice the settings routes need.
type ProfileStore interface {
	Get(userID string) (*models.UserProfile, error)
	Save(userID string, settings map[string]interface{}) error
}

type SettingsHandler struct {
	profiles ProfileStore
	log      *zap.Logger
}

func NewSettingsHandler(profiles ProfileStore, log *zap.Logger) *SettingsHandler {
	return &SettingsHandler{profiles: profiles, log: log}
}

// Page handles GET /settings.
func (h *SettingsHandler) Page(c *gin.Context) {
	c.HTML(http.StatusOK, "settings.html", gin.H{
		"Username": c.GetString(contextUserKey),
	})
}

// GetProfile handles GET /api/settings/profile.
func (h *SettingsHandler) GetProfile(c *gin.Context) {
	profile, err := h.profiles.Get(c.GetString(contextUserKey))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"settings":  profile.Settings,
		"updatedAt": profile.UpdatedAt.Format(time.RFC3339),
	})
}

// SaveProfile handles POST /api/settings/profile. The payload replaces the
// stored settings document wholesale.
func (h *SettingsHandler) SaveProfile(c *gin.Context) {
	var settings map[string]interface{}
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid payload"})
		return
	}
	if err := h.profiles.Save(c.GetString(contextUserKey), settings); err != nil {
		h.log.Error("saving profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to save profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
