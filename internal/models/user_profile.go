package models

import (
	"time"

	"gorm.io/datatypes"
)

// UserProfile holds free-form per-user settings. Saves overwrite the whole
// settings document, they never merge.
type UserProfile struct {
	UserID    string `gorm:"primaryKey"`
	Settings  datatypes.JSON
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}
