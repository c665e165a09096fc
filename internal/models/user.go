package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a login credential record. Passwords are stored as bcrypt hashes.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"uniqueIndex"`
	PasswordHash string
	CreatedAt    time.Time `gorm:"autoCreateTime:false"`
}
