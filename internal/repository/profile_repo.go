package repository

import (
	"encoding/json"
	"errors"
	"time"

	"invoicing-backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Get(userID string) (*models.UserProfile, error) {
	if r.db == nil {
		return nil, ErrStoreUnavailable
	}
	var profile models.UserProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, persistenceErr(err)
	}
	return &profile, nil
}

// Save overwrites the whole settings document for the user. There is no
// merge: whatever the caller sends becomes the profile.
func (r *ProfileRepository) Save(userID string, settings map[string]interface{}) error {
	if r.db == nil {
		return ErrStoreUnavailable
	}
	raw, err := json.Marshal(settings)
	if err != nil {
		return persistenceErr(err)
	}
	profile := models.UserProfile{
		UserID:    userID,
		Settings:  datatypes.JSON(raw),
		UpdatedAt: time.Now(),
	}
	err = r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(&profile).Error
	if err != nil {
		return persistenceErr(err)
	}
	return nil
}
