package repository

import (
	"errors"
	"time"

	"invoicing-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByUsername(username string) (*models.User, error) {
	if r.db == nil {
		return nil, ErrStoreUnavailable
	}
	var user models.User
	err := r.db.First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, persistenceErr(err)
	}
	return &user, nil
}

func (r *UserRepository) Create(user *models.User) error {
	if r.db == nil {
		return ErrStoreUnavailable
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	if err := r.db.Create(user).Error; err != nil {
		return persistenceErr(err)
	}
	return nil
}
