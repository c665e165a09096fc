package repository

import (
	"errors"
	"time"

	"invoicing-backend/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ClientRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewClientRepository(db *gorm.DB, log *zap.Logger) *ClientRepository {
	return &ClientRepository{db: db, log: log}
}

func (r *ClientRepository) Create(client *models.Client) error {
	if r.db == nil {
		return ErrStoreUnavailable
	}
	client.ID = uuid.New()
	client.CreatedAt = time.Now()
	client.UpdatedAt = nil
	if err := r.db.Create(client).Error; err != nil {
		return persistenceErr(err)
	}
	return nil
}

func (r *ClientRepository) GetByID(id string) (*models.Client, error) {
	if r.db == nil {
		return nil, ErrStoreUnavailable
	}
	var client models.Client
	err := r.db.First(&client, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, persistenceErr(err)
	}
	return &client, nil
}

// List returns all clients newest first, degrading to empty on any fault.
func (r *ClientRepository) List() []models.Client {
	if r.db == nil {
		return []models.Client{}
	}
	var clientList []models.Client
	if err := r.db.Order("created_at DESC").Find(&clientList).Error; err != nil {
		r.log.Warn("listing clients failed", zap.Error(err))
		return []models.Client{}
	}
	return clientList
}

// Update merges the given fields into the stored record. Caller-supplied
// creation timestamps are dropped so the original createdAt survives every
// update, and updatedAt is stamped on each merge.
func (r *ClientRepository) Update(id string, fields map[string]interface{}) error {
	if r.db == nil {
		return ErrStoreUnavailable
	}
	fields = sanitizeClientFields(fields)
	res := r.db.Model(&models.Client{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return persistenceErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ClientRepository) Delete(id string) error {
	if r.db == nil {
		return ErrStoreUnavailable
	}
	res := r.db.Delete(&models.Client{}, "id = ?", id)
	if res.Error != nil {
		return persistenceErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func sanitizeClientFields(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	delete(out, "createdAt")
	delete(out, "created_at")
	delete(out, "id")
	out["updated_at"] = time.Now()
	return out
}
