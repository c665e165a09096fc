package repository

import (
	"errors"
	"time"

	"invoicing-backend/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewInvoiceRepository(db *gorm.DB, log *zap.Logger) *InvoiceRepository {
	return &InvoiceRepository{db: db, log: log}
}

// Create assigns the id and creation timestamp server-side and persists the
// invoice. The creation timestamp is set exactly once, here.
func (r *InvoiceRepository) Create(inv *models.Invoice) error {
	if r.db == nil {
		return ErrStoreUnavailable
	}
	inv.ID = uuid.New()
	inv.CreatedAt = time.Now()
	inv.UpdatedAt = nil
	if err := r.db.Create(inv).Error; err != nil {
		return persistenceErr(err)
	}
	return nil
}

// GetByID fetches a single invoice by id.
func (r *InvoiceRepository) GetByID(id string) (*models.Invoice, error) {
	if r.db == nil {
		return nil, ErrStoreUnavailable
	}
	var inv models.Invoice
	err := r.db.First(&inv, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, persistenceErr(err)
	}
	return &inv, nil
}

// List returns all invoices newest first. Any fault degrades to an empty
// list so the dashboard always renders.
func (r *InvoiceRepository) List() []models.Invoice {
	if r.db == nil {
		return []models.Invoice{}
	}
	var invoices []models.Invoice
	if err := r.db.Order("created_at DESC").Find(&invoices).Error; err != nil {
		r.log.Warn("listing invoices failed", zap.Error(err))
		return []models.Invoice{}
	}
	return invoices
}

// UpdateStatus writes the new status and stamps updatedAt. createdAt is never
// touched by an update.
func (r *InvoiceRepository) UpdateStatus(id, status string) error {
	if r.db == nil {
		return ErrStoreUnavailable
	}
	res := r.db.Model(&models.Invoice{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	if res.Error != nil {
		return persistenceErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *InvoiceRepository) Delete(id string) error {
	if r.db == nil {
		return ErrStoreUnavailable
	}
	res := r.db.Delete(&models.Invoice{}, "id = ?", id)
	if res.Error != nil {
		return persistenceErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
