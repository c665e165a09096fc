package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Invoice statuses. Overdue is derived from the due date, never stored.
const (
	StatusDraft = "draft"
	StatusSent  = "sent"
	StatusPaid  = "paid"
)

// LineItem is a single invoice line. Items are caller-supplied and stored as
// one JSONB value to keep the record shape flexible.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

type Invoice struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	InvoiceNumber string    `gorm:"index"`
	Status        string    `gorm:"index"`
	ClientName    string
	ClientEmail   string
	ClientAddress string
	DueDate       string // optional, YYYY-MM-DD
	Notes         string
	Items         datatypes.JSONSlice[LineItem]
	Total         float64
	CreatedAt     time.Time  `gorm:"autoCreateTime:false"`
	UpdatedAt     *time.Time `gorm:"autoUpdateTime:false"`
}
