package invoicing

import (
	"errors"
	"fmt"
	"time"

	"invoicing-backend/internal/models"

	"go.uber.org/zap"
)

// Store is the slice of the invoice repository the lifecycle manager needs.
type Store interface {
	Create(inv *models.Invoice) error
	GetByID(id string) (*models.Invoice, error)
	List() []models.Invoice
	UpdateStatus(id, status string) error
	Delete(id string) error
}

// NumberFunc derives an invoice number from the creation time. DefaultNumber
// keeps the historical INV-NNNN scheme (epoch seconds mod 10000). It is not
// collision-free under concurrent creation, which is why the strategy is
// replaceable.
type NumberFunc func(t time.Time) string

func DefaultNumber(t time.Time) string {
	return fmt.Sprintf("INV-%04d", t.Unix()%10000)
}

var ErrEmptyStatus = errors.New("status must not be empty")

type Service struct {
	store  Store
	number NumberFunc
	log    *zap.Logger
	now    func() time.Time
}

func NewService(store Store, log *zap.Logger) *Service {
	return &Service{
		store:  store,
		number: DefaultNumber,
		log:    log,
		now:    time.Now,
	}
}

// WithNumberFunc swaps the invoice numbering strategy.
func (s *Service) WithNumberFunc(fn NumberFunc) *Service {
	s.number = fn
	return s
}

// CreateInvoice assigns the invoice number and forces the initial status to
// draft, whatever the caller supplied.
func (s *Service) CreateInvoice(inv models.Invoice) (*models.Invoice, error) {
	inv.InvoiceNumber = s.number(s.now())
	inv.Status = models.StatusDraft
	if err := s.store.Create(&inv); err != nil {
		return nil, err
	}
	s.log.Info("invoice created",
		zap.String("id", inv.ID.String()),
		zap.String("invoiceNumber", inv.InvoiceNumber),
	)
	return &inv, nil
}

func (s *Service) GetInvoice(id string) (*models.Invoice, error) {
	return s.store.GetByID(id)
}

func (s *Service) ListInvoices() []models.Invoice {
	return s.store.List()
}

// UpdateStatus writes the new status and returns the freshly fetched record.
// Only presence is validated; the stored set of statuses is open-ended.
func (s *Service) UpdateStatus(id, status string) (*models.Invoice, error) {
	if status == "" {
		return nil, ErrEmptyStatus
	}
	if err := s.store.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	return s.store.GetByID(id)
}

// IsOverdue reports whether a non-draft, unpaid invoice is past its due date.
// A missing or unparsable due date counts as not overdue.
func (s *Service) IsOverdue(inv models.Invoice) bool {
	if inv.Status == models.StatusPaid || inv.Status == models.StatusDraft {
		return false
	}
	if inv.DueDate == "" {
		return false
	}
	due, err := time.Parse("2006-01-02", inv.DueDate)
	if err != nil {
		return false
	}
	return s.now().After(due)
}

// Stats are the dashboard aggregates.
type Stats struct {
	Count   int     `json:"count"`
	Total   float64 `json:"total"`
	Draft   int     `json:"draft"`
	Sent    int     `json:"sent"`
	Paid    int     `json:"paid"`
	Overdue int     `json:"overdue"`
}

// ComputeStats never fails: an empty or partially loaded list yields zeroed
// aggregates, which is exactly what the dashboard renders under data loss.
func (s *Service) ComputeStats(invoices []models.Invoice) Stats {
	var stats Stats
	for _, inv := range invoices {
		stats.Count++
		stats.Total += inv.Total
		switch inv.Status {
		case models.StatusDraft:
			stats.Draft++
		case models.StatusSent:
			stats.Sent++
		case models.StatusPaid:
			stats.Paid++
		}
		if s.IsOverdue(inv) {
			stats.Overdue++
		}
	}
	return stats
}
