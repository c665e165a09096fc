package mailer

import (
	"errors"

	"invoicing-backend/internal/models"

	"go.uber.org/zap"
)

// Mailer sends an invoice to its client. Implementations can be swapped for a
// real transport without touching the invoicing service.
type Mailer interface {
	SendInvoice(inv models.Invoice) error
}

var ErrNoSender = errors.New("sender credentials not configured")

// LogMailer is the default transport: it checks that sender credentials are
// configured and records the intent. Nothing leaves the process.
type LogMailer struct {
	SenderEmail    string
	SenderPassword string
	Log            *zap.Logger
}

func (m *LogMailer) SendInvoice(inv models.Invoice) error {
	if m.SenderEmail == "" || m.SenderPassword == "" {
		return ErrNoSender
	}
	m.Log.Info("invoice email queued",
		zap.String("invoiceNumber", inv.InvoiceNumber),
		zap.String("to", inv.ClientEmail),
		zap.String("from", m.SenderEmail),
	)
	return nil
}
