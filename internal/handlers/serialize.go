package handlers

import (
	"time"

	"invoicing-backend/internal/models"
)

// Two serialization targets with different rules. The JSON API converts
// timestamps to ISO-8601 strings and keeps the original "items" field name.
// The template path passes native time values through and exposes the line
// items under InvoiceItems for the rendering context.

type invoiceJSON struct {
	ID            string            `json:"id"`
	InvoiceNumber string            `json:"invoiceNumber"`
	Status        string            `json:"status"`
	Client        string            `json:"client"`
	ClientEmail   string            `json:"clientEmail"`
	ClientAddress string            `json:"clientAddress,omitempty"`
	DueDate       string            `json:"dueDate,omitempty"`
	Notes         string            `json:"notes,omitempty"`
	Items         []models.LineItem `json:"items"`
	Total         float64           `json:"total"`
	CreatedAt     string            `json:"createdAt"`
	UpdatedAt     string            `json:"updatedAt,omitempty"`
}

func apiInvoice(inv models.Invoice) invoiceJSON {
	out := invoiceJSON{
		ID:            inv.ID.String(),
		InvoiceNumber: inv.InvoiceNumber,
		Status:        inv.Status,
		Client:        inv.ClientName,
		ClientEmail:   inv.ClientEmail,
		ClientAddress: inv.ClientAddress,
		DueDate:       inv.DueDate,
		Notes:         inv.Notes,
		Items:         inv.Items,
		Total:         inv.Total,
		CreatedAt:     inv.CreatedAt.Format(time.RFC3339),
	}
	if out.Items == nil {
		out.Items = []models.LineItem{}
	}
	if inv.UpdatedAt != nil {
		out.UpdatedAt = inv.UpdatedAt.Format(time.RFC3339)
	}
	return out
}

func apiInvoices(invoices []models.Invoice) []invoiceJSON {
	out := make([]invoiceJSON, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, apiInvoice(inv))
	}
	return out
}

type invoiceView struct {
	ID            string
	InvoiceNumber string
	Status        string
	Client        string
	ClientEmail   string
	ClientAddress string
	DueDate       string
	Notes         string
	InvoiceItems  []models.LineItem
	Total         float64
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

func viewInvoice(inv models.Invoice) invoiceView {
	return invoiceView{
		ID:            inv.ID.String(),
		InvoiceNumber: inv.InvoiceNumber,
		Status:        inv.Status,
		Client:        inv.ClientName,
		ClientEmail:   inv.ClientEmail,
		ClientAddress: inv.ClientAddress,
		DueDate:       inv.DueDate,
		Notes:         inv.Notes,
		InvoiceItems:  inv.Items,
		Total:         inv.Total,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
}

func viewInvoices(invoices []models.Invoice) []invoiceView {
	out := make([]invoiceView, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, viewInvoice(inv))
	}
	return out
}

type clientJSON struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Company   string `json:"company"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

func apiClient(client models.Client) clientJSON {
	out := clientJSON{
		ID:        client.ID.String(),
		Name:      client.Name,
		Email:     client.Email,
		Phone:     client.Phone,
		Address:   client.Address,
		Company:   client.Company,
		CreatedAt: client.CreatedAt.Format(time.RFC3339),
	}
	if client.UpdatedAt != nil {
		out.UpdatedAt = client.UpdatedAt.Format(time.RFC3339)
	}
	return out
}

func apiClients(clientList []models.Client) []clientJSON {
	out := make([]clientJSON, 0, len(clientList))
	for _, c := range clientList {
		out = append(out, apiClient(c))
	}
	return out
}
