package handlers

import (
	"encoding/json"
	"testing"
	"time"

	"invoicing-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInvoice() models.Invoice {
	return models.Invoice{
		ID:            uuid.MustParse("5a2f0d08-0d6a-4bb4-9146-9f2894c36a0f"),
		InvoiceNumber: "INV-0042",
		Status:        models.StatusSent,
		ClientName:    "Acme",
		ClientEmail:   "billing@acme.test",
		DueDate:       "2026-07-01",
		Items: []models.LineItem{
			{Description: "Widgets", Quantity: 3, UnitPrice: 25},
		},
		Total:     75,
		CreatedAt: time.Date(2026, 6, 1, 10, 30, 0, 0, time.UTC),
	}
}

func TestAPIInvoiceTimestampsAreISO8601(t *testing.T) {
	inv := sampleInvoice()
	out := apiInvoice(inv)

	assert.Equal(t, "2026-06-01T10:30:00Z", out.CreatedAt)
	assert.Empty(t, out.UpdatedAt)

	updated := time.Date(2026, 6, 2, 9, 0, 0, 0, time.UTC)
	inv.UpdatedAt = &updated
	assert.Equal(t, "2026-06-02T09:00:00Z", apiInvoice(inv).UpdatedAt)
}

func TestAPIInvoiceKeepsItemsFieldName(t *testing.T) {
	raw, err := json.Marshal(apiInvoice(sampleInvoice()))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "items")
	assert.NotContains(t, decoded, "invoice_items")
	assert.Contains(t, decoded, "invoiceNumber")
}

func TestAPIInvoiceNilItemsBecomeEmptyList(t *testing.T) {
	inv := sampleInvoice()
	inv.Items = nil

	out := apiInvoice(inv)
	require.NotNil(t, out.Items)
	assert.Empty(t, out.Items)

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"items":[]`)
}

func TestViewInvoicePassesNativeTimestamps(t *testing.T) {
	inv := sampleInvoice()
	out := viewInvoice(inv)

	assert.Equal(t, inv.CreatedAt, out.CreatedAt)
	assert.Nil(t, out.UpdatedAt)
	assert.Equal(t, []models.LineItem(inv.Items), out.InvoiceItems)
	assert.Equal(t, inv.ClientName, out.Client)
}

func TestAPIClientOmitsUpdatedAtUntilFirstUpdate(t *testing.T) {
	client := models.Client{
		ID:        uuid.New(),
		Name:      "Acme",
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	raw, err := json.Marshal(apiClient(client))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "updatedAt")
	assert.Contains(t, string(raw), `"createdAt":"2026-01-01T00:00:00Z"`)
}
