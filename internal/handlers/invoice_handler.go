package handlers

import (
	"errors"
	"net/http"

	"invoicing-backend/internal/models"
	"invoicing-backend/internal/repository"
	"invoicing-backend/internal/services/invoicing"
	"invoicing-backend/internal/services/mailer"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type InvoiceHandler struct {
	invoices *invoicing.Service
	mailer   mailer.Mailer
	log      *zap.Logger
}

func NewInvoiceHandler(invoices *invoicing.Service, mail mailer.Mailer, log *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices, mailer: mail, log: log}
}

type createInvoiceRequest struct {
	Client        string            `json:"client"`
	ClientEmail   string            `json:"clientEmail"`
	ClientAddress string            `json:"clientAddress"`
	DueDate       string            `json:"dueDate"`
	Notes         string            `json:"notes"`
	Status        string            `json:"status"` // ignored: new invoices always start as drafts
	Total         float64           `json:"total"`
	Items         []models.LineItem `json:"items"`
}

// Create handles POST /api/invoices.
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req createInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid payload"})
		return
	}

	inv, err := h.invoices.CreateInvoice(models.Invoice{
		ClientName:    req.Client,
		ClientEmail:   req.ClientEmail,
		ClientAddress: req.ClientAddress,
		DueDate:       req.DueDate,
		Notes:         req.Notes,
		Status:        req.Status,
		Total:         req.Total,
		Items:         req.Items,
	})
	if err != nil {
		h.log.Error("saving invoice failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to save invoice"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "invoice": apiInvoice(*inv)})
}

// List handles GET /api/invoices.
func (h *InvoiceHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"invoices": apiInvoices(h.invoices.ListInvoices())})
}

// Get handles GET /api/invoices/:id.
func (h *InvoiceHandler) Get(c *gin.Context) {
	inv, err := h.invoices.GetInvoice(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}
	c.JSON(http.StatusOK, apiInvoice(*inv))
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PUT /api/invoices/:id/status.
func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid payload"})
		return
	}

	inv, err := h.invoices.UpdateStatus(c.Param("id"), req.Status)
	switch {
	case errors.Is(err, invoicing.ErrEmptyStatus):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "status is required"})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Invoice not found"})
	case err != nil:
		h.log.Error("updating invoice failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update invoice"})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true, "invoice": apiInvoice(*inv)})
	}
}

// SendEmail handles POST /api/invoices/:id/send-email.
func (h *InvoiceHandler) SendEmail(c *gin.Context) {
	inv, err := h.invoices.GetInvoice(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Invoice not found"})
		return
	}
	if err := h.mailer.SendInvoice(*inv); err != nil {
		h.log.Warn("sending invoice email failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to send invoice"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Dashboard handles GET /: the invoice list plus aggregate stats. Under
// storage loss both degrade (empty list, zeroed stats) and the page still
// renders.
func (h *InvoiceHandler) Dashboard(c *gin.Context) {
	invoices := h.invoices.ListInvoices()
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Invoices": viewInvoices(invoices),
		"Stats":    h.invoices.ComputeStats(invoices),
	})
}

// CreateForm handles GET /create-invoice.
func (h *InvoiceHandler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "create_invoice.html", gin.H{})
}

// View handles GET /invoice/:id.
func (h *InvoiceHandler) View(c *gin.Context) {
	inv, err := h.invoices.GetInvoice(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "Invoice not found")
		return
	}
	c.HTML(http.StatusOK, "view_invoice.html", gin.H{
		"Invoice": viewInvoice(*inv),
		"Overdue": h.invoices.IsOverdue(*inv),
	})
}

// DebugView handles GET /debug/invoice-full/:id with a raw record dump.
func (h *InvoiceHandler) DebugView(c *gin.Context) {
	inv, err := h.invoices.GetInvoice(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "Invoice not found")
		return
	}
	c.IndentedJSON(http.StatusOK, inv)
}
