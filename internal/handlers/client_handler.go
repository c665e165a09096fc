package handlers

import (
	"errors"
	"net/http"

	"invoicing-backend/internal/models"
	"invoicing-backend/internal/repository"
	"invoicing-backend/internal/services/clients"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ClientHandler struct {
	clients *clients.Service
	log     *zap.Logger
}

func NewClientHandler(service *clients.Service, log *zap.Logger) *ClientHandler {
	return &ClientHandler{clients: service, log: log}
}

// Page handles GET /clients.
func (h *ClientHandler) Page(c *gin.Context) {
	c.HTML(http.StatusOK, "clients.html", gin.H{
		"Clients": h.clients.ListClients(),
	})
}

// List handles GET /api/clients.
func (h *ClientHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"clients": apiClients(h.clients.ListClients())})
}

type createClientRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Company string `json:"company"`
}

// Create handles POST /api/clients.
func (h *ClientHandler) Create(c *gin.Context) {
	var req createClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid payload"})
		return
	}
	client, err := h.clients.CreateClient(models.Client{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Company: req.Company,
	})
	if err != nil {
		h.log.Error("saving client failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to save client"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "client": apiClient(*client)})
}

// Get handles GET /api/clients/:id.
func (h *ClientHandler) Get(c *gin.Context) {
	client, err := h.clients.GetClient(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, apiClient(*client))
}

// Update handles PUT /api/clients/:id. The body is a partial record; unknown
// keys and server-owned fields are discarded before the merge.
func (h *ClientHandler) Update(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid payload"})
		return
	}

	id := c.Param("id")
	err := h.clients.UpdateClient(id, payload)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Client not found"})
		return
	case err != nil:
		h.log.Error("updating client failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update client"})
		return
	}

	client, err := h.clients.GetClient(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "client": apiClient(*client)})
}

// Delete handles DELETE /api/clients/:id.
func (h *ClientHandler) Delete(c *gin.Context) {
	err := h.clients.DeleteClient(c.Param("id"))
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Client not found"})
	case err != nil:
		h.log.Error("deleting client failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete client"})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// Search handles GET /api/clients/search?q=.
func (h *ClientHandler) Search(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"clients": apiClients(h.clients.Search(c.Query("q")))})
}
