package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "opsboard/internal/errors"
	"opsboard/internal/dto"
	"opsboard/internal/services"
)

// ClientHandler exposes the client actions.
type ClientHandler struct {
	service *services.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(service *services.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// ClientRequest mirrors the client form. Only name is required; optional
// fields are passed through and nulled when blank.
type ClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

func (r ClientRequest) toInput() services.ClientInput {
	return services.ClientInput{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Company: r.Company,
	}
}

// CreateClient inserts one client.
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.Create(c.Request.Context(), req.toInput()); err != nil {
		respondActionError(c, http.StatusInternalServerError, err)
		return
	}

	respondSuccess(c)
}

// UpdateClient writes the full record for the given id.
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.Update(c.Request.Context(), c.Param("id"), req.toInput()); err != nil {
		respondActionError(c, http.StatusInternalServerError, err)
		return
	}

	respondSuccess(c)
}

// DeleteClient removes one client; its tasks are detached by the store.
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondActionError(c, http.StatusInternalServerError, err)
		return
	}

	respondSuccess(c)
}

// ListClients returns all clients, newest first.
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.service.List()
	if err != nil {
		respondDataError(c, err)
		return
	}

	respondData(c, clients)
}

// ClientOptions returns id+name pairs for the task form dropdown.
func (h *ClientHandler) ClientOptions(c *gin.Context) {
	clients, err := h.service.Options()
	if err != nil {
		respondDataError(c, err)
		return
	}

	respondData(c, dto.ClientOptions(clients))
}
