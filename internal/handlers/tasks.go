package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"opsboard/internal/dto"
	apierrors "opsboard/internal/errors"
	"opsboard/internal/models"
	"opsboard/internal/services"
)

// TaskHandler exposes the task actions.
type TaskHandler struct {
	service *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(service *services.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// TaskRequest mirrors the task form. DueDate arrives in the datetime-local
// input format; a blank status defaults to pending at the store.
type TaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"omitempty,oneof=pending in_progress completed"`
	DueDate     string `json:"due_date"`
	ClientID    string `json:"client_id"`
	AssignedTo  string `json:"assigned_to"`
}

func (r TaskRequest) toInput() services.TaskInput {
	return services.TaskInput{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		DueDate:     r.DueDate,
		ClientID:    r.ClientID,
		AssignedTo:  r.AssignedTo,
	}
}

// CreateTask inserts one task.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.Create(c.Request.Context(), req.toInput()); err != nil {
		if errors.Is(err, services.ErrInvalidDueDate) {
			respondActionError(c, http.StatusBadRequest, err)
			return
		}
		respondActionError(c, http.StatusInternalServerError, err)
		return
	}

	respondSuccess(c)
}

// UpdateTask writes the full record for the given id.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.Update(c.Request.Context(), c.Param("id"), req.toInput()); err != nil {
		if errors.Is(err, services.ErrInvalidDueDate) {
			respondActionError(c, http.StatusBadRequest, err)
			return
		}
		respondActionError(c, http.StatusInternalServerError, err)
		return
	}

	respondSuccess(c)
}

// UpdateTaskStatus changes only the status of a task, for the inline control.
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	type UpdateStatusRequest struct {
		Status string `json:"status" binding:"required,oneof=pending in_progress completed"`
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), models.TaskStatus(req.Status)); err != nil {
		respondActionError(c, http.StatusInternalServerError, err)
		return
	}

	respondSuccess(c)
}

// DeleteTask removes one task.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondActionError(c, http.StatusInternalServerError, err)
		return
	}

	respondSuccess(c)
}

// ListTasks returns all tasks, newest first, with client and assignee names.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.service.List()
	if err != nil {
		respondDataError(c, err)
		return
	}

	respondData(c, dto.ToTaskDTOs(tasks))
}
