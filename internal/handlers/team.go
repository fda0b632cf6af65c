package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opsboard/internal/dto"
	apierrors "opsboard/internal/errors"
	"opsboard/internal/services"
)

// TeamHandler exposes the team-member actions.
type TeamHandler struct {
	service *services.TeamService
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(service *services.TeamService) *TeamHandler {
	return &TeamHandler{service: service}
}

// TeamMemberRequest mirrors the team-member form.
type TeamMemberRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
}

func (r TeamMemberRequest) toInput() services.TeamMemberInput {
	return services.TeamMemberInput{
		Name:  r.Name,
		Email: r.Email,
		Role:  r.Role,
		Phone: r.Phone,
	}
}

// CreateTeamMember inserts one team member.
func (h *TeamHandler) CreateTeamMember(c *gin.Context) {
	var req TeamMemberRequest
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

// UpdateTeamMember writes the full record for the given id.
func (h *TeamHandler) UpdateTeamMember(c *gin.Context) {
	var req TeamMemberRequest
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

// DeleteTeamMember removes one member; their tasks are unassigned, not deleted.
func (h *TeamHandler) DeleteTeamMember(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondActionError(c, http.StatusInternalServerError, err)
		return
	}

	respondSuccess(c)
}

// ListTeamMembers returns all members, newest first.
func (h *TeamHandler) ListTeamMembers(c *gin.Context) {
	members, err := h.service.List()
	if err != nil {
		respondDataError(c, err)
		return
	}

	respondData(c, members)
}

// TeamMemberOptions returns id+name pairs for the task form dropdown.
func (h *TeamHandler) TeamMemberOptions(c *gin.Context) {
	members, err := h.service.Options()
	if err != nil {
		respondDataError(c, err)
		return
	}

	respondData(c, dto.TeamMemberOptions(members))
}
