package handlers

import (
	"net/http"

	"calyx-crm-backend/internal/api/middleware"
	"calyx-crm-backend/internal/auth"
	"calyx-crm-backend/internal/logger"
	"calyx-crm-backend/internal/repository"
	"calyx-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LeadHandler handles HTTP requests for lead operations
type LeadHandler struct {
	leadService service.LeadServiceInterface
	log         *logger.Logger
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService service.LeadServiceInterface, log *logger.Logger) *LeadHandler {
	return &LeadHandler{
		leadService: leadService,
		log:         log,
	}
}

// CreateLead handles POST /leads
// @Summary Create a new lead
// @Tags leads
// @Accept json
// @Produce json
// @Param lead body service.CreateLeadRequest true "Lead data"
// @Success 201 {object} Envelope "Successfully created lead"
// @Failure 400 {object} Envelope "Invalid request body"
// @Security BearerAuth
// @Router /leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var req service.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	callerID, _ := auth.GetUserID(c)
	lead, err := h.leadService.Create(&req, callerID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusCreated, lead)
}

// GetLead handles GET /leads/:id
// @Summary Get lead by ID
// @Tags leads
// @Produce json
// @Param id path string true "Lead ID (UUID)"
// @Success 200 {object} Envelope "Successfully retrieved lead"
// @Failure 404 {object} Envelope "Lead not found"
// @Security BearerAuth
// @Router /leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	lead, err := h.leadService.GetByID(id)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, lead)
}

// ListLeads handles GET /leads
// @Summary List leads
// @Description List active leads with search, filters, sorting and pagination
// @Tags leads
// @Produce json
// @Param search query string false "Matches name, email or company"
// @Param status query string false "Lead status"
// @Param source query string false "Lead source"
// @Param assignedTo query string false "Assignee ID (UUID)"
// @Param teamId query string false "Team ID (UUID)"
// @Param sortBy query string false "Sort column"
// @Param sortOrder query string false "asc or desc"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} Envelope "Successfully retrieved leads"
// @Security BearerAuth
// @Router /leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	page, limit := parsePagination(c)
	filter := repository.LeadFilter{
		Search:       c.Query("search"),
		Status:       c.Query("status"),
		Source:       c.Query("source"),
		AssignedToID: parseUUIDQuery(c, "assignedTo"),
		TeamID:       parseUUIDQuery(c, "teamId"),
		SortBy:       c.Query("sortBy"),
		SortOrder:    c.Query("sortOrder"),
	}

	leads, pagination, err := h.leadService.List(filter, page, limit)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respondList(c, leads, pagination)
}

// UpdateLead handles PUT /leads/:id
// @Summary Update a lead
// @Description Partial update; omitted fields are preserved
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID (UUID)"
// @Param lead body service.UpdateLeadRequest true "Fields to update"
// @Success 200 {object} Envelope "Successfully updated lead"
// @Failure 404 {object} Envelope "Lead not found"
// @Security BearerAuth
// @Router /leads/{id} [put]
func (h *LeadHandler) UpdateLead(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	lead, err := h.leadService.Update(id, &req)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, lead)
}

// ConvertLead handles POST /leads/:id/convert
// @Summary Convert a lead to a customer
// @Description Creates a customer from the lead; a lead converts at most once
// @Tags leads
// @Produce json
// @Param id path string true "Lead ID (UUID)"
// @Success 200 {object} Envelope "Successfully converted lead"
// @Failure 404 {object} Envelope "Lead not found"
// @Failure 400 {object} Envelope "Lead already converted"
// @Security BearerAuth
// @Router /leads/{id}/convert [post]
func (h *LeadHandler) ConvertLead(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	callerID, _ := auth.GetUserID(c)
	result, err := h.leadService.Convert(id, callerID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	middleware.RecordLeadConverted()
	respond(c, http.StatusOK, result)
}

// DeleteLead handles DELETE /leads/:id
// @Summary Delete a lead
// @Description Soft delete; the lead disappears from listings
// @Tags leads
// @Produce json
// @Param id path string true "Lead ID (UUID)"
// @Success 200 {object} Envelope "Successfully deleted lead"
// @Failure 404 {object} Envelope "Lead not found"
// @Security BearerAuth
// @Router /leads/{id} [delete]
func (h *LeadHandler) DeleteLead(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.leadService.Delete(id); err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, Envelope{Status: "success", Message: "Lead deleted"})
}
