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

// OpportunityHandler handles HTTP requests for opportunity operations
type OpportunityHandler struct {
	opportunityService service.OpportunityServiceInterface
	log                *logger.Logger
}

// NewOpportunityHandler creates a new opportunity handler
func NewOpportunityHandler(opportunityService service.OpportunityServiceInterface, log *logger.Logger) *OpportunityHandler {
	return &OpportunityHandler{
		opportunityService: opportunityService,
		log:                log,
	}
}

// CreateOpportunity handles POST /opportunities
// @Summary Create a new opportunity
// @Description Creates an opportunity; its probability is resolved from the pipeline stage
// @Tags opportunities
// @Accept json
// @Produce json
// @Param opportunity body service.CreateOpportunityRequest true "Opportunity data"
// @Success 201 {object} Envelope "Successfully created opportunity"
// @Failure 400 {object} Envelope "Invalid request body"
// @Failure 404 {object} Envelope "Pipeline or customer not found"
// @Security BearerAuth
// @Router /opportunities [post]
func (h *OpportunityHandler) CreateOpportunity(c *gin.Context) {
	var req service.CreateOpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	callerID, _ := auth.GetUserID(c)
	opportunity, err := h.opportunityService.Create(&req, callerID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	middleware.RecordOpportunityCreated()
	respond(c, http.StatusCreated, opportunity)
}

// GetOpportunity handles GET /opportunities/:id
// @Summary Get opportunity by ID
// @Description Returns the opportunity with its customer, pipeline and salesperson
// @Tags opportunities
// @Produce json
// @Param id path string true "Opportunity ID (UUID)"
// @Success 200 {object} Envelope "Successfully retrieved opportunity"
// @Failure 404 {object} Envelope "Opportunity not found"
// @Security BearerAuth
// @Router /opportunities/{id} [get]
func (h *OpportunityHandler) GetOpportunity(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	opportunity, err := h.opportunityService.GetByID(id)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, opportunity)
}

// ListOpportunities handles GET /opportunities
// @Summary List opportunities
// @Description List opportunities the caller owns or created, with filters and pagination
// @Tags opportunities
// @Produce json
// @Param status query string false "Opportunity status" default(open)
// @Param stage query string false "Stage name"
// @Param pipelineId query string false "Pipeline ID (UUID)"
// @Param teamId query string false "Team ID (UUID)"
// @Param salespersonId query string false "Salesperson ID (UUID)"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} Envelope "Successfully retrieved opportunities"
// @Security BearerAuth
// @Router /opportunities [get]
func (h *OpportunityHandler) ListOpportunities(c *gin.Context) {
	callerID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	page, limit := parsePagination(c)

	// Reads are always scoped to records where the caller is the
	// salesperson or the creator.
	filter := repository.OpportunityFilter{
		OwnerID:       &callerID,
		Status:        c.DefaultQuery("status", "open"),
		Stage:         c.Query("stage"),
		PipelineID:    parseUUIDQuery(c, "pipelineId"),
		TeamID:        parseUUIDQuery(c, "teamId"),
		SalespersonID: parseUUIDQuery(c, "salespersonId"),
	}

	opportunities, pagination, err := h.opportunityService.List(filter, page, limit)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respondList(c, opportunities, pagination)
}

// UpdateOpportunity handles PUT /opportunities/:id
// @Summary Update an opportunity
// @Description Partial update by the salesperson or creator; a stage change re-resolves the probability
// @Tags opportunities
// @Accept json
// @Produce json
// @Param id path string true "Opportunity ID (UUID)"
// @Param opportunity body service.UpdateOpportunityRequest true "Fields to update"
// @Success 200 {object} Envelope "Successfully updated opportunity"
// @Failure 403 {object} Envelope "Caller does not own the opportunity"
// @Failure 404 {object} Envelope "Opportunity not found"
// @Security BearerAuth
// @Router /opportunities/{id} [put]
func (h *OpportunityHandler) UpdateOpportunity(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateOpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	callerID, _ := auth.GetUserID(c)
	opportunity, err := h.opportunityService.Update(id, &req, callerID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, opportunity)
}

// DeleteOpportunity handles DELETE /opportunities/:id
// @Summary Delete an opportunity
// @Description Hard delete by the salesperson or creator
// @Tags opportunities
// @Produce json
// @Param id path string true "Opportunity ID (UUID)"
// @Success 200 {object} Envelope "Successfully deleted opportunity"
// @Failure 403 {object} Envelope "Caller does not own the opportunity"
// @Failure 404 {object} Envelope "Opportunity not found"
// @Security BearerAuth
// @Router /opportunities/{id} [delete]
func (h *OpportunityHandler) DeleteOpportunity(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	callerID, _ := auth.GetUserID(c)
	if err := h.opportunityService.Delete(id, callerID); err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, Envelope{Status: "success", Message: "Opportunity deleted"})
}

// GetOpportunityStats handles GET /opportunities/stats/overview
// @Summary Opportunity statistics
// @Description Counts, totals and weighted totals for the caller's opportunities grouped by status
// @Tags opportunities
// @Produce json
// @Param teamId query string false "Team ID (UUID)"
// @Param salespersonId query string false "Salesperson ID (UUID)"
// @Success 200 {object} Envelope "Successfully retrieved statistics"
// @Security BearerAuth
// @Router /opportunities/stats/overview [get]
func (h *OpportunityHandler) GetOpportunityStats(c *gin.Context) {
	callerID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	stats, err := h.opportunityService.StatsOverview(callerID, parseUUIDQuery(c, "teamId"), parseUUIDQuery(c, "salespersonId"))
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, stats)
}
