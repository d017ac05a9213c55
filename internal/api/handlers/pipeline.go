package handlers

import (
	"net/http"
	"strconv"

	"calyx-crm-backend/internal/auth"
	"calyx-crm-backend/internal/logger"
	"calyx-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PipelineHandler handles HTTP requests for pipeline operations
type PipelineHandler struct {
	pipelineService service.PipelineServiceInterface
	log             *logger.Logger
}

// NewPipelineHandler creates a new pipeline handler
func NewPipelineHandler(pipelineService service.PipelineServiceInterface, log *logger.Logger) *PipelineHandler {
	return &PipelineHandler{
		pipelineService: pipelineService,
		log:             log,
	}
}

// CreatePipeline handles POST /pipeline
// @Summary Create a new pipeline
// @Description Creates a pipeline with its ordered stages and probabilities
// @Tags pipeline
// @Accept json
// @Produce json
// @Param pipeline body service.CreatePipelineRequest true "Pipeline data"
// @Success 201 {object} Envelope "Successfully created pipeline"
// @Failure 400 {object} Envelope "Invalid request body"
// @Security BearerAuth
// @Router /pipeline [post]
func (h *PipelineHandler) CreatePipeline(c *gin.Context) {
	var req service.CreatePipelineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	callerID, _ := auth.GetUserID(c)
	pipeline, err := h.pipelineService.Create(&req, callerID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusCreated, pipeline)
}

// GetPipeline handles GET /pipeline/:id
// @Summary Get pipeline by ID
// @Description Returns the pipeline with its open opportunities grouped by stage
// @Tags pipeline
// @Produce json
// @Param id path string true "Pipeline ID (UUID)"
// @Success 200 {object} Envelope "Successfully retrieved pipeline"
// @Failure 404 {object} Envelope "Pipeline not found"
// @Security BearerAuth
// @Router /pipeline/{id} [get]
func (h *PipelineHandler) GetPipeline(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	detail, err := h.pipelineService.GetByID(id)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, detail)
}

// ListPipelines handles GET /pipeline
// @Summary List pipelines
// @Tags pipeline
// @Produce json
// @Param includeInactive query bool false "Include retired pipelines"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} Envelope "Successfully retrieved pipelines"
// @Security BearerAuth
// @Router /pipeline [get]
func (h *PipelineHandler) ListPipelines(c *gin.Context) {
	page, limit := parsePagination(c)
	includeInactive, _ := strconv.ParseBool(c.DefaultQuery("includeInactive", "false"))

	pipelines, pagination, err := h.pipelineService.List(!includeInactive, page, limit)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respondList(c, pipelines, pagination)
}

// ListPipelineOpportunities handles GET /pipeline/:id/opportunities
// @Summary List opportunities on a pipeline
// @Description Opportunities on the pipeline, optionally narrowed to a stage and a status
// @Tags pipeline
// @Produce json
// @Param id path string true "Pipeline ID (UUID)"
// @Param stage query string false "Filter by stage name"
// @Param status query string false "Filter by status" default(open)
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} Envelope "Successfully retrieved opportunities"
// @Failure 404 {object} Envelope "Pipeline not found"
// @Security BearerAuth
// @Router /pipeline/{id}/opportunities [get]
func (h *PipelineHandler) ListPipelineOpportunities(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	page, limit := parsePagination(c)
	stage := c.Query("stage")
	status := c.DefaultQuery("status", "open")

	opportunities, pagination, err := h.pipelineService.ListOpportunities(id, stage, status, page, limit)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respondList(c, opportunities, pagination)
}

// UpdatePipeline handles PUT /pipeline/:id
// @Summary Update a pipeline
// @Description Partial update; a supplied stage list replaces the previous one
// @Tags pipeline
// @Accept json
// @Produce json
// @Param id path string true "Pipeline ID (UUID)"
// @Param pipeline body service.UpdatePipelineRequest true "Fields to update"
// @Success 200 {object} Envelope "Successfully updated pipeline"
// @Failure 404 {object} Envelope "Pipeline not found"
// @Security BearerAuth
// @Router /pipeline/{id} [put]
func (h *PipelineHandler) UpdatePipeline(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdatePipelineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	pipeline, err := h.pipelineService.Update(id, &req)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, pipeline)
}

// DeletePipeline handles DELETE /pipeline/:id
// @Summary Delete a pipeline
// @Description Hard delete, refused while opportunities still reference the pipeline
// @Tags pipeline
// @Produce json
// @Param id path string true "Pipeline ID (UUID)"
// @Success 200 {object} Envelope "Successfully deleted pipeline"
// @Failure 404 {object} Envelope "Pipeline not found"
// @Failure 400 {object} Envelope "Pipeline still has opportunities"
// @Security BearerAuth
// @Router /pipeline/{id} [delete]
func (h *PipelineHandler) DeletePipeline(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.pipelineService.Delete(id); err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, Envelope{Status: "success", Message: "Pipeline deleted"})
}

// GetPipelineStats handles GET /pipeline/stats/overview
// @Summary Pipeline statistics
// @Description Open opportunity counts, totals and weighted totals per stage
// @Tags pipeline
// @Produce json
// @Param teamId query string false "Team ID (UUID)"
// @Param salespersonId query string false "Salesperson ID (UUID)"
// @Success 200 {object} Envelope "Successfully retrieved statistics"
// @Security BearerAuth
// @Router /pipeline/stats/overview [get]
func (h *PipelineHandler) GetPipelineStats(c *gin.Context) {
	stats, err := h.pipelineService.StatsOverview(parseUUIDQuery(c, "teamId"), parseUUIDQuery(c, "salespersonId"))
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, stats)
}
