package handlers

import (
	"net/http"
	"time"

	"calyx-crm-backend/internal/auth"
	"calyx-crm-backend/internal/logger"
	"calyx-crm-backend/internal/repository"
	"calyx-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ActivityHandler handles HTTP requests for activity operations
type ActivityHandler struct {
	activityService service.ActivityServiceInterface
	log             *logger.Logger
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService service.ActivityServiceInterface, log *logger.Logger) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
		log:             log,
	}
}

// CreateActivity handles POST /activities
// @Summary Create a new activity
// @Description Creates an activity assigned to the caller unless an assignee is given
// @Tags activities
// @Accept json
// @Produce json
// @Param activity body service.CreateActivityRequest true "Activity data"
// @Success 201 {object} Envelope "Successfully created activity"
// @Failure 400 {object} Envelope "Invalid request body"
// @Security BearerAuth
// @Router /activities [post]
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	var req service.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	callerID, _ := auth.GetUserID(c)
	activity, err := h.activityService.Create(&req, callerID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusCreated, activity)
}

// GetActivity handles GET /activities/:id
// @Summary Get activity by ID
// @Tags activities
// @Produce json
// @Param id path string true "Activity ID (UUID)"
// @Success 200 {object} Envelope "Successfully retrieved activity"
// @Failure 404 {object} Envelope "Activity not found"
// @Security BearerAuth
// @Router /activities/{id} [get]
func (h *ActivityHandler) GetActivity(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	activity, err := h.activityService.GetByID(id)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, activity)
}

// ListActivities handles GET /activities
// @Summary List activities
// @Description List active activities with filters and pagination
// @Tags activities
// @Produce json
// @Param type query string false "Activity type"
// @Param status query string false "Activity status"
// @Param assignedTo query string false "Assignee ID (UUID)"
// @Param customerId query string false "Customer ID (UUID)"
// @Param teamId query string false "Team ID (UUID)"
// @Param dueDate query string false "Due on this day (RFC 3339 date)"
// @Param overdue query bool false "Only overdue pending activities"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} Envelope "Successfully retrieved activities"
// @Security BearerAuth
// @Router /activities [get]
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	page, limit := parsePagination(c)
	filter := repository.ActivityFilter{
		Type:         c.Query("type"),
		Status:       c.Query("status"),
		AssignedToID: parseUUIDQuery(c, "assignedTo"),
		CustomerID:   parseUUIDQuery(c, "customerId"),
		TeamID:       parseUUIDQuery(c, "teamId"),
		Overdue:      c.Query("overdue") == "true",
	}

	if raw := c.Query("dueDate"); raw != "" {
		if due, err := time.Parse("2006-01-02", raw); err == nil {
			filter.DueDate = &due
		}
	}

	activities, pagination, err := h.activityService.List(filter, page, limit)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respondList(c, activities, pagination)
}

// UpdateActivity handles PUT /activities/:id
// @Summary Update an activity
// @Description Partial update; completing an activity stamps the completion date
// @Tags activities
// @Accept json
// @Produce json
// @Param id path string true "Activity ID (UUID)"
// @Param activity body service.UpdateActivityRequest true "Fields to update"
// @Success 200 {object} Envelope "Successfully updated activity"
// @Failure 404 {object} Envelope "Activity not found"
// @Security BearerAuth
// @Router /activities/{id} [put]
func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	activity, err := h.activityService.Update(id, &req)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, activity)
}

// DeleteActivity handles DELETE /activities/:id
// @Summary Delete an activity
// @Description Soft delete; the activity disappears from listings
// @Tags activities
// @Produce json
// @Param id path string true "Activity ID (UUID)"
// @Success 200 {object} Envelope "Successfully deleted activity"
// @Failure 404 {object} Envelope "Activity not found"
// @Security BearerAuth
// @Router /activities/{id} [delete]
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.activityService.Delete(id); err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, Envelope{Status: "success", Message: "Activity deleted"})
}
