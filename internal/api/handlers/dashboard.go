package handlers

import (
	"net/http"
	"strconv"

	"calyx-crm-backend/internal/auth"
	"calyx-crm-backend/internal/logger"
	"calyx-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler handles HTTP requests for the dashboard aggregate
type DashboardHandler struct {
	dashboardService service.DashboardServiceInterface
	log              *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardServiceInterface, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		log:              log,
	}
}

// GetDashboard handles GET /dashboard
// @Summary Dashboard overview
// @Description Open pipeline totals, closing windows, pending and recent activities for the caller
// @Tags dashboard
// @Produce json
// @Success 200 {object} Envelope "Successfully retrieved dashboard"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	callerID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	overview, err := h.dashboardService.Overview(callerID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, overview)
}

// GetRecentActivities handles GET /dashboard/recent-activities
// @Summary Recent activities
// @Description Newest activities assigned to or created by the caller
// @Tags dashboard
// @Produce json
// @Param limit query int false "Maximum number of activities"
// @Success 200 {object} Envelope "Successfully retrieved activities"
// @Security BearerAuth
// @Router /dashboard/recent-activities [get]
func (h *DashboardHandler) GetRecentActivities(c *gin.Context) {
	callerID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 100 {
		limit = 10
	}

	activities, err := h.dashboardService.RecentActivities(callerID, limit)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, gin.H{"activities": activities})
}
