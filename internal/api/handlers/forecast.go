package handlers

import (
	"net/http"

	"calyx-crm-backend/internal/auth"
	"calyx-crm-backend/internal/logger"
	"calyx-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ForecastHandler handles HTTP requests for revenue forecasts
type ForecastHandler struct {
	forecastService service.ForecastServiceInterface
	log             *logger.Logger
}

// NewForecastHandler creates a new forecast handler
func NewForecastHandler(forecastService service.ForecastServiceInterface, log *logger.Logger) *ForecastHandler {
	return &ForecastHandler{
		forecastService: forecastService,
		log:             log,
	}
}

// GetForecast handles GET /forecast
// @Summary Revenue forecast
// @Description Projects revenue from open opportunities over 30 and 60 day horizons; my=true narrows to the caller's deals
// @Tags forecast
// @Produce json
// @Param my query bool false "Only the caller's opportunities"
// @Param teamId query string false "Team ID (UUID)"
// @Param salespersonId query string false "Salesperson ID (UUID)"
// @Success 200 {object} Envelope "Successfully retrieved forecast"
// @Security BearerAuth
// @Router /forecast [get]
func (h *ForecastHandler) GetForecast(c *gin.Context) {
	salespersonID := parseUUIDQuery(c, "salespersonId")
	if c.Query("my") == "true" {
		if callerID, ok := auth.GetUserID(c); ok {
			salespersonID = &callerID
		}
	}

	overview, err := h.forecastService.Overview(parseUUIDQuery(c, "teamId"), salespersonID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, overview)
}
