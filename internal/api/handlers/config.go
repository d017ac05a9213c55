package handlers

import (
	"net/http"

	"calyx-crm-backend/internal/database/models"

	"github.com/gin-gonic/gin"
)

// ConfigHandler serves the static enumerations mobile clients render pickers from
type ConfigHandler struct{}

// NewConfigHandler creates a new config handler
func NewConfigHandler() *ConfigHandler {
	return &ConfigHandler{}
}

// GetActivityTypes handles GET /config/activity-types
// @Summary Activity type enumeration
// @Tags config
// @Produce json
// @Success 200 {object} Envelope "Activity types"
// @Security BearerAuth
// @Router /config/activity-types [get]
func (h *ConfigHandler) GetActivityTypes(c *gin.Context) {
	respond(c, http.StatusOK, []models.ActivityType{
		models.ActivityTypeCall,
		models.ActivityTypeEmail,
		models.ActivityTypeMeeting,
		models.ActivityTypeTask,
		models.ActivityTypeNote,
		models.ActivityTypeDemo,
		models.ActivityTypeProposal,
		models.ActivityTypeFollowUp,
	})
}

// GetLeadSources handles GET /config/lead-sources
// @Summary Lead source enumeration
// @Tags config
// @Produce json
// @Success 200 {object} Envelope "Lead sources"
// @Security BearerAuth
// @Router /config/lead-sources [get]
func (h *ConfigHandler) GetLeadSources(c *gin.Context) {
	respond(c, http.StatusOK, []models.Source{
		models.SourceWebsite,
		models.SourceReferral,
		models.SourceColdCall,
		models.SourceEmail,
		models.SourceSocialMedia,
		models.SourceAdvertisement,
		models.SourceEvent,
		models.SourceOther,
	})
}

// GetOpportunityStatuses handles GET /config/opportunity-statuses
// @Summary Opportunity status enumeration
// @Tags config
// @Produce json
// @Success 200 {object} Envelope "Opportunity statuses"
// @Security BearerAuth
// @Router /config/opportunity-statuses [get]
func (h *ConfigHandler) GetOpportunityStatuses(c *gin.Context) {
	respond(c, http.StatusOK, []models.OpportunityStatus{
		models.OpportunityStatusOpen,
		models.OpportunityStatusWon,
		models.OpportunityStatusLost,
		models.OpportunityStatusCancelled,
	})
}
