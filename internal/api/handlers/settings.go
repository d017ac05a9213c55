package handlers

import (
	"net/http"

	"calyx-crm-backend/internal/auth"
	"calyx-crm-backend/internal/logger"
	"calyx-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SettingsHandler handles HTTP requests for the caller's settings
type SettingsHandler struct {
	settingsService service.SettingsServiceInterface
	log             *logger.Logger
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService service.SettingsServiceInterface, log *logger.Logger) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		log:             log,
	}
}

// GetSettings handles GET /settings
// @Summary Get the caller's settings
// @Description Returns stored settings, falling back to defaults when unset
// @Tags settings
// @Produce json
// @Success 200 {object} Envelope "Successfully retrieved settings"
// @Security BearerAuth
// @Router /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	callerID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	settings, err := h.settingsService.Get(callerID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, settings)
}

// UpdateSettings handles PUT /settings
// @Summary Replace the caller's settings
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body service.UpdateSettingsRequest true "Settings document"
// @Success 200 {object} Envelope "Successfully updated settings"
// @Failure 400 {object} Envelope "Invalid request body"
// @Security BearerAuth
// @Router /settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	callerID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req service.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	settings, err := h.settingsService.Update(callerID, &req)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, settings)
}

// UpdateTheme handles PUT /settings/theme
// @Summary Change the caller's theme
// @Tags settings
// @Accept json
// @Produce json
// @Param theme body service.UpdateThemeRequest true "Theme"
// @Success 200 {object} Envelope "Successfully updated theme"
// @Failure 400 {object} Envelope "Invalid theme"
// @Security BearerAuth
// @Router /settings/theme [put]
func (h *SettingsHandler) UpdateTheme(c *gin.Context) {
	callerID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req service.UpdateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateTheme(callerID, &req)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, settings)
}

// UpdateNotifications handles PUT /settings/notifications
// @Summary Change the caller's notification toggles
// @Description Partial update; omitted channels are preserved
// @Tags settings
// @Accept json
// @Produce json
// @Param notifications body service.UpdateNotificationsRequest true "Notification toggles"
// @Success 200 {object} Envelope "Successfully updated notifications"
// @Security BearerAuth
// @Router /settings/notifications [put]
func (h *SettingsHandler) UpdateNotifications(c *gin.Context) {
	callerID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req service.UpdateNotificationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateNotifications(callerID, &req)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, settings)
}
