package auth

import (
	"net/http"

	apperrors "calyx-crm-backend/internal/errors"
	"calyx-crm-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandlers provides HTTP handlers for authentication endpoints
type AuthHandlers struct {
	service *AuthService
	log     *logger.Logger
}

// NewAuthHandlers creates new authentication handlers
func NewAuthHandlers(service *AuthService, log *logger.Logger) *AuthHandlers {
	return &AuthHandlers{service: service, log: log}
}

// Register godoc
// @Summary Register a new account
// @Description Creates a user account and returns a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration details"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/auth/register [post]
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request body"})
		return
	}

	resp, err := h.service.Register(&req)
	if err != nil {
		switch {
		case apperrors.IsAlreadyExists(err):
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Email is already registered"})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		default:
			h.log.WithField("error", err.Error()).Error("registration failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Registration failed"})
		}
		return
	}

	h.log.WithField("email", req.Email).Info("user registered")
	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": resp})
}

// Login godoc
// @Summary Sign in
// @Description Verifies credentials and returns a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /api/auth/login [post]
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request body"})
		return
	}

	resp, err := h.service.Login(&req)
	if err != nil {
		switch {
		case apperrors.IsAuthentication(err):
			c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Invalid email or password"})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		default:
			h.log.WithField("error", err.Error()).Error("login failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Login failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": resp})
}

// Me godoc
// @Summary Current account
// @Description Returns the authenticated user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]interface{}
// @Router /api/auth/me [get]
func (h *AuthHandlers) Me(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Authentication required"})
		return
	}

	user, err := h.service.CurrentUser(claims)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Account not available"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": user})
}
