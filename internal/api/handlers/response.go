package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "calyx-crm-backend/internal/errors"
	"calyx-crm-backend/internal/logger"
	"calyx-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Envelope is the uniform response body: status plus payload, with
// pagination attached on list responses.
type Envelope struct {
	Status     string              `json:"status"`
	Data       interface{}         `json:"data,omitempty"`
	Message    string              `json:"message,omitempty"`
	Pagination *service.Pagination `json:"pagination,omitempty"`
}

func respond(c *gin.Context, code int, data interface{}) {
	c.JSON(code, Envelope{Status: "success", Data: data})
}

func respondList(c *gin.Context, data interface{}, pagination *service.Pagination) {
	c.JSON(http.StatusOK, Envelope{Status: "success", Data: data, Pagination: pagination})
}

func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, Envelope{Status: "error", Message: message})
}

// respondServiceError maps typed service errors onto HTTP status codes
func respondServiceError(c *gin.Context, log *logger.Logger, err error) {
	var validationErrs validator.ValidationErrors
	switch {
	case apperrors.IsNotFound(err):
		respondError(c, http.StatusNotFound, err.Error())
	case apperrors.IsValidation(err), errors.As(err, &validationErrs):
		respondError(c, http.StatusBadRequest, err.Error())
	// Conflicts surface as 400 with an explanatory message, matching the
	// mobile client's error handling.
	case apperrors.IsConflict(err), apperrors.IsAlreadyExists(err):
		respondError(c, http.StatusBadRequest, err.Error())
	case apperrors.IsAuthorization(err):
		respondError(c, http.StatusForbidden, err.Error())
	case apperrors.IsAuthentication(err):
		respondError(c, http.StatusUnauthorized, err.Error())
	default:
		log.WithField("error", err.Error()).Error("request failed")
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid "+name+" parameter")
		return uuid.Nil, false
	}
	return id, true
}

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func parseUUIDQuery(c *gin.Context, name string) *uuid.UUID {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}
