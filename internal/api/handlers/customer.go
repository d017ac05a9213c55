package handlers

import (
	"net/http"

	"calyx-crm-backend/internal/auth"
	"calyx-crm-backend/internal/logger"
	"calyx-crm-backend/internal/repository"
	"calyx-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CustomerHandler handles HTTP requests for customer operations
type CustomerHandler struct {
	customerService service.CustomerServiceInterface
	log             *logger.Logger
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService service.CustomerServiceInterface, log *logger.Logger) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		log:             log,
	}
}

// CreateCustomer handles POST /customers
// @Summary Create a new customer
// @Description Create a customer record owned by the caller unless a salesperson is given
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body service.CreateCustomerRequest true "Customer data"
// @Success 201 {object} Envelope "Successfully created customer"
// @Failure 400 {object} Envelope "Invalid request body"
// @Security BearerAuth
// @Router /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req service.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	callerID, _ := auth.GetUserID(c)
	customer, err := h.customerService.Create(&req, callerID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusCreated, customer)
}

// GetCustomer handles GET /customers/:id
// @Summary Get customer by ID
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID (UUID)"
// @Success 200 {object} Envelope "Successfully retrieved customer"
// @Failure 404 {object} Envelope "Customer not found"
// @Security BearerAuth
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	customer, err := h.customerService.GetByID(id)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, customer)
}

// ListCustomers handles GET /customers
// @Summary List customers
// @Description List active customers with search, status filter, sorting and pagination
// @Tags customers
// @Produce json
// @Param search query string false "Matches name, email or company"
// @Param status query string false "Customer status"
// @Param teamId query string false "Team ID (UUID)"
// @Param salespersonId query string false "Salesperson ID (UUID)"
// @Param sortBy query string false "Sort column"
// @Param sortOrder query string false "asc or desc"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} Envelope "Successfully retrieved customers"
// @Security BearerAuth
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	page, limit := parsePagination(c)
	filter := repository.CustomerFilter{
		Search:        c.Query("search"),
		Status:        c.Query("status"),
		TeamID:        parseUUIDQuery(c, "teamId"),
		SalespersonID: parseUUIDQuery(c, "salespersonId"),
		SortBy:        c.Query("sortBy"),
		SortOrder:     c.Query("sortOrder"),
	}

	customers, pagination, err := h.customerService.List(filter, page, limit)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respondList(c, customers, pagination)
}

// UpdateCustomer handles PUT /customers/:id
// @Summary Update a customer
// @Description Partial update; omitted fields are preserved
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID (UUID)"
// @Param customer body service.UpdateCustomerRequest true "Fields to update"
// @Success 200 {object} Envelope "Successfully updated customer"
// @Failure 404 {object} Envelope "Customer not found"
// @Security BearerAuth
// @Router /customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	customer, err := h.customerService.Update(id, &req)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, customer)
}

// DeleteCustomer handles DELETE /customers/:id
// @Summary Delete a customer
// @Description Soft delete; the customer disappears from listings but history survives
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID (UUID)"
// @Success 200 {object} Envelope "Successfully deleted customer"
// @Failure 404 {object} Envelope "Customer not found"
// @Security BearerAuth
// @Router /customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.customerService.Delete(id); err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, Envelope{Status: "success", Message: "Customer deleted"})
}
