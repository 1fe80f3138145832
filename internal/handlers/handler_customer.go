package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/receipts_ledger/internal/core/ports/services"
	"github.com/SscSPs/receipts_ledger/internal/dto"
	"github.com/SscSPs/receipts_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// customerHandler handles HTTP requests related to customers.
type customerHandler struct {
	customerService  portssvc.CustomerSvcFacade
	statementService portssvc.StatementSvc
}

// newCustomerHandler creates a new customerHandler.
func newCustomerHandler(cs portssvc.CustomerSvcFacade, ss portssvc.StatementSvc) *customerHandler {
	return &customerHandler{
		customerService:  cs,
		statementService: ss,
	}
}

// registerCustomerRoutes registers routes related to customers.
func registerCustomerRoutes(rg *gin.RouterGroup, customerService portssvc.CustomerSvcFacade, statementService portssvc.StatementSvc) {
	h := newCustomerHandler(customerService, statementService)

	customers := rg.Group("/customers")
	{
		customers.POST("", h.createCustomer)
		customers.GET("", h.listCustomers)
		customers.GET("/:customer_id", h.getCustomer)
		customers.GET("/:customer_id/statement", h.getStatement)
	}
}

// createCustomer godoc
// @Summary Create a customer
// @Description Creates a customer, optionally assigned to a delegate
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body dto.CreateCustomerRequest true "Customer details"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create customer"
// @Router /customers [post]
func (h *customerHandler) createCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	logger.Info("Received request to create customer", slog.String("customer_name", req.Name))

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// getCustomer godoc
// @Summary Get a customer
// @Description Retrieves a customer with its live cash, cheque and total balance
// @Tags customers
// @Produce json
// @Param customer_id path string true "Customer ID"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 500 {object} map[string]string "Failed to retrieve customer"
// @Router /customers/{customer_id} [get]
func (h *customerHandler) getCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger = logger.With(slog.String("customer_id", c.Param("customer_id")))

	var uri dto.CustomerURI
	if !bindPath(c, logger, &uri, "customer") {
		return
	}

	customer, err := h.customerService.GetCustomerByID(c.Request.Context(), uri.CustomerID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve customer")
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// listCustomers godoc
// @Summary List customers
// @Description Lists customers ordered by name with their live balances
// @Tags customers
// @Produce json
// @Success 200 {object} dto.ListCustomersResponse
// @Failure 500 {object} map[string]string "Failed to list customers"
// @Router /customers [get]
func (h *customerHandler) listCustomers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	customers, err := h.customerService.ListCustomers(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list customers")
		return
	}

	c.JSON(http.StatusOK, dto.ListCustomersResponse{Customers: dto.ToListCustomerResponse(customers)})
}

// getStatement godoc
// @Summary Get a statement of account
// @Description Replays the customer's invoices and payments in the window with running balances.
// @Description finalBalance always covers the customer's whole history.
// @Tags customers
// @Produce json
// @Param customer_id path string true "Customer ID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date, inclusive (YYYY-MM-DD)"
// @Success 200 {object} domain.StatementOfAccount
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 500 {object} map[string]string "Failed to generate statement"
// @Router /customers/{customer_id}/statement [get]
func (h *customerHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger = logger.With(slog.String("customer_id", c.Param("customer_id")))

	var uri dto.CustomerURI
	if !bindPath(c, logger, &uri, "customer") {
		return
	}

	var params dto.StatementParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}

	stmt, err := h.statementService.GetStatement(c.Request.Context(), uri.CustomerID, params.From, dto.EndOfDay(params.To))
	if err != nil {
		respondError(c, logger, err, "Failed to generate statement")
		return
	}

	logger.Info("Statement generated successfully", slog.Int("event_count", len(stmt.History)))
	c.JSON(http.StatusOK, stmt)
}
