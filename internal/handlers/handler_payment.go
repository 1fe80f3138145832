package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/receipts_ledger/internal/core/ports/services"
	"github.com/SscSPs/receipts_ledger/internal/dto"
	"github.com/SscSPs/receipts_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// paymentHandler handles HTTP requests related to payments.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

// newPaymentHandler creates a new paymentHandler.
func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

// registerPaymentRoutes registers routes related to payments.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	payments := rg.Group("/payments")
	{
		payments.POST("", h.recordPayment)
		payments.GET("", h.listPayments)
	}
}

// recordPayment godoc
// @Summary Record a payment
// @Description Records a payment. When linked to an invoice the response carries how it was allocated
// @Description across the invoice's cash and cheque debts, any surplus, and the invoice's new status.
// @Tags payments
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Repeated submissions with the same key return the first payment"
// @Param payment body dto.RecordPaymentRequest true "Payment details"
// @Success 201 {object} dto.RecordPaymentResponse
// @Success 200 {object} dto.RecordPaymentResponse "Replayed submission"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Customer or invoice not found"
// @Failure 409 {object} map[string]string "Submission with this key still in progress"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Router /payments [post]
func (h *paymentHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	key := c.GetHeader(dto.IdempotencyKeyHeader)
	logger = logger.With(slog.String("customer_id", req.CustomerID))
	logger.Info("Received request to record payment",
		slog.String("amount", req.Amount.String()),
		slog.String("method", string(req.Method)),
		slog.Bool("idempotent", key != ""))

	recorded, err := h.paymentService.RecordPayment(c.Request.Context(), req, key)
	if err != nil {
		respondError(c, logger, err, "Failed to record payment")
		return
	}

	status := http.StatusCreated
	if recorded.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, dto.ToRecordPaymentResponse(recorded))
}

// listPayments godoc
// @Summary List payments
// @Description Lists payments newest first
// @Tags payments
// @Produce json
// @Param customerID query string false "Customer ID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date, inclusive (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to list payments"
// @Router /payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}
	params.To = dto.EndOfDay(params.To)

	payments, nextToken, err := h.paymentService.ListPayments(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list payments")
		return
	}

	c.JSON(http.StatusOK, dto.ListPaymentsResponse{
		Payments:  dto.ToListPaymentResponse(payments),
		NextToken: nextToken,
	})
}
