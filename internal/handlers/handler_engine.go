package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/receipts_ledger/internal/core/ports/services"
	"github.com/SscSPs/receipts_ledger/internal/dto"
	"github.com/SscSPs/receipts_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// engineHandler exposes the receipts calculations over plain data.
type engineHandler struct {
	engine portssvc.EngineSvc
}

func registerEngineRoutes(rg *gin.RouterGroup, engine portssvc.EngineSvc) {
	h := &engineHandler{engine: engine}

	engineGroup := rg.Group("/engine")
	{
		engineGroup.POST("/split", h.split)
		engineGroup.POST("/apply", h.apply)
		engineGroup.POST("/resolve", h.resolve)
		engineGroup.POST("/statement", h.statement)
	}
}

// split godoc
// @Summary Split an invoice total
// @Tags engine
// @Accept json
// @Produce json
// @Param request body dto.SplitRequest true "Invoice total"
// @Success 200 {object} domain.DebtPair
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /engine/split [post]
func (h *engineHandler) split(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SplitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	pair, err := h.engine.Split(c.Request.Context(), req.Total)
	if err != nil {
		respondError(c, logger, err, "Failed to split total")
		return
	}
	c.JSON(http.StatusOK, pair)
}

// apply godoc
// @Summary Allocate a payment
// @Description Applies one payment to outstanding cash and cheque debts and reports any surplus
// @Tags engine
// @Accept json
// @Produce json
// @Param request body dto.ApplyRequest true "Debts and payment"
// @Success 200 {object} domain.AllocationResult
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /engine/apply [post]
func (h *engineHandler) apply(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	res, err := h.engine.Apply(c.Request.Context(), req.Debts.ToDebtPair(), req.Payment.ToPaymentInput())
	if err != nil {
		respondError(c, logger, err, "Failed to allocate payment")
		return
	}
	c.JSON(http.StatusOK, res)
}

// resolve godoc
// @Summary Resolve invoice status
// @Tags engine
// @Accept json
// @Produce json
// @Param request body dto.ResolveRequest true "Invoice total and remaining amount"
// @Success 200 {object} dto.ResolveResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /engine/resolve [post]
func (h *engineHandler) resolve(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ResolveResponse{Status: h.engine.Resolve(c.Request.Context(), req.Total, req.Remaining)})
}

// statement godoc
// @Summary Build a statement from events
// @Description Orders the events, replays them with running balances and reports the aggregate balance
// @Tags engine
// @Accept json
// @Produce json
// @Param request body dto.StatementRequest true "Ledger events and optional aggregate"
// @Success 200 {object} domain.Statement
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to build statement"
// @Router /engine/statement [post]
func (h *engineHandler) statement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.StatementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	stmt, err := h.engine.BuildStatement(c.Request.Context(), req.Events, req.Aggregate)
	if err != nil {
		respondError(c, logger, err, "Failed to build statement")
		return
	}
	c.JSON(http.StatusOK, stmt)
}
