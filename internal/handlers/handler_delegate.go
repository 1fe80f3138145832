package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/receipts_ledger/internal/core/ports/services"
	"github.com/SscSPs/receipts_ledger/internal/dto"
	"github.com/SscSPs/receipts_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type delegateHandler struct {
	delegateService portssvc.DelegateSvcFacade
}

func newDelegateHandler(ds portssvc.DelegateSvcFacade) *delegateHandler {
	return &delegateHandler{delegateService: ds}
}

func registerDelegateRoutes(rg *gin.RouterGroup, delegateService portssvc.DelegateSvcFacade) {
	h := newDelegateHandler(delegateService)

	delegates := rg.Group("/delegates")
	{
		delegates.POST("", h.createDelegate)
		delegates.GET("", h.listDelegates)
		delegates.DELETE("/:delegate_id", h.deleteDelegate)
	}
}

// createDelegate godoc
// @Summary Create a delegate
// @Tags delegates
// @Accept json
// @Produce json
// @Param delegate body dto.CreateDelegateRequest true "Delegate details"
// @Success 201 {object} dto.DelegateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create delegate"
// @Router /delegates [post]
func (h *delegateHandler) createDelegate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDelegateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	delegate, err := h.delegateService.CreateDelegate(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create delegate")
		return
	}

	c.JSON(http.StatusCreated, dto.ToDelegateResponse(delegate))
}

// listDelegates godoc
// @Summary List delegates
// @Tags delegates
// @Produce json
// @Success 200 {object} dto.ListDelegatesResponse
// @Failure 500 {object} map[string]string "Failed to list delegates"
// @Router /delegates [get]
func (h *delegateHandler) listDelegates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	delegates, err := h.delegateService.ListDelegates(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list delegates")
		return
	}

	c.JSON(http.StatusOK, dto.ToListDelegatesResponse(delegates))
}

// deleteDelegate godoc
// @Summary Delete a delegate
// @Description Deletes a delegate; its customers become unassigned
// @Tags delegates
// @Produce json
// @Param delegate_id path string true "Delegate ID"
// @Success 200 {object} dto.DelegateResponse
// @Failure 404 {object} map[string]string "Delegate not found"
// @Failure 500 {object} map[string]string "Failed to delete delegate"
// @Router /delegates/{delegate_id} [delete]
func (h *delegateHandler) deleteDelegate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger = logger.With(slog.String("delegate_id", c.Param("delegate_id")))

	var uri dto.DelegateURI
	if !bindPath(c, logger, &uri, "delegate") {
		return
	}

	deleted, err := h.delegateService.DeleteDelegate(c.Request.Context(), uri.DelegateID)
	if err != nil {
		respondError(c, logger, err, "Failed to delete delegate")
		return
	}

	logger.Info("Delegate deleted successfully")
	c.JSON(http.StatusOK, dto.ToDelegateResponse(deleted))
}
