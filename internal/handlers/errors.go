package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/receipts_ledger/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto an HTTP status and JSON body.
// internalMsg is what clients see for anything that is not their fault.
func respondError(c *gin.Context, logger *slog.Logger, err error, internalMsg string) {
	var appErr *apperrors.AppError
	hasAppErr := errors.As(err, &appErr)

	switch {
	case errors.Is(err, apperrors.ErrInconsistentState):
		logger.Error("Ledger invariant violated", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalMsg})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		msg := err.Error()
		if hasAppErr {
			msg = appErr.Message
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Conflicting request", slog.String("error", err.Error()))
		msg := err.Error()
		if hasAppErr {
			msg = appErr.Message
		}
		c.JSON(http.StatusConflict, gin.H{"error": msg})
	default:
		logger.Error(internalMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalMsg})
	}
}

// bindPath binds uuid path parameters into obj. A malformed ID names no resource, so the
// request is answered 404 and false is returned.
func bindPath(c *gin.Context, logger *slog.Logger, obj any, resource string) bool {
	if err := c.ShouldBindUri(obj); err != nil {
		respondError(c, logger, fmt.Errorf("%w: %s", apperrors.ErrNotFound, resource), "")
		return false
	}
	return true
}

// bindError answers a request whose body or query failed binding.
func bindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}
