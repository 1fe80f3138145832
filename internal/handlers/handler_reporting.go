package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/receipts_ledger/internal/core/ports/services"
	"github.com/SscSPs/receipts_ledger/internal/dto"
	"github.com/SscSPs/receipts_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to receivables reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
	now              func() time.Time
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		now:              time.Now,
	}
}

// registerReportingRoutes registers routes related to reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/dashboard", h.getDashboard)
		reportingGroup.GET("/daily", h.getDailyPerformance)
		reportingGroup.GET("/delegates", h.getDelegateDebts)
	}
}

// getDashboard godoc
// @Summary Dashboard summary
// @Description Total outstanding cash and cheque debt, invoice volume, customer count and the latest payments
// @Tags reports
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 500 {object} map[string]string "Failed to generate dashboard"
// @Router /reports/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.reportingService.GetDashboard(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to generate dashboard")
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(stats))
}

// getDailyPerformance godoc
// @Summary Daily performance
// @Description Invoices issued and payments collected in the period, with counts and sums
// @Tags reports
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)" default(today)
// @Param to query string false "End date, inclusive (YYYY-MM-DD)" default(from)
// @Success 200 {object} dto.DailyPerformanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/daily [get]
func (h *reportingHandler) getDailyPerformance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.DateRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}

	from := params.From
	if from == nil {
		now := h.now().UTC()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		from = &today
	}
	to := params.To
	if to == nil {
		to = from
	}

	logger = logger.With(
		slog.String("from", from.Format("2006-01-02")),
		slog.String("to", to.Format("2006-01-02")),
	)

	report, err := h.reportingService.GetDailyPerformance(c.Request.Context(), *from, *dto.EndOfDay(to))
	if err != nil {
		respondError(c, logger, err, "Failed to generate report")
		return
	}

	logger.Info("Daily performance report generated successfully",
		slog.Int("invoice_count", report.InvoiceCount),
		slog.Int("payment_count", report.PaymentCount))
	c.JSON(http.StatusOK, dto.ToDailyPerformanceResponse(report))
}

// getDelegateDebts godoc
// @Summary Debt by delegate
// @Description Outstanding cash, cheque and total debt of each delegate's customers, from activity in the period
// @Tags reports
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date, inclusive (YYYY-MM-DD)"
// @Success 200 {object} dto.DelegateDebtsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/delegates [get]
func (h *reportingHandler) getDelegateDebts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.DateRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}

	rows, err := h.reportingService.GetDelegateDebts(c.Request.Context(), params.From, dto.EndOfDay(params.To))
	if err != nil {
		respondError(c, logger, err, "Failed to generate report")
		return
	}

	c.JSON(http.StatusOK, dto.DelegateDebtsResponse{Delegates: rows})
}
