package dto

import (
	"time"

	"github.com/SscSPs/receipts_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StatementParams defines the optional window of a statement of account.
type StatementParams struct {
	From *time.Time `form:"from" time_format:"2006-01-02" time_utc:"1"`
	To   *time.Time `form:"to" time_format:"2006-01-02" time_utc:"1"`
}

// EndOfDay widens a date-only upper bound to include the whole day.
func EndOfDay(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	end := t.Add(24*time.Hour - time.Nanosecond)
	return &end
}

// DateRangeParams defines an optional reporting period.
type DateRangeParams struct {
	From *time.Time `form:"from" time_format:"2006-01-02" time_utc:"1"`
	To   *time.Time `form:"to" time_format:"2006-01-02" time_utc:"1"`
}

// DashboardResponse represents the dashboard summary.
type DashboardResponse struct {
	TotalCashDebt      decimal.Decimal   `json:"totalCashDebt"`
	TotalChequeDebt    decimal.Decimal   `json:"totalChequeDebt"`
	TotalDebt          decimal.Decimal   `json:"totalDebt"`
	TotalInvoiceVolume decimal.Decimal   `json:"totalInvoiceVolume"`
	CustomerCount      int               `json:"customerCount"`
	RecentPayments     []PaymentResponse `json:"recentPayments"`
}

// ToDashboardResponse converts dashboard stats to the response DTO.
func ToDashboardResponse(s *domain.DashboardStats) DashboardResponse {
	return DashboardResponse{
		TotalCashDebt:      s.TotalCashDebt,
		TotalChequeDebt:    s.TotalChequeDebt,
		TotalDebt:          s.TotalCashDebt.Add(s.TotalChequeDebt),
		TotalInvoiceVolume: s.TotalInvoiceVolume,
		CustomerCount:      s.CustomerCount,
		RecentPayments:     ToListPaymentResponse(s.RecentPayments),
	}
}

// DailyPerformanceResponse represents invoices and collections over a period.
type DailyPerformanceResponse struct {
	FromDate      string            `json:"fromDate"`
	ToDate        string            `json:"toDate"`
	Invoices      []InvoiceResponse `json:"invoices"`
	Payments      []PaymentResponse `json:"payments"`
	InvoiceCount  int               `json:"invoiceCount"`
	InvoiceAmount decimal.Decimal   `json:"invoiceAmount"`
	PaymentCount  int               `json:"paymentCount"`
	PaymentAmount decimal.Decimal   `json:"paymentAmount"`
}

// ToDailyPerformanceResponse converts a performance report to the response DTO.
func ToDailyPerformanceResponse(p *domain.DailyPerformance) DailyPerformanceResponse {
	res := DailyPerformanceResponse{
		FromDate:      p.From.Format(time.RFC3339),
		ToDate:        p.To.Format(time.RFC3339),
		Invoices:      make([]InvoiceResponse, len(p.Invoices)),
		Payments:      ToListPaymentResponse(p.Payments),
		InvoiceCount:  p.InvoiceCount,
		InvoiceAmount: p.InvoiceAmount,
		PaymentCount:  p.PaymentCount,
		PaymentAmount: p.PaymentAmount,
	}
	for i := range p.Invoices {
		res.Invoices[i] = ToInvoiceResponse(&p.Invoices[i])
	}
	return res
}

// DelegateDebtsResponse wraps the per-delegate outstanding debt rows.
type DelegateDebtsResponse struct {
	Delegates []domain.DelegateDebt `json:"delegates"`
}
