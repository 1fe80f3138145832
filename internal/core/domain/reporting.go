package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStats summarises the whole ledger.
type DashboardStats struct {
	TotalCashDebt      decimal.Decimal `json:"totalCashDebt"`
	TotalChequeDebt    decimal.Decimal `json:"totalChequeDebt"`
	TotalInvoiceVolume decimal.Decimal `json:"totalInvoiceVolume"`
	CustomerCount      int             `json:"customerCount"`
	RecentPayments     []Payment       `json:"recentPayments"`
}

// DailyPerformance lists invoices and payments created in a date range.
type DailyPerformance struct {
	From          time.Time       `json:"from"`
	To            time.Time       `json:"to"`
	Invoices      []Invoice       `json:"invoices"`
	Payments      []Payment       `json:"payments"`
	InvoiceCount  int             `json:"invoiceCount"`
	InvoiceAmount decimal.Decimal `json:"invoiceAmount"`
	PaymentCount  int             `json:"paymentCount"`
	PaymentAmount decimal.Decimal `json:"paymentAmount"`
}

// DelegateDebt is the outstanding debt across one delegate's customers.
type DelegateDebt struct {
	DelegateID     string          `json:"delegateID"`
	DelegateName   string          `json:"delegateName"`
	CustomerCount  int             `json:"customerCount"`
	TotalCashDue   decimal.Decimal `json:"totalCashDue"`
	TotalChequeDue decimal.Decimal `json:"totalChequeDue"`
	TotalDue       decimal.Decimal `json:"totalDue"`
}
