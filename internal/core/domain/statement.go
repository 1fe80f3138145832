package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventType tags a LedgerEvent.
type EventType string

const (
	EventInvoice EventType = "INVOICE"
	EventPayment EventType = "PAYMENT"
)

// LedgerEvent is one invoice or payment in a customer's history.
// Seq comes from one sequence shared by invoices and payments and breaks CreatedAt ties.
type LedgerEvent struct {
	Type      EventType       `json:"type"`
	ID        string          `json:"id"`
	Seq       int64           `json:"seq"`
	Reference string          `json:"reference"`
	CreatedAt time.Time       `json:"createdAt"`
	Amount    decimal.Decimal `json:"amount"`

	// Invoice events. A nil Split is computed from Amount.
	Split  *DebtPair     `json:"split,omitempty"`
	Status InvoiceStatus `json:"status,omitempty"`

	// Payment events.
	Method      PaymentMethod `json:"method,omitempty"`
	IsException bool          `json:"isException,omitempty"`
	InvoiceID   *string       `json:"invoiceID,omitempty"`
}

// EnrichedEvent is a LedgerEvent annotated with the running balances after it.
type EnrichedEvent struct {
	LedgerEvent
	Allocation    *AllocationResult `json:"allocation,omitempty"`
	RunningCash   decimal.Decimal   `json:"runningCash"`
	RunningCheque decimal.Decimal   `json:"runningCheque"`
	RunningCredit decimal.Decimal   `json:"runningCredit"`
	RunningTotal  decimal.Decimal   `json:"runningTotal"`
}

// AggregateBalance is the all-time sum query for one customer. Payments are bucketed by
// method: CashPaid sums CASH payments, ChequePaid sums CHEQUE and BANK_TRANSFER payments.
// The exception flag steers allocation only, never this grouping.
type AggregateBalance struct {
	InvoicedCash   decimal.Decimal `json:"invoicedCash"`
	InvoicedCheque decimal.Decimal `json:"invoicedCheque"`
	CashPaid       decimal.Decimal `json:"cashPaid"`
	ChequePaid     decimal.Decimal `json:"chequePaid"`
}

// Balance returns the signed balance the aggregate implies.
func (a AggregateBalance) Balance() Balance {
	cash := Round2(a.InvoicedCash.Sub(a.CashPaid))
	cheque := Round2(a.InvoicedCheque.Sub(a.ChequePaid))
	return Balance{Cash: cash, Cheque: cheque, Total: cash.Add(cheque)}
}

// Statement is the replayed history plus the all-time aggregate balance.
// The two are reported separately and differ when the history is windowed.
type Statement struct {
	History      []EnrichedEvent `json:"history"`
	FinalBalance Balance         `json:"finalBalance"`
}

// StatementOfAccount is a Statement for a known customer over a window.
type StatementOfAccount struct {
	Customer Customer   `json:"customer"`
	From     *time.Time `json:"from,omitempty"`
	To       *time.Time `json:"to,omitempty"`
	Statement
}
