package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the lifecycle status derived from cumulative payments.
type InvoiceStatus string

const (
	StatusUnpaid        InvoiceStatus = "UNPAID"
	StatusPartiallyPaid InvoiceStatus = "PARTIALLY_PAID"
	StatusPaid          InvoiceStatus = "PAID"
)

// InvoiceNumberPrefix prefixes every human-readable invoice number.
const InvoiceNumberPrefix = "INV-"

// FormatInvoiceNumber renders a sequence value as INV-000042.
func FormatInvoiceNumber(seq int64) string {
	return fmt.Sprintf("%s%06d", InvoiceNumberPrefix, seq)
}

// Invoice is a customer's debt. Amount fields never change after creation;
// only Status moves as payments are linked to it.
type Invoice struct {
	InvoiceID     string          `json:"invoiceID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	CustomerID    string          `json:"customerID"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	CashDebt      decimal.Decimal `json:"cashDebt"`
	ChequeDebt    decimal.Decimal `json:"chequeDebt"`
	InvoiceDate   time.Time       `json:"invoiceDate"`
	Notes         string          `json:"notes,omitempty"`
	Status        InvoiceStatus   `json:"status"`
	Seq           int64           `json:"-"`
	AuditFields

	// Derived on read, never stored.
	Remaining    *DebtPair `json:"remaining,omitempty"`
	CustomerName string    `json:"customerName,omitempty"`
}

// Split returns the stored debt split.
func (i Invoice) Split() DebtPair {
	return DebtPair{Cash: i.CashDebt, Cheque: i.ChequeDebt}
}
