package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how a payment was tendered.
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "CASH"
	MethodCheque       PaymentMethod = "CHEQUE"
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"
)

// IsValid reports whether m is one of the known methods.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodCash, MethodCheque, MethodBankTransfer:
		return true
	}
	return false
}

// PaymentInput is the part of a payment the allocation policy looks at.
type PaymentInput struct {
	Amount      decimal.Decimal `json:"amount"`
	Method      PaymentMethod   `json:"method"`
	IsException bool            `json:"isException"`
}

// IsCashFund reports whether the payment retires cash debt first.
// Exception-flagged payments are cash funds whatever their method.
func (p PaymentInput) IsCashFund() bool {
	return p.Method == MethodCash || p.IsException
}

// Payment is an immutable receipt from a customer, optionally linked to one invoice.
type Payment struct {
	PaymentID   string          `json:"paymentID"`
	CustomerID  string          `json:"customerID"`
	InvoiceID   *string         `json:"invoiceID,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Method      PaymentMethod   `json:"method"`
	IsException bool            `json:"isException"`
	BankName    string          `json:"bankName,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	Seq         int64           `json:"-"`
	AuditFields

	// Read-side joins, not stored on the payment row.
	CustomerName  string `json:"customerName,omitempty"`
	InvoiceNumber string `json:"invoiceNumber,omitempty"`
}

// Input returns the allocation view of the payment.
func (p Payment) Input() PaymentInput {
	return PaymentInput{Amount: p.Amount, Method: p.Method, IsException: p.IsException}
}

// RecordedPayment is a stored payment plus the allocation it produced against its invoice.
type RecordedPayment struct {
	Payment    Payment           `json:"payment"`
	Invoice    *Invoice          `json:"invoice,omitempty"`
	Allocation *AllocationResult `json:"allocation,omitempty"`
	Replayed   bool              `json:"replayed,omitempty"`
}

// PaymentFilter narrows payment listings.
type PaymentFilter struct {
	CustomerID *string
	From, To   *time.Time
}
