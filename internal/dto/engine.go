package dto

import (
	"github.com/SscSPs/receipts_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SplitRequest asks for the cash/cheque split of an invoice total.
type SplitRequest struct {
	Total decimal.Decimal `json:"total" binding:"required,money"`
}

// DebtPairRequest carries outstanding cash and cheque debts.
type DebtPairRequest struct {
	Cash   decimal.Decimal `json:"cash" binding:"required,money"`
	Cheque decimal.Decimal `json:"cheque" binding:"required,money"`
}

// PaymentInputRequest carries a payment to allocate.
type PaymentInputRequest struct {
	Amount      decimal.Decimal      `json:"amount" binding:"required,money"`
	Method      domain.PaymentMethod `json:"method" binding:"required,paymethod"`
	IsException bool                 `json:"isException"`
}

// ApplyRequest asks how a payment retires the given debts.
type ApplyRequest struct {
	Debts   DebtPairRequest     `json:"debts"`
	Payment PaymentInputRequest `json:"payment"`
}

// ResolveRequest asks for the status of an invoice. Remaining may be negative when overpaid.
type ResolveRequest struct {
	Total     decimal.Decimal `json:"total" binding:"required,money"`
	Remaining decimal.Decimal `json:"remaining" binding:"required"`
}

// ResolveResponse carries a resolved invoice status.
type ResolveResponse struct {
	Status domain.InvoiceStatus `json:"status"`
}

// StatementRequest asks for a statement over caller-supplied events. When Aggregate is
// omitted it is summed from the events.
type StatementRequest struct {
	Events    []domain.LedgerEvent     `json:"events"`
	Aggregate *domain.AggregateBalance `json:"aggregate"`
}

// ToDebtPair converts the request to a domain.DebtPair.
func (r DebtPairRequest) ToDebtPair() domain.DebtPair {
	return domain.DebtPair{Cash: r.Cash, Cheque: r.Cheque}
}

// ToPaymentInput converts the request to a domain.PaymentInput.
func (r PaymentInputRequest) ToPaymentInput() domain.PaymentInput {
	return domain.PaymentInput{Amount: r.Amount, Method: r.Method, IsException: r.IsException}
}
