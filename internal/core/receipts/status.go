package receipts

import (
	"github.com/SscSPs/receipts_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Resolve derives invoice status from its total and what remains unpaid.
// Over-payment (remaining below zero) is PAID like an exact payment.
func Resolve(total, remaining decimal.Decimal) domain.InvoiceStatus {
	switch {
	case !remaining.IsPositive():
		return domain.StatusPaid
	case remaining.LessThan(total):
		return domain.StatusPartiallyPaid
	default:
		return domain.StatusUnpaid
	}
}

// ResolvePaid is Resolve with remaining computed as total - paid.
func ResolvePaid(total, paid decimal.Decimal) domain.InvoiceStatus {
	return Resolve(total, total.Sub(paid))
}
