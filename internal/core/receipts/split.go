package receipts

import (
	"fmt"

	"github.com/SscSPs/receipts_ledger/internal/apperrors"
	"github.com/SscSPs/receipts_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// cashParts is the denominator of the cash share: one third cash, two thirds cheque.
var cashParts = decimal.NewFromInt(3)

// Split turns an invoice total into its cash and cheque debt.
// The total is settled to two places first; cash is a third of it rounded half away from
// zero and cheque is the exact remainder, so Cash + Cheque always equals the settled total.
func Split(total decimal.Decimal) (domain.DebtPair, error) {
	if total.IsNegative() {
		return domain.DebtPair{}, fmt.Errorf("%w: invoice total %s is negative", apperrors.ErrInvalidAmount, total.String())
	}
	settled := domain.Round2(total)
	cash := settled.DivRound(cashParts, domain.MoneyPlaces)
	return domain.DebtPair{Cash: cash, Cheque: settled.Sub(cash)}, nil
}
