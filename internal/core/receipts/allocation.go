package receipts

import (
	"fmt"

	"github.com/SscSPs/receipts_ledger/internal/apperrors"
	"github.com/SscSPs/receipts_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Apply applies one payment to outstanding debts.
//
// A cash fund (CASH, or any exception-flagged payment) covers cash debt first and spills
// into cheque debt. Any other payment covers cheque debt only and never touches cash debt.
// Whatever is left is returned as surplus; it is never discarded.
func Apply(debts domain.DebtPair, payment domain.PaymentInput) (domain.AllocationResult, error) {
	if payment.Amount.IsNegative() {
		return domain.AllocationResult{}, fmt.Errorf("%w: payment amount %s is negative", apperrors.ErrInvalidAmount, payment.Amount.String())
	}
	if !payment.Method.IsValid() {
		return domain.AllocationResult{}, fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, payment.Method)
	}
	if debts.IsNegative() {
		return domain.AllocationResult{}, fmt.Errorf("%w: outstanding debt cash=%s cheque=%s", apperrors.ErrInconsistentState, debts.Cash.String(), debts.Cheque.String())
	}

	cash, cheque := debts.Cash, debts.Cheque
	remaining := payment.Amount
	cashCoverage, chequeCoverage := decimal.Zero, decimal.Zero

	if payment.IsCashFund() {
		cashCoverage = decimal.Min(remaining, cash)
		cash = cash.Sub(cashCoverage)
		remaining = remaining.Sub(cashCoverage)
	}
	if remaining.IsPositive() {
		chequeCoverage = decimal.Min(remaining, cheque)
		cheque = cheque.Sub(chequeCoverage)
		remaining = remaining.Sub(chequeCoverage)
	}

	return domain.AllocationResult{
		RemainingDebts: domain.DebtPair{Cash: cash, Cheque: cheque}.Rounded(),
		CashCoverage:   domain.Round2(cashCoverage),
		ChequeCoverage: domain.Round2(chequeCoverage),
		Surplus:        domain.Round2(remaining),
	}, nil
}

// Replay applies payments in order starting from an invoice's split and returns the
// remaining debts plus the accumulated surplus.
func Replay(split domain.DebtPair, payments []domain.PaymentInput) (domain.DebtPair, decimal.Decimal, error) {
	debts := split
	surplus := decimal.Zero
	for i, p := range payments {
		res, err := Apply(debts, p)
		if err != nil {
			return domain.DebtPair{}, decimal.Zero, fmt.Errorf("payment %d: %w", i, err)
		}
		debts = res.RemainingDebts
		surplus = surplus.Add(res.Surplus)
	}
	return debts, surplus, nil
}
