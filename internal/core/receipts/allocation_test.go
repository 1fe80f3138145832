package receipts_test

import (
	"testing"

	"github.com/SscSPs/receipts_ledger/internal/apperrors"
	"github.com/SscSPs/receipts_ledger/internal/core/domain"
	"github.com/SscSPs/receipts_ledger/internal/core/receipts"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pair(cash, cheque string) domain.DebtPair {
	return domain.DebtPair{Cash: dec(cash), Cheque: dec(cheque)}
}

func assertPair(t *testing.T, want, got domain.DebtPair) {
	t.Helper()
	assert.True(t, want.Cash.Equal(got.Cash), "cash: want %s got %s", want.Cash, got.Cash)
	assert.True(t, want.Cheque.Equal(got.Cheque), "cheque: want %s got %s", want.Cheque, got.Cheque)
}

func TestApply(t *testing.T) {
	tests := []struct {
		name        string
		debts       domain.DebtPair
		payment     domain.PaymentInput
		wantDebts   domain.DebtPair
		wantSurplus string
	}{
		{
			name:        "cash covers cash then spills into cheque",
			debts:       pair("100", "200"),
			payment:     domain.PaymentInput{Amount: dec("150"), Method: domain.MethodCash},
			wantDebts:   pair("0", "150"),
			wantSurplus: "0",
		},
		{
			name:        "cheque covers cheque only",
			debts:       pair("100", "200"),
			payment:     domain.PaymentInput{Amount: dec("50"), Method: domain.MethodCheque},
			wantDebts:   pair("100", "150"),
			wantSurplus: "0",
		},
		{
			name:        "cash with nothing owed is all surplus",
			debts:       pair("0", "0"),
			payment:     domain.PaymentInput{Amount: dec("20"), Method: domain.MethodCash},
			wantDebts:   pair("0", "0"),
			wantSurplus: "20",
		},
		{
			name:        "bank transfer beyond cheque debt leaves cash untouched",
			debts:       pair("100", "200"),
			payment:     domain.PaymentInput{Amount: dec("250"), Method: domain.MethodBankTransfer},
			wantDebts:   pair("100", "0"),
			wantSurplus: "50",
		},
		{
			name:        "exception cheque is treated as cash fund",
			debts:       pair("100", "200"),
			payment:     domain.PaymentInput{Amount: dec("120"), Method: domain.MethodCheque, IsException: true},
			wantDebts:   pair("0", "180"),
			wantSurplus: "0",
		},
		{
			name:        "cash overpays both buckets",
			debts:       pair("33.33", "66.67"),
			payment:     domain.PaymentInput{Amount: dec("150.5"), Method: domain.MethodCash},
			wantDebts:   pair("0", "0"),
			wantSurplus: "50.5",
		},
		{
			name:        "partial cash payment",
			debts:       pair("33.33", "66.67"),
			payment:     domain.PaymentInput{Amount: dec("10"), Method: domain.MethodCash},
			wantDebts:   pair("23.33", "66.67"),
			wantSurplus: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := receipts.Apply(tt.debts, tt.payment)
			require.NoError(t, err)
			assertPair(t, tt.wantDebts, got.RemainingDebts)
			assert.True(t, dec(tt.wantSurplus).Equal(got.Surplus), "surplus: want %s got %s", tt.wantSurplus, got.Surplus)
		})
	}
}

func TestApply_ZeroPaymentIsNoOp(t *testing.T) {
	for _, method := range []domain.PaymentMethod{domain.MethodCash, domain.MethodCheque, domain.MethodBankTransfer} {
		got, err := receipts.Apply(pair("12.34", "56.78"), domain.PaymentInput{Amount: decimal.Zero, Method: method})
		require.NoError(t, err)
		assertPair(t, pair("12.34", "56.78"), got.RemainingDebts)
		assert.True(t, got.Surplus.IsZero())
	}
}

func TestApply_Errors(t *testing.T) {
	_, err := receipts.Apply(pair("1", "2"), domain.PaymentInput{Amount: dec("-5"), Method: domain.MethodCash})
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)

	_, err = receipts.Apply(pair("-1", "2"), domain.PaymentInput{Amount: dec("5"), Method: domain.MethodCash})
	assert.ErrorIs(t, err, apperrors.ErrInconsistentState)
	assert.NotErrorIs(t, err, apperrors.ErrValidation)

	_, err = receipts.Apply(pair("1", "2"), domain.PaymentInput{Amount: dec("5"), Method: "CARD"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestApply_Properties(t *testing.T) {
	methods := []domain.PaymentMethod{domain.MethodCash, domain.MethodCheque, domain.MethodBankTransfer}
	amounts := []string{"0", "0.01", "5", "33.33", "99.99", "100", "150", "300", "1000.01"}
	debts := []domain.DebtPair{pair("0", "0"), pair("100", "200"), pair("33.33", "66.67"), pair("0", "50"), pair("75.5", "0")}

	for _, d := range debts {
		for _, a := range amounts {
			for _, m := range methods {
				for _, exception := range []bool{false, true} {
					p := domain.PaymentInput{Amount: dec(a), Method: m, IsException: exception}
					got, err := receipts.Apply(d, p)
					require.NoError(t, err)

					require.False(t, got.RemainingDebts.IsNegative())
					require.True(t, got.RemainingDebts.Cash.LessThanOrEqual(d.Cash))
					require.True(t, got.RemainingDebts.Cheque.LessThanOrEqual(d.Cheque))
					require.False(t, got.Surplus.IsNegative())

					accounted := got.CashCoverage.Add(got.ChequeCoverage).Add(got.Surplus)
					require.True(t, domain.WithinTolerance(accounted, p.Amount), "coverage %s != amount %s", accounted, p.Amount)

					if !p.IsCashFund() {
						require.True(t, d.Cash.Equal(got.RemainingDebts.Cash), "cheque fund touched cash debt")
						require.True(t, got.CashCoverage.IsZero())
					}
				}
			}
		}
	}
}

func TestReplay(t *testing.T) {
	split, err := receipts.Split(dec("300"))
	require.NoError(t, err)

	remaining, surplus, err := receipts.Replay(split, []domain.PaymentInput{
		{Amount: dec("50"), Method: domain.MethodCheque},
		{Amount: dec("150"), Method: domain.MethodCash},
		{Amount: dec("200"), Method: domain.MethodBankTransfer},
	})
	require.NoError(t, err)
	assertPair(t, pair("0", "0"), remaining)
	assert.True(t, dec("100").Equal(surplus))
}
