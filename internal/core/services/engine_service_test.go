package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/receipts_ledger/internal/apperrors"
	"github.com/SscSPs/receipts_ledger/internal/core/domain"
	"github.com/SscSPs/receipts_ledger/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineService_Split(t *testing.T) {
	engine := services.NewEngineService()

	split, err := engine.Split(context.Background(), dec("10"))
	require.NoError(t, err)
	assertDecimal(t, "3.33", split.Cash)
	assertDecimal(t, "6.67", split.Cheque)

	_, err = engine.Split(context.Background(), dec("-10"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
}

func TestEngineService_ApplyAndResolve(t *testing.T) {
	engine := services.NewEngineService()
	ctx := context.Background()

	res, err := engine.Apply(ctx, domain.DebtPair{Cash: dec("10"), Cheque: dec("20")},
		domain.PaymentInput{Amount: dec("40"), Method: domain.MethodCheque, IsException: true})
	require.NoError(t, err)
	assertDecimal(t, "10", res.CashCoverage)
	assertDecimal(t, "20", res.ChequeCoverage)
	assertDecimal(t, "10", res.Surplus)

	assert.Equal(t, domain.StatusPaid, engine.Resolve(ctx, dec("30"), dec("-10")))
	assert.Equal(t, domain.StatusPartiallyPaid, engine.Resolve(ctx, dec("30"), dec("5")))
	assert.Equal(t, domain.StatusUnpaid, engine.Resolve(ctx, dec("30"), dec("30")))
}

func TestEngineService_BuildStatementDerivesAggregate(t *testing.T) {
	engine := services.NewEngineService()
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	events := []domain.LedgerEvent{
		{Type: domain.EventInvoice, ID: "i1", Seq: 1, CreatedAt: at, Amount: dec("90")},
		{Type: domain.EventPayment, ID: "p1", Seq: 1, CreatedAt: at.Add(time.Minute), Amount: dec("100"), Method: domain.MethodCash},
	}

	stmt, err := engine.BuildStatement(context.Background(), events, nil)

	require.NoError(t, err)
	require.Len(t, stmt.History, 2)
	assertDecimal(t, "10", stmt.History[1].RunningCredit)
	assertDecimal(t, "-10", stmt.History[1].RunningTotal)
	assertDecimal(t, "-70", stmt.FinalBalance.Cash)
	assertDecimal(t, "60", stmt.FinalBalance.Cheque)
	assertDecimal(t, "-10", stmt.FinalBalance.Total)
}

func TestEngineService_BuildStatementUsesGivenAggregate(t *testing.T) {
	engine := services.NewEngineService()
	aggregate := &domain.AggregateBalance{InvoicedCash: dec("5"), InvoicedCheque: dec("10")}

	stmt, err := engine.BuildStatement(context.Background(), nil, aggregate)

	require.NoError(t, err)
	assert.Empty(t, stmt.History)
	assertDecimal(t, "15", stmt.FinalBalance.Total)
}
