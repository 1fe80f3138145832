package receipts_test

import (
	"testing"
	"time"

	"github.com/SscSPs/receipts_ledger/internal/apperrors"
	"github.com/SscSPs/receipts_ledger/internal/core/domain"
	"github.com/SscSPs/receipts_ledger/internal/core/receipts"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func invoiceEvent(id string, seq int64, at time.Time, amount string) domain.LedgerEvent {
	return domain.LedgerEvent{Type: domain.EventInvoice, ID: id, Seq: seq, CreatedAt: at, Amount: dec(amount)}
}

func paymentEvent(id string, seq int64, at time.Time, amount string, method domain.PaymentMethod) domain.LedgerEvent {
	return domain.LedgerEvent{Type: domain.EventPayment, ID: id, Seq: seq, CreatedAt: at, Amount: dec(amount), Method: method}
}

func TestBuildStatement_InvoiceThenCashPayment(t *testing.T) {
	events := []domain.LedgerEvent{
		invoiceEvent("inv-1", 1, t0, "300"),
		paymentEvent("pay-1", 2, t0.Add(time.Hour), "100", domain.MethodCash),
	}
	agg := domain.AggregateBalance{
		InvoicedCash: dec("100"), InvoicedCheque: dec("200"),
		CashPaid: dec("100"), ChequePaid: decimal.Zero,
	}

	stmt, err := receipts.BuildStatement(events, agg)
	require.NoError(t, err)
	require.Len(t, stmt.History, 2)

	assert.True(t, dec("100").Equal(stmt.History[0].RunningCash))
	assert.True(t, dec("200").Equal(stmt.History[0].RunningCheque))
	assert.True(t, dec("300").Equal(stmt.History[0].RunningTotal))
	require.NotNil(t, stmt.History[0].Split)

	assert.True(t, stmt.History[1].RunningCash.IsZero())
	assert.True(t, dec("200").Equal(stmt.History[1].RunningCheque))
	assert.True(t, dec("200").Equal(stmt.History[1].RunningTotal))
	require.NotNil(t, stmt.History[1].Allocation)

	assert.True(t, dec("0").Equal(stmt.FinalBalance.Cash))
	assert.True(t, dec("200").Equal(stmt.FinalBalance.Cheque))
	assert.True(t, dec("200").Equal(stmt.FinalBalance.Total))
	assert.NoError(t, receipts.Reconcile(stmt))
}

func TestBuildStatement_CashSpillsIntoChequeAndCredit(t *testing.T) {
	events := []domain.LedgerEvent{
		invoiceEvent("inv-1", 1, t0, "300"),
		paymentEvent("pay-1", 2, t0.Add(time.Minute), "250", domain.MethodCash),
		paymentEvent("pay-2", 3, t0.Add(2*time.Minute), "100", domain.MethodCheque),
	}

	stmt, err := receipts.BuildStatement(events, domain.AggregateBalance{})
	require.NoError(t, err)
	require.Len(t, stmt.History, 3)

	after := stmt.History[1]
	assert.True(t, after.RunningCash.IsZero())
	assert.True(t, dec("50").Equal(after.RunningCheque))
	assert.True(t, dec("50").Equal(after.RunningTotal))

	last := stmt.History[2]
	assert.True(t, last.RunningCheque.IsZero())
	assert.True(t, dec("50").Equal(last.RunningCredit))
	assert.True(t, dec("-50").Equal(last.RunningTotal))
	assert.True(t, dec("50").Equal(last.Allocation.Surplus))
}

func TestBuildStatement_OrdersByTimeThenSequence(t *testing.T) {
	// Same timestamp: sequence decides, regardless of input order.
	events := []domain.LedgerEvent{
		paymentEvent("pay-1", 2, t0, "100", domain.MethodCash),
		invoiceEvent("inv-2", 3, t0.Add(time.Hour), "30"),
		invoiceEvent("inv-1", 1, t0, "300"),
	}

	stmt, err := receipts.BuildStatement(events, domain.AggregateBalance{})
	require.NoError(t, err)
	require.Len(t, stmt.History, 3)
	assert.Equal(t, "inv-1", stmt.History[0].ID)
	assert.Equal(t, "pay-1", stmt.History[1].ID)
	assert.Equal(t, "inv-2", stmt.History[2].ID)
	assert.True(t, dec("230").Equal(stmt.History[2].RunningTotal))

	// Input must not be reordered in place.
	assert.Equal(t, "pay-1", events[0].ID)
}

func TestBuildStatement_UsesStoredSplit(t *testing.T) {
	ev := invoiceEvent("inv-1", 1, t0, "100")
	ev.Split = &domain.DebtPair{Cash: dec("40"), Cheque: dec("60")}

	stmt, err := receipts.BuildStatement([]domain.LedgerEvent{ev}, domain.AggregateBalance{})
	require.NoError(t, err)
	assert.True(t, dec("40").Equal(stmt.History[0].RunningCash))
	assert.True(t, dec("60").Equal(stmt.History[0].RunningCheque))
}

func TestBuildStatement_Errors(t *testing.T) {
	_, err := receipts.BuildStatement([]domain.LedgerEvent{invoiceEvent("inv-1", 1, t0, "-5")}, domain.AggregateBalance{})
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)

	bad := invoiceEvent("inv-1", 1, t0, "5")
	bad.Split = &domain.DebtPair{Cash: dec("-1"), Cheque: dec("6")}
	_, err = receipts.BuildStatement([]domain.LedgerEvent{bad}, domain.AggregateBalance{})
	assert.ErrorIs(t, err, apperrors.ErrInconsistentState)

	_, err = receipts.BuildStatement([]domain.LedgerEvent{{Type: "REFUND", ID: "x", CreatedAt: t0}}, domain.AggregateBalance{})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestBuildStatement_Empty(t *testing.T) {
	stmt, err := receipts.BuildStatement(nil, domain.AggregateBalance{})
	require.NoError(t, err)
	assert.Empty(t, stmt.History)
	assert.NoError(t, receipts.Reconcile(stmt))
}

func TestReconcile_DetectsDrift(t *testing.T) {
	events := []domain.LedgerEvent{invoiceEvent("inv-1", 1, t0, "300")}
	agg := domain.AggregateBalance{InvoicedCash: dec("100"), InvoicedCheque: dec("150")}

	stmt, err := receipts.BuildStatement(events, agg)
	require.NoError(t, err)
	assert.ErrorIs(t, receipts.Reconcile(stmt), apperrors.ErrInconsistentState)
}

func TestReconcile_WindowedTrailMayDiffer(t *testing.T) {
	// Only the payment falls in the window; the aggregate still covers all history.
	events := []domain.LedgerEvent{paymentEvent("pay-1", 2, t0, "100", domain.MethodCash)}
	agg := domain.AggregateBalance{InvoicedCash: dec("100"), InvoicedCheque: dec("200"), CashPaid: dec("100")}

	stmt, err := receipts.BuildStatement(events, agg)
	require.NoError(t, err)
	assert.True(t, dec("-100").Equal(stmt.History[0].RunningTotal))
	assert.True(t, dec("200").Equal(stmt.FinalBalance.Total))
}

func TestAggregateOf(t *testing.T) {
	exception := paymentEvent("pay-3", 4, t0, "25", domain.MethodCheque)
	exception.IsException = true
	events := []domain.LedgerEvent{
		invoiceEvent("inv-1", 1, t0, "300"),
		paymentEvent("pay-1", 2, t0, "50", domain.MethodCash),
		paymentEvent("pay-2", 3, t0, "70", domain.MethodBankTransfer),
		exception,
	}

	agg, err := receipts.AggregateOf(events)
	require.NoError(t, err)
	assert.True(t, dec("100").Equal(agg.InvoicedCash))
	assert.True(t, dec("200").Equal(agg.InvoicedCheque))
	assert.True(t, dec("50").Equal(agg.CashPaid))
	assert.True(t, dec("95").Equal(agg.ChequePaid), "exception cheque stays in the cheque bucket")

	stmt, err := receipts.BuildStatement(events, agg)
	require.NoError(t, err)
	assert.NoError(t, receipts.Reconcile(stmt))
	assert.True(t, dec("155").Equal(stmt.FinalBalance.Total))
}

func TestBuildStatement_ExceptionPaymentFinalBalanceByMethod(t *testing.T) {
	exception := paymentEvent("pay-1", 2, t0.Add(time.Hour), "25", domain.MethodCheque)
	exception.IsException = true
	events := []domain.LedgerEvent{invoiceEvent("inv-1", 1, t0, "300"), exception}

	agg, err := receipts.AggregateOf(events)
	require.NoError(t, err)
	stmt, err := receipts.BuildStatement(events, agg)
	require.NoError(t, err)

	// The replay still treats the exception cheque as a cash fund.
	assert.True(t, dec("75").Equal(stmt.History[1].RunningCash))
	assert.True(t, dec("200").Equal(stmt.History[1].RunningCheque))

	assert.True(t, dec("100").Equal(stmt.FinalBalance.Cash))
	assert.True(t, dec("175").Equal(stmt.FinalBalance.Cheque))
	assert.True(t, dec("275").Equal(stmt.FinalBalance.Total))
	assert.NoError(t, receipts.Reconcile(stmt))
}

func TestBuildStatement_SameInstantKeepsCreationOrder(t *testing.T) {
	// Invoices and payments draw Seq from one shared counter, so a payment recorded right
	// after an invoice in the same instant still replays after it.
	events := []domain.LedgerEvent{
		paymentEvent("pay-1", 8, t0, "100", domain.MethodCash),
		invoiceEvent("inv-1", 7, t0, "300"),
	}

	stmt, err := receipts.BuildStatement(events, domain.AggregateBalance{})
	require.NoError(t, err)
	require.Len(t, stmt.History, 2)

	assert.Equal(t, "inv-1", stmt.History[0].ID)
	assert.Equal(t, "pay-1", stmt.History[1].ID)
	assert.True(t, stmt.History[1].RunningCash.IsZero())
	assert.True(t, dec("200").Equal(stmt.History[1].RunningCheque))
	assert.True(t, stmt.History[1].RunningCredit.IsZero())
}

func TestAggregateOf_RejectsNegativePayment(t *testing.T) {
	_, err := receipts.AggregateOf([]domain.LedgerEvent{paymentEvent("pay-1", 1, t0, "-1", domain.MethodCash)})
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
}
