package receipts

import (
	"fmt"
	"sort"

	"github.com/SscSPs/receipts_ledger/internal/apperrors"
	"github.com/SscSPs/receipts_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SortEvents orders events by CreatedAt ascending, then by store sequence.
// The input slice is left untouched.
func SortEvents(events []domain.LedgerEvent) []domain.LedgerEvent {
	sorted := make([]domain.LedgerEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		}
		return sorted[i].Seq < sorted[j].Seq
	})
	return sorted
}

// BuildStatement replays a customer's events into a running-balance history.
//
// Invoices add their split to the running cash and cheque debt. Payments go through Apply,
// so cash funds spill into cheque debt exactly as they do for invoice-linked payments, and
// any surplus accumulates as running credit. RunningTotal is cash + cheque - credit.
//
// FinalBalance comes from the aggregate, not from the replay: the events may cover only a
// window of the customer's history while the aggregate covers all of it.
func BuildStatement(events []domain.LedgerEvent, aggregate domain.AggregateBalance) (domain.Statement, error) {
	ordered := SortEvents(events)
	history := make([]domain.EnrichedEvent, 0, len(ordered))

	running := domain.DebtPair{Cash: decimal.Zero, Cheque: decimal.Zero}
	credit := decimal.Zero

	for _, ev := range ordered {
		enriched := domain.EnrichedEvent{LedgerEvent: ev}

		switch ev.Type {
		case domain.EventInvoice:
			split, err := invoiceSplit(ev)
			if err != nil {
				return domain.Statement{}, err
			}
			enriched.Split = &split
			running = running.Add(split)
		case domain.EventPayment:
			res, err := Apply(running, domain.PaymentInput{Amount: ev.Amount, Method: ev.Method, IsException: ev.IsException})
			if err != nil {
				return domain.Statement{}, fmt.Errorf("payment %s: %w", ev.ID, err)
			}
			enriched.Allocation = &res
			running = res.RemainingDebts
			credit = credit.Add(res.Surplus)
		default:
			return domain.Statement{}, fmt.Errorf("%w: unknown event type %q for %s", apperrors.ErrValidation, ev.Type, ev.ID)
		}

		enriched.RunningCash = domain.Round2(running.Cash)
		enriched.RunningCheque = domain.Round2(running.Cheque)
		enriched.RunningCredit = domain.Round2(credit)
		enriched.RunningTotal = domain.Round2(running.Total().Sub(credit))
		history = append(history, enriched)
	}

	return domain.Statement{
		History:      history,
		FinalBalance: aggregate.Balance(),
	}, nil
}

func invoiceSplit(ev domain.LedgerEvent) (domain.DebtPair, error) {
	if ev.Amount.IsNegative() {
		return domain.DebtPair{}, fmt.Errorf("%w: invoice %s total %s is negative", apperrors.ErrInvalidAmount, ev.ID, ev.Amount.String())
	}
	if ev.Split == nil {
		return Split(ev.Amount)
	}
	if ev.Split.IsNegative() {
		return domain.DebtPair{}, fmt.Errorf("%w: invoice %s has negative stored split", apperrors.ErrInconsistentState, ev.ID)
	}
	return *ev.Split, nil
}

// AggregateOf sums events into the all-time totals a store would report for them.
// Payments are grouped by method, so an exception-flagged cheque counts as cheque paid.
func AggregateOf(events []domain.LedgerEvent) (domain.AggregateBalance, error) {
	agg := domain.AggregateBalance{
		InvoicedCash:   decimal.Zero,
		InvoicedCheque: decimal.Zero,
		CashPaid:       decimal.Zero,
		ChequePaid:     decimal.Zero,
	}
	for _, ev := range events {
		switch ev.Type {
		case domain.EventInvoice:
			split, err := invoiceSplit(ev)
			if err != nil {
				return domain.AggregateBalance{}, err
			}
			agg.InvoicedCash = agg.InvoicedCash.Add(split.Cash)
			agg.InvoicedCheque = agg.InvoicedCheque.Add(split.Cheque)
		case domain.EventPayment:
			if ev.Amount.IsNegative() {
				return domain.AggregateBalance{}, fmt.Errorf("%w: payment %s amount %s is negative", apperrors.ErrInvalidAmount, ev.ID, ev.Amount.String())
			}
			if ev.Method == domain.MethodCash {
				agg.CashPaid = agg.CashPaid.Add(ev.Amount)
			} else {
				agg.ChequePaid = agg.ChequePaid.Add(ev.Amount)
			}
		default:
			return domain.AggregateBalance{}, fmt.Errorf("%w: unknown event type %q for %s", apperrors.ErrValidation, ev.Type, ev.ID)
		}
	}
	return agg, nil
}

// Reconcile checks a statement built from the customer's complete history against the
// aggregate. The replayed running total must match the aggregate total to the cent.
func Reconcile(stmt domain.Statement) error {
	replayed := decimal.Zero
	if n := len(stmt.History); n > 0 {
		replayed = stmt.History[n-1].RunningTotal
	}
	if !domain.WithinTolerance(replayed, stmt.FinalBalance.Total) {
		return fmt.Errorf("%w: replayed balance %s does not match aggregate balance %s",
			apperrors.ErrInconsistentState, replayed.String(), stmt.FinalBalance.Total.String())
	}
	return nil
}
