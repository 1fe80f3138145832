package services

import (
	"context"

	"github.com/SscSPs/receipts_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EngineSvc exposes the pure receipts calculations without touching storage.
type EngineSvc interface {
	Split(ctx context.Context, total decimal.Decimal) (domain.DebtPair, error)
	Apply(ctx context.Context, debts domain.DebtPair, payment domain.PaymentInput) (domain.AllocationResult, error)
	Resolve(ctx context.Context, total, remaining decimal.Decimal) domain.InvoiceStatus
	// BuildStatement derives the aggregate from the events themselves when aggregate is nil.
	BuildStatement(ctx context.Context, events []domain.LedgerEvent, aggregate *domain.AggregateBalance) (domain.Statement, error)
}
