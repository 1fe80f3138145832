package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/receipts_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/receipts_ledger/internal/core/ports/services"
	"github.com/SscSPs/receipts_ledger/internal/core/receipts"
	"github.com/shopspring/decimal"
)

type engineService struct {
	BaseService
}

// NewEngineService creates the stateless calculation service.
func NewEngineService() portssvc.EngineSvc {
	return &engineService{}
}

var _ portssvc.EngineSvc = (*engineService)(nil)

func (s *engineService) Split(ctx context.Context, total decimal.Decimal) (domain.DebtPair, error) {
	split, err := receipts.Split(total)
	if err != nil {
		s.LogDebug(ctx, "Split rejected", slog.String("error", err.Error()))
		return domain.DebtPair{}, err
	}
	return split, nil
}

func (s *engineService) Apply(ctx context.Context, debts domain.DebtPair, payment domain.PaymentInput) (domain.AllocationResult, error) {
	res, err := receipts.Apply(debts, payment)
	if err != nil {
		s.LogDebug(ctx, "Allocation rejected", slog.String("error", err.Error()))
		return domain.AllocationResult{}, err
	}
	return res, nil
}

func (s *engineService) Resolve(_ context.Context, total, remaining decimal.Decimal) domain.InvoiceStatus {
	return receipts.Resolve(total, remaining)
}

func (s *engineService) BuildStatement(ctx context.Context, events []domain.LedgerEvent, aggregate *domain.AggregateBalance) (domain.Statement, error) {
	var agg domain.AggregateBalance
	if aggregate != nil {
		agg = *aggregate
	} else {
		derived, err := receipts.AggregateOf(events)
		if err != nil {
			return domain.Statement{}, err
		}
		agg = derived
	}

	stmt, err := receipts.BuildStatement(events, agg)
	if err != nil {
		s.LogDebug(ctx, "Statement rejected", slog.String("error", err.Error()))
		return domain.Statement{}, err
	}
	return stmt, nil
}
