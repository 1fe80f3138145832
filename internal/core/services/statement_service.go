package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/receipts_ledger/internal/apperrors"
	"github.com/SscSPs/receipts_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/receipts_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/receipts_ledger/internal/core/ports/services"
	"github.com/SscSPs/receipts_ledger/internal/core/receipts"
)

type statementService struct {
	BaseService
	statementRepo portsrepo.StatementRepository
	customerRepo  portsrepo.CustomerReader
	defaultDays   int
	now           func() time.Time
}

// StatementServiceOption is a functional option for configuring the statement service
type StatementServiceOption func(*statementService)

// WithDefaultWindowDays limits statements requested without bounds to the last days days.
func WithDefaultWindowDays(days int) StatementServiceOption {
	return func(s *statementService) {
		s.defaultDays = days
	}
}

// WithStatementClock overrides the clock used for the default window.
func WithStatementClock(now func() time.Time) StatementServiceOption {
	return func(s *statementService) {
		s.now = now
	}
}

// NewStatementService creates a new statement service with the provided options
func NewStatementService(statementRepo portsrepo.StatementRepository, customerRepo portsrepo.CustomerReader, options ...StatementServiceOption) portssvc.StatementSvc {
	svc := &statementService{
		statementRepo: statementRepo,
		customerRepo:  customerRepo,
		now:           time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.StatementSvc = (*statementService)(nil)

func (s *statementService) GetStatement(ctx context.Context, customerID string, from, to *time.Time) (*domain.StatementOfAccount, error) {
	if from != nil && to != nil && from.After(*to) {
		return nil, apperrors.NewAppError(400, "from must not be after to", apperrors.ErrValidation)
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find customer for statement", slog.String("customer_id", customerID))
		}
		return nil, err
	}

	if from == nil && to == nil && s.defaultDays > 0 {
		start := s.now().UTC().AddDate(0, 0, -s.defaultDays)
		from = &start
	}

	events, err := s.statementRepo.ListLedgerEvents(ctx, customerID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger events", slog.String("customer_id", customerID))
		return nil, err
	}
	aggregate, err := s.statementRepo.GetAggregateBalance(ctx, customerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load aggregate balance", slog.String("customer_id", customerID))
		return nil, err
	}

	stmt, err := receipts.BuildStatement(events, aggregate)
	if err != nil {
		s.LogError(ctx, err, "Failed to build statement", slog.String("customer_id", customerID))
		return nil, err
	}

	// Only a full-history replay must land on the aggregate balance.
	if from == nil && to == nil {
		if err := receipts.Reconcile(stmt); err != nil {
			s.LogError(ctx, err, "Statement does not reconcile with aggregate balance",
				slog.String("customer_id", customerID))
			return nil, err
		}
	}

	s.LogDebug(ctx, "Statement generated",
		slog.String("customer_id", customerID),
		slog.Int("event_count", len(stmt.History)))
	return &domain.StatementOfAccount{
		Customer:  *customer,
		From:      from,
		To:        to,
		Statement: stmt,
	}, nil
}
