package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/receipts_ledger/internal/apperrors"
	"github.com/SscSPs/receipts_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/receipts_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/receipts_ledger/internal/core/ports/services"
	"github.com/SscSPs/receipts_ledger/internal/dto"
	"github.com/google/uuid"
)

type delegateService struct {
	BaseService
	delegateRepo portsrepo.DelegateRepositoryFacade
}

// NewDelegateService creates a new delegate service.
func NewDelegateService(repo portsrepo.DelegateRepositoryFacade) portssvc.DelegateSvcFacade {
	return &delegateService{delegateRepo: repo}
}

var _ portssvc.DelegateSvcFacade = (*delegateService)(nil)

func (s *delegateService) CreateDelegate(ctx context.Context, req dto.CreateDelegateRequest) (*domain.Delegate, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewAppError(400, "delegate name is required", apperrors.ErrValidation)
	}
	role := domain.DelegateRole(strings.ToUpper(strings.TrimSpace(req.Role)))
	if role == "" {
		role = domain.DefaultDelegateRole
	}

	now := time.Now().UTC()
	delegate := domain.Delegate{
		DelegateID:  uuid.NewString(),
		Name:        name,
		Phone:       strings.TrimSpace(req.Phone),
		Role:        role,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	if err := s.delegateRepo.SaveDelegate(ctx, delegate); err != nil {
		s.LogError(ctx, err, "Failed to save delegate", slog.String("delegate_id", delegate.DelegateID))
		return nil, err
	}

	s.LogInfo(ctx, "Delegate created successfully", slog.String("delegate_id", delegate.DelegateID))
	return &delegate, nil
}

func (s *delegateService) ListDelegates(ctx context.Context) ([]domain.Delegate, error) {
	delegates, err := s.delegateRepo.ListDelegates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list delegates")
		return nil, err
	}
	if delegates == nil {
		return []domain.Delegate{}, nil
	}
	return delegates, nil
}

func (s *delegateService) DeleteDelegate(ctx context.Context, delegateID string) (*domain.Delegate, error) {
	deleted, err := s.delegateRepo.DeleteDelegate(ctx, delegateID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete delegate", slog.String("delegate_id", delegateID))
		}
		return nil, err
	}
	s.LogInfo(ctx, "Delegate deleted", slog.String("delegate_id", delegateID))
	return deleted, nil
}
