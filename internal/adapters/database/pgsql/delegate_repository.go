package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/receipts_ledger/internal/apperrors"
	"github.com/SscSPs/receipts_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/receipts_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/receipts_ledger/internal/models"
	"github.com/SscSPs/receipts_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDelegateRepository struct {
	BaseRepository
}

func newPgxDelegateRepository(pool *pgxpool.Pool) portsrepo.DelegateRepositoryFacade {
	return &PgxDelegateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DelegateRepositoryFacade = (*PgxDelegateRepository)(nil)

const delegateColumns = `delegate_id, name, phone, role, created_at, last_updated_at`

// SaveDelegate inserts a new delegate.
func (r *PgxDelegateRepository) SaveDelegate(ctx context.Context, delegate domain.Delegate) error {
	m := mapping.ToModelDelegate(delegate)
	query := `INSERT INTO delegates (` + delegateColumns + `) VALUES ($1, $2, $3, $4, $5, $6);`
	_, err := r.Pool.Exec(ctx, query, m.DelegateID, m.Name, m.Phone, m.Role, m.CreatedAt, m.LastUpdatedAt)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return fmt.Errorf("%w: delegate with ID %s already exists", apperrors.ErrDuplicate, m.DelegateID)
		}
		return fmt.Errorf("failed to save delegate %s: %w", m.DelegateID, err)
	}
	return nil
}

// FindDelegateByID retrieves a delegate by its ID.
func (r *PgxDelegateRepository) FindDelegateByID(ctx context.Context, delegateID string) (*domain.Delegate, error) {
	query := `SELECT ` + delegateColumns + ` FROM delegates WHERE delegate_id = $1;`
	d, err := scanDelegate(r.Pool.QueryRow(ctx, query, delegateID))
	if err != nil {
		if isMissingRow(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find delegate %s: %w", delegateID, err)
	}
	return &d, nil
}

// ListDelegates retrieves all delegates ordered by name.
func (r *PgxDelegateRepository) ListDelegates(ctx context.Context) ([]domain.Delegate, error) {
	query := `SELECT ` + delegateColumns + ` FROM delegates ORDER BY name, delegate_id;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list delegates: %w", err)
	}
	defer rows.Close()

	delegates := []domain.Delegate{}
	for rows.Next() {
		d, err := scanDelegate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan delegate row: %w", err)
		}
		delegates = append(delegates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating delegate rows: %w", err)
	}
	return delegates, nil
}

// DeleteDelegate removes a delegate; its customers become unassigned.
func (r *PgxDelegateRepository) DeleteDelegate(ctx context.Context, delegateID string) (*domain.Delegate, error) {
	query := `DELETE FROM delegates WHERE delegate_id = $1 RETURNING ` + delegateColumns + `;`
	d, err := scanDelegate(r.Pool.QueryRow(ctx, query, delegateID))
	if err != nil {
		if isMissingRow(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete delegate %s: %w", delegateID, err)
	}
	return &d, nil
}

func scanDelegate(row pgx.Row) (domain.Delegate, error) {
	var m models.Delegate
	if err := row.Scan(&m.DelegateID, &m.Name, &m.Phone, &m.Role, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
		return domain.Delegate{}, err
	}
	return mapping.ToDomainDelegate(m), nil
}
