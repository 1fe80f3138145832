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

type PgxCustomerRepository struct {
	BaseRepository
}

// newPgxCustomerRepository creates a new repository for customer data.
func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxCustomerRepository implements portsrepo.CustomerRepositoryFacade
var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

const customerWithBalanceSQL = `
	SELECT c.customer_id, c.name, c.phone, c.notes, c.delegate_id, COALESCE(d.name, ''),
	       c.created_at, c.last_updated_at,` + aggregateColumnsSQL + `
	FROM customers c
	LEFT JOIN delegates d ON d.delegate_id = c.delegate_id
	LEFT JOIN (` + invoiceTotalsSQL + `) i ON i.customer_id = c.customer_id
	LEFT JOIN (` + paymentTotalsSQL + `) p ON p.customer_id = c.customer_id`

// SaveCustomer inserts a new customer.
func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	query := `
		INSERT INTO customers (customer_id, name, phone, notes, delegate_id, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CustomerID, m.Name, m.Phone, m.Notes, m.DelegateID, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return fmt.Errorf("%w: customer with ID %s already exists", apperrors.ErrDuplicate, m.CustomerID)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: delegate %s does not exist", apperrors.ErrValidation, m.DelegateID.String)
		}
		return fmt.Errorf("failed to save customer %s: %w", m.CustomerID, err)
	}
	return nil
}

// FindCustomerByID retrieves a customer and its live balance.
func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := customerWithBalanceSQL + ` WHERE c.customer_id = $3;`
	row := r.Pool.QueryRow(ctx, query, nil, nil, customerID)
	customer, err := scanCustomerWithBalance(row)
	if err != nil {
		if isMissingRow(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer %s: %w", customerID, err)
	}
	return &customer, nil
}

// ListCustomersWithBalances retrieves every customer ordered by name.
func (r *PgxCustomerRepository) ListCustomersWithBalances(ctx context.Context) ([]domain.Customer, error) {
	query := customerWithBalanceSQL + ` ORDER BY c.name, c.customer_id;`
	rows, err := r.Pool.Query(ctx, query, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		c, err := scanCustomerWithBalance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", err)
	}
	return customers, nil
}

func scanCustomerWithBalance(row pgx.Row) (domain.Customer, error) {
	var m models.Customer
	var delegateName string
	var agg aggregateScan

	dest := []any{
		&m.CustomerID, &m.Name, &m.Phone, &m.Notes, &m.DelegateID, &delegateName,
		&m.CreatedAt, &m.LastUpdatedAt,
	}
	if err := row.Scan(append(dest, agg.targets()...)...); err != nil {
		return domain.Customer{}, err
	}

	c := mapping.ToDomainCustomer(m)
	c.DelegateName = delegateName
	balance := agg.toDomain().Balance()
	c.Balance = &balance
	return c, nil
}
