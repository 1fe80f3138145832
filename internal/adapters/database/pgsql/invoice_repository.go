package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/receipts_ledger/internal/apperrors"
	"github.com/SscSPs/receipts_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/receipts_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/receipts_ledger/internal/models"
	"github.com/SscSPs/receipts_ledger/internal/utils/mapping"
	"github.com/SscSPs/receipts_ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoice data.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceSelectSQL = `
	SELECT i.invoice_id, i.invoice_number, i.customer_id, i.total_amount, i.cash_debt, i.cheque_debt,
	       i.invoice_date, i.notes, i.status, i.seq, i.created_at, i.last_updated_at, c.name
	FROM invoices i
	JOIN customers c ON c.customer_id = i.customer_id`

// SaveInvoice draws the next invoice number and inserts the invoice. A number drawn for a
// failed insert is not reused.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error) {
	var next int64
	if err := r.Pool.QueryRow(ctx, `SELECT nextval('invoice_number_seq');`).Scan(&next); err != nil {
		return nil, fmt.Errorf("failed to draw invoice number: %w", err)
	}
	invoice.InvoiceNumber = domain.FormatInvoiceNumber(next)

	m := mapping.ToModelInvoice(invoice)
	query := `
		INSERT INTO invoices (invoice_id, invoice_number, customer_id, total_amount, cash_debt, cheque_debt,
		                      invoice_date, notes, status, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING seq;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.InvoiceID, m.InvoiceNumber, m.CustomerID, m.TotalAmount, m.CashDebt, m.ChequeDebt,
		m.InvoiceDate, m.Notes, m.Status, m.CreatedAt, m.LastUpdatedAt,
	).Scan(&invoice.Seq)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return nil, fmt.Errorf("%w: invoice %s already exists", apperrors.ErrDuplicate, m.InvoiceNumber)
		case pgForeignKeyViolation:
			return nil, fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, m.CustomerID)
		case pgCheckViolation:
			return nil, fmt.Errorf("%w: invoice split does not sum to its total", apperrors.ErrInvalidAmount)
		}
		return nil, fmt.Errorf("failed to save invoice %s: %w", m.InvoiceID, err)
	}
	return &invoice, nil
}

// FindInvoiceByID retrieves an invoice by its ID.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	inv, err := scanInvoice(r.Pool.QueryRow(ctx, invoiceSelectSQL+` WHERE i.invoice_id = $1;`, invoiceID))
	if err != nil {
		if isMissingRow(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}
	return &inv, nil
}

// ListInvoices retrieves a page of invoices, newest first.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, customerID *string, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	limit = pagination.ClampLimit(limit)

	args := []any{customerID}
	filter := ` WHERE ($1::uuid IS NULL OR i.customer_id = $1)`
	page, args, err := keysetPage("i", args, limit, nextToken)
	if err != nil {
		return nil, nil, err
	}

	rows, err := r.Pool.Query(ctx, invoiceSelectSQL+filter+page+`;`, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	invoices := []domain.Invoice{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating invoice rows: %w", err)
	}

	invoices, next := trimPage(invoices, limit, func(inv domain.Invoice) pagination.Cursor {
		return pagination.Cursor{CreatedAt: inv.CreatedAt, Seq: inv.Seq}
	})
	return invoices, next, nil
}

func scanInvoice(row pgx.Row) (domain.Invoice, error) {
	var m models.Invoice
	var customerName string
	err := row.Scan(
		&m.InvoiceID, &m.InvoiceNumber, &m.CustomerID, &m.TotalAmount, &m.CashDebt, &m.ChequeDebt,
		&m.InvoiceDate, &m.Notes, &m.Status, &m.Seq, &m.CreatedAt, &m.LastUpdatedAt, &customerName,
	)
	if err != nil {
		return domain.Invoice{}, err
	}
	inv := mapping.ToDomainInvoice(m)
	inv.CustomerName = customerName
	return inv, nil
}
