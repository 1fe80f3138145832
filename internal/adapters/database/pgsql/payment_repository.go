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
	"github.com/shopspring/decimal"
)

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for payment data.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryWithTx {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxPaymentRepository implements portsrepo.PaymentRepositoryWithTx
var _ portsrepo.PaymentRepositoryWithTx = (*PgxPaymentRepository)(nil)

const paymentSelectSQL = `
	SELECT p.payment_id, p.customer_id, p.invoice_id, p.amount, p.method, p.is_exception,
	       p.bank_name, p.notes, p.seq, p.created_at, p.last_updated_at,
	       c.name, COALESCE(i.invoice_number, '')
	FROM payments p
	JOIN customers c ON c.customer_id = p.customer_id
	LEFT JOIN invoices i ON i.invoice_id = p.invoice_id`

// SavePayment inserts a payment and, for invoice-linked payments, resolves the invoice's
// status against the paid sum within the same transaction.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment, resolve portsrepo.StatusResolverFunc) (*domain.Invoice, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	// Will be ignored if transaction is committed successfully
	defer r.Rollback(ctx, tx)

	var invoice *domain.Invoice
	if payment.InvoiceID != nil {
		// Lock the invoice so concurrent payments against it resolve one after another.
		locked, err := scanInvoice(tx.QueryRow(ctx, invoiceSelectSQL+` WHERE i.invoice_id = $1 FOR UPDATE OF i;`, *payment.InvoiceID))
		if err != nil {
			if isMissingRow(err) {
				return nil, fmt.Errorf("%w: invoice %s", apperrors.ErrNotFound, *payment.InvoiceID)
			}
			return nil, apperrors.NewAppError(500, "failed to lock invoice "+*payment.InvoiceID, err)
		}
		if locked.CustomerID != payment.CustomerID {
			return nil, fmt.Errorf("%w: invoice %s does not belong to customer %s", apperrors.ErrValidation, locked.InvoiceID, payment.CustomerID)
		}
		invoice = &locked
	}

	m := mapping.ToModelPayment(payment)
	insert := `
		INSERT INTO payments (payment_id, customer_id, invoice_id, amount, method, is_exception,
		                      bank_name, notes, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, insert,
		m.PaymentID, m.CustomerID, m.InvoiceID, m.Amount, m.Method, m.IsException,
		m.BankName, m.Notes, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return nil, fmt.Errorf("%w: payment %s already exists", apperrors.ErrDuplicate, m.PaymentID)
		case pgForeignKeyViolation:
			return nil, fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, m.CustomerID)
		case pgCheckViolation:
			return nil, fmt.Errorf("%w: payment %s rejected by ledger constraints", apperrors.ErrInvalidAmount, m.PaymentID)
		}
		return nil, apperrors.NewAppError(500, "failed to insert payment "+m.PaymentID, err)
	}

	if invoice != nil {
		var paid decimal.Decimal
		err = tx.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE invoice_id = $1;`, invoice.InvoiceID).Scan(&paid)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to sum payments for invoice "+invoice.InvoiceID, err)
		}

		invoice.Status = resolve(invoice.TotalAmount, paid)
		invoice.LastUpdatedAt = payment.CreatedAt
		_, err = tx.Exec(ctx, `UPDATE invoices SET status = $1, last_updated_at = $2 WHERE invoice_id = $3;`,
			string(invoice.Status), invoice.LastUpdatedAt, invoice.InvoiceID)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to update status of invoice "+invoice.InvoiceID, err)
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return invoice, nil
}

// FindPaymentByID retrieves a payment by its ID.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	p, err := scanPayment(r.Pool.QueryRow(ctx, paymentSelectSQL+` WHERE p.payment_id = $1;`, paymentID))
	if err != nil {
		if isMissingRow(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment %s: %w", paymentID, err)
	}
	return &p, nil
}

// ListPaymentsByInvoiceID retrieves payments linked to an invoice in creation order.
func (r *PgxPaymentRepository) ListPaymentsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.Payment, error) {
	byInvoice, err := r.ListPaymentsByInvoiceIDs(ctx, []string{invoiceID})
	if err != nil {
		return nil, err
	}
	if payments, ok := byInvoice[invoiceID]; ok {
		return payments, nil
	}
	return []domain.Payment{}, nil
}

// ListPaymentsByInvoiceIDs retrieves linked payments grouped by invoice, each group in creation order.
func (r *PgxPaymentRepository) ListPaymentsByInvoiceIDs(ctx context.Context, invoiceIDs []string) (map[string][]domain.Payment, error) {
	result := make(map[string][]domain.Payment, len(invoiceIDs))
	if len(invoiceIDs) == 0 {
		return result, nil
	}

	query := paymentSelectSQL + ` WHERE p.invoice_id = ANY($1::uuid[]) ORDER BY p.created_at, p.seq;`
	rows, err := r.Pool.Query(ctx, query, invoiceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for invoices: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		result[*p.InvoiceID] = append(result[*p.InvoiceID], p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}
	return result, nil
}

// ListPayments retrieves a page of payments, newest first.
func (r *PgxPaymentRepository) ListPayments(ctx context.Context, filter domain.PaymentFilter, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	limit = pagination.ClampLimit(limit)

	args := []any{filter.CustomerID, filter.From, filter.To}
	where := ` WHERE ($1::uuid IS NULL OR p.customer_id = $1)
		AND ($2::timestamptz IS NULL OR p.created_at >= $2)
		AND ($3::timestamptz IS NULL OR p.created_at <= $3)`
	page, args, err := keysetPage("p", args, limit, nextToken)
	if err != nil {
		return nil, nil, err
	}

	rows, err := r.Pool.Query(ctx, paymentSelectSQL+where+page+`;`, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating payment rows: %w", err)
	}

	payments, next := trimPage(payments, limit, func(p domain.Payment) pagination.Cursor {
		return pagination.Cursor{CreatedAt: p.CreatedAt, Seq: p.Seq}
	})
	return payments, next, nil
}

func scanPayment(row pgx.Row) (domain.Payment, error) {
	var m models.Payment
	var customerName, invoiceNumber string
	err := row.Scan(
		&m.PaymentID, &m.CustomerID, &m.InvoiceID, &m.Amount, &m.Method, &m.IsException,
		&m.BankName, &m.Notes, &m.Seq, &m.CreatedAt, &m.LastUpdatedAt,
		&customerName, &invoiceNumber,
	)
	if err != nil {
		return domain.Payment{}, err
	}
	p := mapping.ToDomainPayment(m)
	p.CustomerName = customerName
	p.InvoiceNumber = invoiceNumber
	return p, nil
}
