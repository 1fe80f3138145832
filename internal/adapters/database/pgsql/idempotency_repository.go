package pgsql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	portsrepo "github.com/SscSPs/receipts_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxIdempotencyStore keeps Idempotency-Key reservations in Postgres when Redis is not configured.
type PgxIdempotencyStore struct {
	BaseRepository
}

// NewIdempotencyStore creates a Postgres-backed idempotency store.
func NewIdempotencyStore(pool *pgxpool.Pool) *PgxIdempotencyStore {
	return &PgxIdempotencyStore{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.IdempotencyStore = (*PgxIdempotencyStore)(nil)

// Reserve claims key unless a live reservation exists. Expired reservations are taken over.
func (s *PgxIdempotencyStore) Reserve(ctx context.Context, key, fingerprint string, ttl time.Duration) (bool, portsrepo.IdempotencyRecord, error) {
	now := time.Now().UTC()
	query := `
		INSERT INTO idempotency_keys (idempotency_key, request_fingerprint, payment_id, created_at, expires_at)
		VALUES ($1, $2, NULL, $3, $4)
		ON CONFLICT (idempotency_key) DO UPDATE
		    SET request_fingerprint = EXCLUDED.request_fingerprint, payment_id = NULL,
		        created_at = EXCLUDED.created_at, expires_at = EXCLUDED.expires_at
		    WHERE idempotency_keys.expires_at <= $3;
	`
	tag, err := s.Pool.Exec(ctx, query, key, fingerprint, now, now.Add(ttl))
	if err != nil {
		return false, portsrepo.IdempotencyRecord{}, fmt.Errorf("failed to reserve idempotency key: %w", err)
	}
	if tag.RowsAffected() == 1 {
		return true, portsrepo.IdempotencyRecord{Fingerprint: fingerprint}, nil
	}

	var record portsrepo.IdempotencyRecord
	var paymentID sql.NullString
	err = s.Pool.QueryRow(ctx,
		`SELECT request_fingerprint, payment_id FROM idempotency_keys WHERE idempotency_key = $1;`, key,
	).Scan(&record.Fingerprint, &paymentID)
	if err != nil {
		return false, portsrepo.IdempotencyRecord{}, fmt.Errorf("failed to read idempotency key: %w", err)
	}
	record.PaymentID = paymentID.String
	return false, record, nil
}

// Complete records the payment produced for key and extends the key to the full ttl.
func (s *PgxIdempotencyStore) Complete(ctx context.Context, key string, paymentID string, ttl time.Duration) error {
	_, err := s.Pool.Exec(ctx,
		`UPDATE idempotency_keys SET payment_id = $2, expires_at = $3 WHERE idempotency_key = $1;`,
		key, paymentID, time.Now().UTC().Add(ttl))
	if err != nil {
		return fmt.Errorf("failed to complete idempotency key: %w", err)
	}
	return nil
}

// Release drops an unfinished reservation.
func (s *PgxIdempotencyStore) Release(ctx context.Context, key string) error {
	_, err := s.Pool.Exec(ctx, `DELETE FROM idempotency_keys WHERE idempotency_key = $1 AND payment_id IS NULL;`, key)
	if err != nil {
		return fmt.Errorf("failed to release idempotency key: %w", err)
	}
	return nil
}
