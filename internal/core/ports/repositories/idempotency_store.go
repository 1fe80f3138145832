package repositories

import (
	"context"
	"time"
)

// IdempotencyRecord is what a store remembers about a claimed key.
type IdempotencyRecord struct {
	// Fingerprint identifies the request that claimed the key.
	Fingerprint string
	// PaymentID is empty while the first submission is still in flight.
	PaymentID string
}

// IdempotencyStore remembers which client submission keys have already produced a payment.
type IdempotencyStore interface {
	// Reserve claims key for the request identified by fingerprint. ttl should be short: it
	// only bounds how long an abandoned submission blocks the key. When the key is already
	// held Reserve returns false and the stored record.
	Reserve(ctx context.Context, key, fingerprint string, ttl time.Duration) (bool, IdempotencyRecord, error)

	// Complete records the payment ID produced for a reserved key and keeps it for ttl.
	Complete(ctx context.Context, key string, paymentID string, ttl time.Duration) error

	// Release frees a reserved key after a failed submission.
	Release(ctx context.Context, key string) error
}
