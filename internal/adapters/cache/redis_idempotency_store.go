package cache

import (
	"context"
	"fmt"
	"time"

	portsrepo "github.com/SscSPs/receipts_ledger/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "receipts:idempotency:"

const fieldPaymentID = "payment_id"

// reserveScript creates the reservation hash when the key is free and otherwise
// returns the stored fingerprint and payment ID.
var reserveScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 0 then
	redis.call("HSET", KEYS[1], "fingerprint", ARGV[1])
	redis.call("PEXPIRE", KEYS[1], ARGV[2])
	return {1, ARGV[1], ""}
end
local v = redis.call("HMGET", KEYS[1], "fingerprint", "payment_id")
return {0, v[1] or "", v[2] or ""}`)

// releaseScript deletes a key only while it has no payment ID.
var releaseScript = redis.NewScript(`
if redis.call("HEXISTS", KEYS[1], "payment_id") == 0 then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// RedisIdempotencyStore implements IdempotencyStore using Redis, so several API
// instances share one view of submitted Idempotency-Keys.
type RedisIdempotencyStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisIdempotencyStore connects to the Redis instance at url (redis://host:port/db).
func NewRedisIdempotencyStore(ctx context.Context, url string) (*RedisIdempotencyStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid Redis URL: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisIdempotencyStoreWithClient(client, ""), nil
}

// NewRedisIdempotencyStoreWithClient creates a store with an existing Redis client.
func NewRedisIdempotencyStoreWithClient(client *redis.Client, keyPrefix string) *RedisIdempotencyStore {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	return &RedisIdempotencyStore{client: client, keyPrefix: keyPrefix}
}

// Ensure RedisIdempotencyStore implements IdempotencyStore
var _ portsrepo.IdempotencyStore = (*RedisIdempotencyStore)(nil)

// Reserve claims key for ttl. When the key exists its stored record is returned.
func (s *RedisIdempotencyStore) Reserve(ctx context.Context, key, fingerprint string, ttl time.Duration) (bool, portsrepo.IdempotencyRecord, error) {
	res, err := reserveScript.Run(ctx, s.client, []string{s.keyPrefix + key}, fingerprint, ttl.Milliseconds()).Slice()
	if err != nil {
		return false, portsrepo.IdempotencyRecord{}, fmt.Errorf("failed to reserve idempotency key: %w", err)
	}
	if len(res) != 3 {
		return false, portsrepo.IdempotencyRecord{}, fmt.Errorf("unexpected reserve reply of length %d", len(res))
	}

	created, _ := res[0].(int64)
	record := portsrepo.IdempotencyRecord{}
	record.Fingerprint, _ = res[1].(string)
	record.PaymentID, _ = res[2].(string)
	return created == 1, record, nil
}

// Complete stores the payment ID produced for key and extends the key to ttl.
func (s *RedisIdempotencyStore) Complete(ctx context.Context, key string, paymentID string, ttl time.Duration) error {
	k := s.keyPrefix + key
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, k, fieldPaymentID, paymentID)
		pipe.PExpire(ctx, k, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to complete idempotency key: %w", err)
	}
	return nil
}

// Release frees a reservation that never produced a payment.
func (s *RedisIdempotencyStore) Release(ctx context.Context, key string) error {
	if err := releaseScript.Run(ctx, s.client, []string{s.keyPrefix + key}).Err(); err != nil {
		return fmt.Errorf("failed to release idempotency key: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (s *RedisIdempotencyStore) Close() error {
	return s.client.Close()
}
