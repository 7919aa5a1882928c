// Package cache keeps replayable responses for mutating requests that carry an
// Idempotency-Key header.
package cache

import (
	"context"
	"errors"
	"time"
)

var ErrKeyInFlight = errors.New("idempotency key is being processed")

// StoredResponse is the response replayed for a repeated key.
type StoredResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
	// Fingerprint identifies the request that produced the response.
	Fingerprint string `json:"fingerprint"`
}

// IdempotencyStore reserves a key before the request runs and stores the outcome after.
//
//   - Reserve => true when the caller owns the key, false when it already exists
//   - Get => the stored response; ErrKeyInFlight while the owner has not saved yet
//   - Release => drops a reservation whose request failed, so it can be retried
type IdempotencyStore interface {
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Save(ctx context.Context, key string, resp StoredResponse, ttl time.Duration) error
	Get(ctx context.Context, key string) (StoredResponse, bool, error)
	Release(ctx context.Context, key string) error
}
