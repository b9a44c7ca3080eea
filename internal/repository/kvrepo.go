// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Entry is a stored text value together with its write metadata.
type Entry struct {
	Value     string
	Rev       int64 // incremented on every write, starts at 1
	UpdatedAt time.Time
}

// Pair is a single key/value write.
type Pair struct {
	Key   string
	Value string
}

// KVRepository is a durable, per-owner key-value text store.
// Writes are unconditional: the last writer wins.
type KVRepository interface {
	// Get returns the entry under key, or errs.ErrNotFound when unset.
	Get(ctx context.Context, ownerID uuid.UUID, key string) (Entry, error)
	// GetMany returns the entries that exist among keys. Missing keys are absent from the map.
	GetMany(ctx context.Context, ownerID uuid.UUID, keys ...string) (map[string]Entry, error)
	// Put overwrites the value under key and returns the new revision.
	Put(ctx context.Context, ownerID uuid.UUID, key, value string) (int64, error)
	// PutMany overwrites several keys atomically, in the given order.
	PutMany(ctx context.Context, ownerID uuid.UUID, pairs []Pair) error
}
