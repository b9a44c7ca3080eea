package observability

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/moment-keeper/internal/errs"
	"github.com/and161185/moment-keeper/internal/repository"
)

// instrumentedKV records operation counts and latencies of a repository.
type instrumentedKV struct {
	next repository.KVRepository
	c    *Collector
}

// InstrumentKV wraps repo so every call is measured by c.
func InstrumentKV(repo repository.KVRepository, c *Collector) repository.KVRepository {
	return &instrumentedKV{next: repo, c: c}
}

func (k *instrumentedKV) observe(op string, start time.Time, err error) {
	status := "ok"
	switch {
	case errors.Is(err, errs.ErrNotFound):
		status = "not_found"
	case err != nil:
		status = "error"
	}
	k.c.StoreOperations.WithLabelValues(op, status).Inc()
	k.c.StoreDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (k *instrumentedKV) Get(ctx context.Context, ownerID uuid.UUID, key string) (repository.Entry, error) {
	start := time.Now()
	e, err := k.next.Get(ctx, ownerID, key)
	k.observe("get", start, err)
	return e, err
}

func (k *instrumentedKV) GetMany(ctx context.Context, ownerID uuid.UUID, keys ...string) (map[string]repository.Entry, error) {
	start := time.Now()
	m, err := k.next.GetMany(ctx, ownerID, keys...)
	k.observe("get_many", start, err)
	return m, err
}

func (k *instrumentedKV) Put(ctx context.Context, ownerID uuid.UUID, key, value string) (int64, error) {
	start := time.Now()
	rev, err := k.next.Put(ctx, ownerID, key, value)
	k.observe("put", start, err)
	return rev, err
}

func (k *instrumentedKV) PutMany(ctx context.Context, ownerID uuid.UUID, pairs []repository.Pair) error {
	start := time.Now()
	err := k.next.PutMany(ctx, ownerID, pairs)
	k.observe("put_many", start, err)
	return err
}
