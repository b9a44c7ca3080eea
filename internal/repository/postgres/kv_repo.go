package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/and161185/moment-keeper/internal/errs"
	"github.com/and161185/moment-keeper/internal/repository"
)

// KVRepo implements repository.KVRepository using PostgreSQL.
type KVRepo struct{ db *DB }

var _ repository.KVRepository = (*KVRepo)(nil)

// NewKVRepo constructs a kv repository.
func NewKVRepo(db *DB) *KVRepo { return &KVRepo{db: db} }

const upsertKV = `
INSERT INTO kv (owner_id, key, value, rev) VALUES ($1, $2, $3, 1)
ON CONFLICT (owner_id, key)
DO UPDATE SET value=EXCLUDED.value, rev=kv.rev+1, updated_at=now()
RETURNING rev`

// Get returns a single value by key.
func (r *KVRepo) Get(ctx context.Context, ownerID uuid.UUID, key string) (repository.Entry, error) {
	const q = `SELECT value, rev, updated_at FROM kv WHERE owner_id=$1 AND key=$2`
	var e repository.Entry
	if err := r.db.Pool.QueryRow(ctx, q, ownerID, key).Scan(&e.Value, &e.Rev, &e.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.Entry{}, errs.ErrNotFound
		}
		return repository.Entry{}, err
	}
	return e, nil
}

// GetMany returns the entries that exist among keys.
func (r *KVRepo) GetMany(ctx context.Context, ownerID uuid.UUID, keys ...string) (map[string]repository.Entry, error) {
	const q = `SELECT key, value, rev, updated_at FROM kv WHERE owner_id=$1 AND key = ANY($2)`
	rows, err := r.db.Pool.Query(ctx, q, ownerID, keys)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]repository.Entry, len(keys))
	for rows.Next() {
		var (
			k string
			e repository.Entry
		)
		if err = rows.Scan(&k, &e.Value, &e.Rev, &e.UpdatedAt); err != nil {
			return nil, err
		}
		out[k] = e
	}
	return out, rows.Err()
}

// Put overwrites the value under key and returns the new revision.
func (r *KVRepo) Put(ctx context.Context, ownerID uuid.UUID, key, value string) (int64, error) {
	var rev int64
	if err := r.db.Pool.QueryRow(ctx, upsertKV, ownerID, key, value).Scan(&rev); err != nil {
		return 0, err
	}
	return rev, nil
}

// PutMany overwrites all pairs in one transaction.
func (r *KVRepo) PutMany(ctx context.Context, ownerID uuid.UUID, pairs []repository.Pair) (err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			err = e
		}
	}()

	for i, p := range pairs {
		var rev int64
		if err = tx.QueryRow(ctx, upsertKV, ownerID, p.Key, p.Value).Scan(&rev); err != nil {
			return fmt.Errorf("pair[%d] %q: %w", i, p.Key, err)
		}
	}
	return nil
}
