// Package sqlite implements the kv repository over a local SQLite profile file.
// It is the terminal client's offline store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	_ "modernc.org/sqlite"

	"github.com/and161185/moment-keeper/internal/errs"
	"github.com/and161185/moment-keeper/internal/repository"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
    owner_id   TEXT    NOT NULL,
    key        TEXT    NOT NULL,
    value      TEXT    NOT NULL,
    rev        INTEGER NOT NULL DEFAULT 1,
    updated_at INTEGER NOT NULL,
    PRIMARY KEY (owner_id, key)
)`

var pragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 10000",
	"PRAGMA synchronous = NORMAL",
}

// Open opens (creating if needed) the profile database at path.
// ":memory:" opens a private in-memory database.
func Open(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("sqlite: mkdir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	if path == ":memory:" {
		// every connection to :memory: is a separate database
		db.SetMaxOpenConns(1)
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite: %s: %w", p, err)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: schema: %w", err)
	}
	return db, nil
}

// KVRepo implements repository.KVRepository on SQLite.
type KVRepo struct {
	db  *sql.DB
	now func() time.Time
}

var _ repository.KVRepository = (*KVRepo)(nil)

// NewKVRepo constructs a kv repository over an opened profile database.
func NewKVRepo(db *sql.DB) *KVRepo { return &KVRepo{db: db, now: time.Now} }

const upsertKV = `
INSERT INTO kv (owner_id, key, value, rev, updated_at) VALUES (?, ?, ?, 1, ?)
ON CONFLICT (owner_id, key)
DO UPDATE SET value=excluded.value, rev=kv.rev+1, updated_at=excluded.updated_at
RETURNING rev`

// Get returns a single value by key.
func (r *KVRepo) Get(ctx context.Context, ownerID uuid.UUID, key string) (repository.Entry, error) {
	const q = `SELECT value, rev, updated_at FROM kv WHERE owner_id=? AND key=?`
	var (
		e  repository.Entry
		ms int64
	)
	if err := r.db.QueryRowContext(ctx, q, ownerID.String(), key).Scan(&e.Value, &e.Rev, &ms); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return repository.Entry{}, errs.ErrNotFound
		}
		return repository.Entry{}, err
	}
	e.UpdatedAt = time.UnixMilli(ms).UTC()
	return e, nil
}

// GetMany returns the entries that exist among keys.
func (r *KVRepo) GetMany(ctx context.Context, ownerID uuid.UUID, keys ...string) (map[string]repository.Entry, error) {
	out := make(map[string]repository.Entry, len(keys))
	if len(keys) == 0 {
		return out, nil
	}
	args := make([]any, 0, len(keys)+1)
	args = append(args, ownerID.String())
	for _, k := range keys {
		args = append(args, k)
	}
	q := `SELECT key, value, rev, updated_at FROM kv WHERE owner_id=? AND key IN (` +
		strings.TrimSuffix(strings.Repeat("?,", len(keys)), ",") + `)`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			k  string
			e  repository.Entry
			ms int64
		)
		if err := rows.Scan(&k, &e.Value, &e.Rev, &ms); err != nil {
			return nil, err
		}
		e.UpdatedAt = time.UnixMilli(ms).UTC()
		out[k] = e
	}
	return out, rows.Err()
}

// Put overwrites the value under key and returns the new revision.
func (r *KVRepo) Put(ctx context.Context, ownerID uuid.UUID, key, value string) (int64, error) {
	var rev int64
	err := r.db.QueryRowContext(ctx, upsertKV, ownerID.String(), key, value, r.now().UnixMilli()).Scan(&rev)
	return rev, err
}

// PutMany overwrites all pairs in one transaction.
func (r *KVRepo) PutMany(ctx context.Context, ownerID uuid.UUID, pairs []repository.Pair) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	ts := r.now().UnixMilli()
	for i, p := range pairs {
		var rev int64
		if err = tx.QueryRowContext(ctx, upsertKV, ownerID.String(), p.Key, p.Value, ts).Scan(&rev); err != nil {
			return fmt.Errorf("pair[%d] %q: %w", i, p.Key, err)
		}
	}
	return nil
}
