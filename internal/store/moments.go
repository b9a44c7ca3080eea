// Package store adapts the per-owner key-value text repository into the
// moment collection and the anniversary setting.
package store

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/moment-keeper/internal/errs"
	"github.com/and161185/moment-keeper/internal/model"
	"github.com/and161185/moment-keeper/internal/repository"
)

// Fixed keys of the persisted state.
const (
	KeyMoments         = "moments"
	KeyAnniversaryDate = "anniversaryDate"
	KeyAnniversaryName = "anniversaryName"
)

// MomentStore reads and writes the ordered moment collection under KeyMoments.
//
// Every write re-persists the whole sequence. Writers for the same owner are
// not coordinated: the last one wins.
type MomentStore struct {
	kv repository.KVRepository
}

// NewMomentStore constructs a moment store over kv.
func NewMomentStore(kv repository.KVRepository) *MomentStore {
	return &MomentStore{kv: kv}
}

// Load returns the stored sequence, or a copy of fallback when nothing is stored.
// Unparsable text yields a *errs.MalformedStoreError.
func (s *MomentStore) Load(ctx context.Context, ownerID uuid.UUID, fallback []model.Moment) ([]model.Moment, error) {
	e, err := s.kv.Get(ctx, ownerID, KeyMoments)
	if errors.Is(err, errs.ErrNotFound) {
		return cloneMoments(fallback), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load moments: %w", err)
	}
	ms, err := decodeMoments(e.Value)
	if err != nil {
		return nil, &errs.MalformedStoreError{Key: KeyMoments, Err: err}
	}
	return ms, nil
}

// Get returns the first moment with id.
func (s *MomentStore) Get(ctx context.Context, ownerID uuid.UUID, id string, fallback []model.Moment) (model.Moment, error) {
	ms, err := s.Load(ctx, ownerID, fallback)
	if err != nil {
		return model.Moment{}, err
	}
	i := indexOf(ms, id)
	if i < 0 {
		return model.Moment{}, fmt.Errorf("moment %q: %w", id, errs.ErrNotFound)
	}
	return ms[i], nil
}

// Append adds m at the end of the stored sequence.
// An empty store starts from an empty sequence, never from a fallback.
func (s *MomentStore) Append(ctx context.Context, ownerID uuid.UUID, m model.Moment) error {
	ms, err := s.Load(ctx, ownerID, nil)
	if err != nil {
		return err
	}
	if indexOf(ms, m.ID) >= 0 {
		return fmt.Errorf("moment %q: %w", m.ID, errs.ErrAlreadyExists)
	}
	return s.save(ctx, ownerID, append(ms, m))
}

// Replace swaps the entry with id for m, keeping its position and id.
func (s *MomentStore) Replace(ctx context.Context, ownerID uuid.UUID, id string, m model.Moment, fallback []model.Moment) error {
	ms, err := s.Load(ctx, ownerID, fallback)
	if err != nil {
		return err
	}
	i := indexOf(ms, id)
	if i < 0 {
		return fmt.Errorf("moment %q: %w", id, errs.ErrNotFound)
	}
	m.ID = id
	ms[i] = m
	return s.save(ctx, ownerID, ms)
}

func (s *MomentStore) save(ctx context.Context, ownerID uuid.UUID, ms []model.Moment) error {
	v, err := encodeMoments(ms)
	if err != nil {
		return fmt.Errorf("encode moments: %w", err)
	}
	if _, err := s.kv.Put(ctx, ownerID, KeyMoments, v); err != nil {
		return fmt.Errorf("save moments: %w", err)
	}
	return nil
}

func indexOf(ms []model.Moment, id string) int {
	return slices.IndexFunc(ms, func(m model.Moment) bool { return m.ID == id })
}

func cloneMoments(ms []model.Moment) []model.Moment {
	out := make([]model.Moment, len(ms))
	for i, m := range ms {
		m.Tags = slices.Clone(m.Tags)
		out[i] = m
	}
	return out
}
