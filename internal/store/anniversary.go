package store

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/moment-keeper/internal/errs"
	"github.com/and161185/moment-keeper/internal/model"
	"github.com/and161185/moment-keeper/internal/repository"
)

// AnniversaryStore reads and writes the singleton anniversary setting.
// It applies no defaults: an unset date loads as nil.
type AnniversaryStore struct {
	kv repository.KVRepository
}

// NewAnniversaryStore constructs an anniversary store over kv.
func NewAnniversaryStore(kv repository.KVRepository) *AnniversaryStore {
	return &AnniversaryStore{kv: kv}
}

// Load returns the saved setting, or nil when no date was saved.
// A saved date without a name loads with an empty Name.
func (s *AnniversaryStore) Load(ctx context.Context, ownerID uuid.UUID) (*model.AnniversarySetting, error) {
	es, err := s.kv.GetMany(ctx, ownerID, KeyAnniversaryDate, KeyAnniversaryName)
	if err != nil {
		return nil, fmt.Errorf("load anniversary: %w", err)
	}
	de, ok := es[KeyAnniversaryDate]
	if !ok {
		return nil, nil
	}
	d, err := ParseTime(de.Value)
	if err != nil {
		return nil, &errs.MalformedStoreError{Key: KeyAnniversaryDate, Err: err}
	}
	return &model.AnniversarySetting{Date: d, Name: es[KeyAnniversaryName].Value}, nil
}

// Save overwrites both keys.
func (s *AnniversaryStore) Save(ctx context.Context, ownerID uuid.UUID, a model.AnniversarySetting) error {
	err := s.kv.PutMany(ctx, ownerID, []repository.Pair{
		{Key: KeyAnniversaryDate, Value: FormatTime(a.Date)},
		{Key: KeyAnniversaryName, Value: a.Name},
	})
	if err != nil {
		return fmt.Errorf("save anniversary: %w", err)
	}
	return nil
}
