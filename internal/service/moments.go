// Package service contains the application services behind every view.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/and161185/moment-keeper/internal/errs"
	"github.com/and161185/moment-keeper/internal/model"
	"github.com/and161185/moment-keeper/internal/query"
)

// MomentStore is the persistence the moment service needs.
type MomentStore interface {
	Load(ctx context.Context, ownerID uuid.UUID, fallback []model.Moment) ([]model.Moment, error)
	Get(ctx context.Context, ownerID uuid.UUID, id string, fallback []model.Moment) (model.Moment, error)
	Append(ctx context.Context, ownerID uuid.UUID, m model.Moment) error
	Replace(ctx context.Context, ownerID uuid.UUID, id string, m model.Moment, fallback []model.Moment) error
}

// MomentInput is what the create and edit forms submit.
type MomentInput struct {
	ID          string    `json:"id" validate:"omitempty,max=128"`
	Title       string    `json:"title" validate:"required,max=200"`
	Date        time.Time `json:"date"`
	Description string    `json:"description" validate:"required,max=10000"`
	ImageURL    string    `json:"imageUrl" validate:"required,url,max=2048"`
	Tags        []string  `json:"tags" validate:"max=50,dive,max=64"`
	IsPrivate   bool      `json:"isPrivate"`
}

// MomentService defines the moment views and forms.
type MomentService interface {
	// List returns the collection filtered by q and ordered by mode.
	List(ctx context.Context, ownerID uuid.UUID, q string, mode model.SortMode) ([]model.Moment, error)
	// Get returns one moment for the detail view.
	Get(ctx context.Context, ownerID uuid.UUID, id string) (model.Moment, error)
	// Create validates in, assigns an id when absent and appends the moment.
	Create(ctx context.Context, ownerID uuid.UUID, in MomentInput) (model.Moment, error)
	// Update replaces every field of moment id except the id itself.
	Update(ctx context.Context, ownerID uuid.UUID, id string, in MomentInput) (model.Moment, error)
	// Recent returns the first n moments in collection order.
	Recent(ctx context.Context, ownerID uuid.UUID, n int) ([]model.Moment, error)
}

type MomentServiceImpl struct {
	store MomentStore
	demo  func() []model.Moment
	now   func() time.Time
	log   *zap.Logger
}

// MomentOption customises MomentServiceImpl.
type MomentOption func(*MomentServiceImpl)

// WithMomentClock overrides the time source used for default dates.
func WithMomentClock(now func() time.Time) MomentOption {
	return func(s *MomentServiceImpl) { s.now = now }
}

// WithFallback replaces the demo collection shown before anything is saved.
func WithFallback(fn func() []model.Moment) MomentOption {
	return func(s *MomentServiceImpl) { s.demo = fn }
}

// NewMomentService constructs MomentService over store.
func NewMomentService(store MomentStore, log *zap.Logger, opts ...MomentOption) *MomentServiceImpl {
	if log == nil {
		log = zap.NewNop()
	}
	s := &MomentServiceImpl{store: store, demo: DemoMoments, now: time.Now, log: log}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *MomentServiceImpl) List(ctx context.Context, ownerID uuid.UUID, q string, mode model.SortMode) ([]model.Moment, error) {
	if ownerID == uuid.Nil {
		return nil, errs.Validation("empty owner")
	}
	ms, err := s.store.Load(ctx, ownerID, s.demo())
	if err != nil {
		return nil, err
	}
	return query.Apply(ms, q, mode), nil
}

func (s *MomentServiceImpl) Get(ctx context.Context, ownerID uuid.UUID, id string) (model.Moment, error) {
	if ownerID == uuid.Nil || id == "" {
		return model.Moment{}, errs.Validation("empty owner/id")
	}
	return s.store.Get(ctx, ownerID, id, s.demo())
}

func (s *MomentServiceImpl) Create(ctx context.Context, ownerID uuid.UUID, in MomentInput) (model.Moment, error) {
	if ownerID == uuid.Nil {
		return model.Moment{}, errs.Validation("empty owner")
	}
	m, err := s.build(in)
	if err != nil {
		return model.Moment{}, err
	}
	if m.ID == "" {
		id, err := uuid.NewV4()
		if err != nil {
			return model.Moment{}, fmt.Errorf("generate id: %w", err)
		}
		m.ID = id.String()
	}
	if err := s.store.Append(ctx, ownerID, m); err != nil {
		return model.Moment{}, err
	}
	s.log.Info("moment created", zap.String("owner_id", ownerID.String()), zap.String("moment_id", m.ID))
	return m, nil
}

func (s *MomentServiceImpl) Update(ctx context.Context, ownerID uuid.UUID, id string, in MomentInput) (model.Moment, error) {
	if ownerID == uuid.Nil || id == "" {
		return model.Moment{}, errs.Validation("empty owner/id")
	}
	if in.ID != "" && in.ID != id {
		return model.Moment{}, errs.Validation("id is immutable")
	}
	m, err := s.build(in)
	if err != nil {
		return model.Moment{}, err
	}
	m.ID = id
	if err := s.store.Replace(ctx, ownerID, id, m, s.demo()); err != nil {
		return model.Moment{}, err
	}
	s.log.Info("moment updated", zap.String("owner_id", ownerID.String()), zap.String("moment_id", id))
	return m, nil
}

func (s *MomentServiceImpl) Recent(ctx context.Context, ownerID uuid.UUID, n int) ([]model.Moment, error) {
	if ownerID == uuid.Nil {
		return nil, errs.Validation("empty owner")
	}
	ms, err := s.store.Load(ctx, ownerID, s.demo())
	if err != nil {
		return nil, err
	}
	if n >= 0 && len(ms) > n {
		ms = ms[:n]
	}
	return ms, nil
}

// build applies form defaults, normalises tags and validates the result.
func (s *MomentServiceImpl) build(in MomentInput) (model.Moment, error) {
	if in.ImageURL == "" {
		in.ImageURL = DefaultImages[0]
	}
	if in.Date.IsZero() {
		in.Date = s.now()
	}
	in.Tags = NormalizeTags(in.Tags)
	if err := validateStruct(in); err != nil {
		return model.Moment{}, err
	}
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" {
		return model.Moment{}, errs.Validation("title and description must not be blank")
	}
	return model.Moment{
		ID:          in.ID,
		Title:       in.Title,
		Date:        in.Date,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Tags:        in.Tags,
		IsPrivate:   in.IsPrivate,
	}, nil
}

// NormalizeTags trims every tag, drops empty ones and suppresses duplicates,
// keeping the first occurrence. The result is never nil.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
