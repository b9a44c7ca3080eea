package service

import (
	"context"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/and161185/moment-keeper/internal/countdown"
	"github.com/and161185/moment-keeper/internal/errs"
	"github.com/and161185/moment-keeper/internal/model"
)

// HomeRecent is how many moments the home view shows.
const HomeRecent = 3

// defaultLead is how far ahead the unsaved anniversary lies.
const defaultLead = 30 * 24 * time.Hour

// AnniversaryStore is the persistence the anniversary service needs.
type AnniversaryStore interface {
	Load(ctx context.Context, ownerID uuid.UUID) (*model.AnniversarySetting, error)
	Save(ctx context.Context, ownerID uuid.UUID, a model.AnniversarySetting) error
}

// AnniversaryInput is what the anniversary form submits.
type AnniversaryInput struct {
	Date time.Time `json:"date"`
	Name string    `json:"name" validate:"max=200"`
}

// AnniversaryService defines the anniversary and home views.
type AnniversaryService interface {
	// Setting returns the saved setting, or the default one with saved=false.
	Setting(ctx context.Context, ownerID uuid.UUID) (setting model.AnniversarySetting, saved bool, err error)
	// View computes the anniversary view at the current instant.
	View(ctx context.Context, ownerID uuid.UUID) (model.AnniversaryView, error)
	// Save overwrites the setting; a blank name stores the default label.
	Save(ctx context.Context, ownerID uuid.UUID, in AnniversaryInput) (model.AnniversaryView, error)
	// Home returns the landing view.
	Home(ctx context.Context, ownerID uuid.UUID) (model.Home, error)
}

type AnniversaryServiceImpl struct {
	store   AnniversaryStore
	moments MomentService
	now     func() time.Time
	log     *zap.Logger
}

// NewAnniversaryService constructs AnniversaryService. moments feeds the home view.
func NewAnniversaryService(store AnniversaryStore, moments MomentService, now func() time.Time, log *zap.Logger) *AnniversaryServiceImpl {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &AnniversaryServiceImpl{store: store, moments: moments, now: now, log: log}
}

func (s *AnniversaryServiceImpl) Setting(ctx context.Context, ownerID uuid.UUID) (model.AnniversarySetting, bool, error) {
	if ownerID == uuid.Nil {
		return model.AnniversarySetting{}, false, errs.Validation("empty owner")
	}
	a, err := s.store.Load(ctx, ownerID)
	if err != nil {
		return model.AnniversarySetting{}, false, err
	}
	if a == nil {
		return model.AnniversarySetting{
			Date: s.now().Add(defaultLead),
			Name: model.DefaultAnniversaryName,
		}, false, nil
	}
	if strings.TrimSpace(a.Name) == "" {
		a.Name = model.DefaultAnniversaryName
	}
	return *a, true, nil
}

func (s *AnniversaryServiceImpl) View(ctx context.Context, ownerID uuid.UUID) (model.AnniversaryView, error) {
	a, saved, err := s.Setting(ctx, ownerID)
	if err != nil {
		return model.AnniversaryView{}, err
	}
	return BuildView(a, saved, s.now()), nil
}

func (s *AnniversaryServiceImpl) Save(ctx context.Context, ownerID uuid.UUID, in AnniversaryInput) (model.AnniversaryView, error) {
	if ownerID == uuid.Nil {
		return model.AnniversaryView{}, errs.Validation("empty owner")
	}
	if in.Date.IsZero() {
		return model.AnniversaryView{}, errs.Validation("date is required")
	}
	if err := validateStruct(in); err != nil {
		return model.AnniversaryView{}, err
	}
	a := model.AnniversarySetting{Date: in.Date, Name: strings.TrimSpace(in.Name)}
	if a.Name == "" {
		a.Name = model.DefaultAnniversaryName
	}
	if err := s.store.Save(ctx, ownerID, a); err != nil {
		return model.AnniversaryView{}, err
	}
	s.log.Info("anniversary saved", zap.String("owner_id", ownerID.String()))
	return BuildView(a, true, s.now()), nil
}

func (s *AnniversaryServiceImpl) Home(ctx context.Context, ownerID uuid.UUID) (model.Home, error) {
	recent, err := s.moments.Recent(ctx, ownerID, HomeRecent)
	if err != nil {
		return model.Home{}, err
	}
	a, saved, err := s.Setting(ctx, ownerID)
	if err != nil {
		return model.Home{}, err
	}
	return model.Home{
		Recent:      recent,
		Anniversary: a,
		Saved:       saved,
		Countdown:   countdown.Until(a.Date, s.now()),
	}, nil
}

// BuildView derives the anniversary view of a at now.
func BuildView(a model.AnniversarySetting, saved bool, now time.Time) model.AnniversaryView {
	next := countdown.NextOccurrence(a.Date, now)
	return model.AnniversaryView{
		Setting:        a,
		Saved:          saved,
		NextOccurrence: next,
		YearsElapsed:   countdown.YearsElapsed(a.Date, now),
		Countdown:      countdown.Until(next, now),
	}
}
