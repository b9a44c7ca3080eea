package client

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/moment-keeper/internal/countdown"
	"github.com/and161185/moment-keeper/internal/errs"
	"github.com/and161185/moment-keeper/internal/model"
	"github.com/and161185/moment-keeper/internal/service"
)

// Local is a Backend over in-process services, used with the SQLite profile.
type Local struct {
	user    model.Identity
	moments service.MomentService
	anniv   service.AnniversaryService
	clock   countdown.Clock
	closeFn func() error
}

var _ Backend = (*Local)(nil)

// NewLocal serves user's collection from the given services. closeFn, if
// set, releases the profile database.
func NewLocal(user model.Identity, moments service.MomentService, anniv service.AnniversaryService, clock countdown.Clock, closeFn func() error) *Local {
	if clock == nil {
		clock = countdown.SystemClock
	}
	return &Local{user: user, moments: moments, anniv: anniv, clock: clock, closeFn: closeFn}
}

func (l *Local) owner() uuid.UUID { return l.user.ID }

func (l *Local) Close() error {
	if l.closeFn == nil {
		return nil
	}
	return l.closeFn()
}

func (l *Local) Home(ctx context.Context) (model.Home, error) {
	return l.anniv.Home(ctx, l.owner())
}

func (l *Local) List(ctx context.Context, q string, mode model.SortMode) ([]model.Moment, error) {
	return l.moments.List(ctx, l.owner(), q, mode)
}

func (l *Local) Get(ctx context.Context, id string) (model.Moment, error) {
	return l.moments.Get(ctx, l.owner(), id)
}

func (l *Local) Create(ctx context.Context, in service.MomentInput) (model.Moment, error) {
	return l.moments.Create(ctx, l.owner(), in)
}

func (l *Local) Update(ctx context.Context, id string, in service.MomentInput) (model.Moment, error) {
	return l.moments.Update(ctx, l.owner(), id, in)
}

func (l *Local) Anniversary(ctx context.Context) (model.AnniversaryView, error) {
	return l.anniv.View(ctx, l.owner())
}

func (l *Local) SaveAnniversary(ctx context.Context, in service.AnniversaryInput) (model.AnniversaryView, error) {
	return l.anniv.Save(ctx, l.owner(), in)
}

func (l *Local) WhoAmI(context.Context) (model.Identity, error) { return l.user, nil }

var errReached = errors.New("target reached")

func (l *Local) WatchCountdown(ctx context.Context, target string, interval time.Duration, fn func(model.Countdown) error) error {
	var at time.Time
	switch target {
	case "", model.TargetAnniversary:
		v, err := l.anniv.View(ctx, l.owner())
		if err != nil {
			return err
		}
		at = v.NextOccurrence
	case model.TargetHome:
		a, _, err := l.anniv.Setting(ctx, l.owner())
		if err != nil {
			return err
		}
		at = a.Date
	default:
		return errs.Validation("unknown countdown target %q", target)
	}

	err := countdown.Watch(ctx, l.clock, at, interval, func(c model.Countdown) error {
		if err := fn(c); err != nil {
			return err
		}
		if c.IsZero() {
			return errReached
		}
		return nil
	})
	if errors.Is(err, errReached) {
		return nil
	}
	return err
}
