package client

import (
	"context"
	"time"

	"github.com/and161185/moment-keeper/internal/model"
	"github.com/and161185/moment-keeper/internal/service"
)

// Backend is everything the CLI views read and write.
type Backend interface {
	Home(ctx context.Context) (model.Home, error)
	List(ctx context.Context, q string, mode model.SortMode) ([]model.Moment, error)
	Get(ctx context.Context, id string) (model.Moment, error)
	Create(ctx context.Context, in service.MomentInput) (model.Moment, error)
	Update(ctx context.Context, id string, in service.MomentInput) (model.Moment, error)
	Anniversary(ctx context.Context) (model.AnniversaryView, error)
	SaveAnniversary(ctx context.Context, in service.AnniversaryInput) (model.AnniversaryView, error)
	WhoAmI(ctx context.Context) (model.Identity, error)
	// WatchCountdown calls fn once per interval with the countdown to target
	// (model.TargetAnniversary or model.TargetHome) until ctx ends, fn fails or
	// the target is reached.
	WatchCountdown(ctx context.Context, target string, interval time.Duration, fn func(model.Countdown) error) error
	Close() error
}
