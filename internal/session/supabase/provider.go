package supabase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/and161185/moment-keeper/internal/errs"
	"github.com/and161185/moment-keeper/internal/model"
	"github.com/and161185/moment-keeper/internal/session"
)

// refreshSkew refreshes tokens slightly before they expire.
const refreshSkew = 30 * time.Second

// Provider is a session.Provider backed by GoTrue and a session file.
// Provider calls go through a circuit breaker.
type Provider struct {
	api    AuthAPI
	prompt Prompter
	store  FileStore
	cb     *gobreaker.CircuitBreaker
	log    *zap.Logger
	now    func() time.Time

	mu        sync.Mutex
	listeners map[uint64]func(session.Event, *model.Session)
	nextID    uint64
}

var _ session.Provider = (*Provider)(nil)

// Option customises a Provider.
type Option func(*Provider)

// WithClock overrides the time source used for expiry checks.
func WithClock(now func() time.Time) Option { return func(p *Provider) { p.now = now } }

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option { return func(p *Provider) { p.log = l } }

// BreakerSettings returns the breaker configuration used for provider calls.
func BreakerSettings(log *zap.Logger) gobreaker.Settings {
	return gobreaker.Settings{
		Name:        "identity-provider",
		MaxRequests: 1,
		Interval:    30 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state changed",
				zap.String("name", name), zap.Stringer("from", from), zap.Stringer("to", to))
		},
	}
}

// NewProvider wires api, the code prompt and the session file together.
func NewProvider(api AuthAPI, prompt Prompter, store FileStore, opts ...Option) *Provider {
	p := &Provider{
		api:       api,
		prompt:    prompt,
		store:     store,
		log:       zap.NewNop(),
		now:       time.Now,
		listeners: map[uint64]func(session.Event, *model.Session){},
	}
	for _, o := range opts {
		o(p)
	}
	p.cb = gobreaker.NewCircuitBreaker(BreakerSettings(p.log))
	return p
}

// GetSession returns the saved session, refreshing it when the access token
// is about to expire. A session that cannot be refreshed is discarded.
func (p *Provider) GetSession(ctx context.Context) (*model.Session, error) {
	sess, err := p.store.Load()
	if err != nil {
		p.log.Warn("discarding unreadable session file", zap.Error(err))
		_ = p.store.Clear()
		return nil, nil
	}
	if sess == nil {
		return nil, nil
	}
	if !sess.Expired(p.now().Add(refreshSkew)) {
		return sess, nil
	}
	if sess.RefreshToken == "" {
		_ = p.store.Clear()
		return nil, nil
	}

	fresh, err := breakerCall(p, "refresh session", func() (model.Session, error) {
		return p.api.Refresh(sess.RefreshToken)
	})
	if isTransient(err) {
		return nil, err
	}
	if err != nil {
		p.log.Info("session refresh rejected", zap.Error(err))
		_ = p.store.Clear()
		return nil, nil
	}
	if err := p.store.Save(fresh); err != nil {
		return nil, err
	}
	p.emit(session.EventTokenRefreshed, &fresh)
	return &fresh, nil
}

// OnSessionChange implements session.Provider.
func (p *Provider) OnSessionChange(fn func(session.Event, *model.Session)) func() {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.listeners[id] = fn
	p.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.listeners, id)
			p.mu.Unlock()
		})
	}
}

// SignInWithProvider runs the PKCE flow: it obtains the consent URL, asks
// the prompter for the returned code and exchanges it for a session.
func (p *Provider) SignInWithProvider(ctx context.Context, provider, redirectTo string) error {
	type authz struct{ url, verifier string }
	a, err := breakerCall(p, "sign in", func() (authz, error) {
		u, v, err := p.api.Authorize(provider, redirectTo)
		return authz{u, v}, err
	})
	if err != nil {
		return err
	}

	code, err := p.prompt.PromptCode(ctx, a.url)
	if err != nil {
		return &errs.ProviderError{Op: "sign in", Message: "sign in was not completed", Err: err}
	}

	sess, err := breakerCall(p, "sign in", func() (model.Session, error) {
		return p.api.ExchangeCode(code, a.verifier)
	})
	if err != nil {
		return err
	}
	if err := p.store.Save(sess); err != nil {
		return err
	}
	p.log.Info("signed in", zap.String("user_id", sess.User.ID.String()))
	p.emit(session.EventSignedIn, &sess)
	return nil
}

// SignOut revokes the session at the provider and removes the session file.
func (p *Provider) SignOut(ctx context.Context) error {
	sess, err := p.store.Load()
	if err != nil {
		p.log.Warn("unreadable session file on sign out", zap.Error(err))
	}
	if sess != nil && sess.AccessToken != "" {
		_, err := breakerCall(p, "sign out", func() (struct{}, error) {
			return struct{}{}, p.api.Logout(sess.AccessToken)
		})
		if err != nil {
			return err
		}
	}
	if err := p.store.Clear(); err != nil {
		return err
	}
	p.emit(session.EventSignedOut, nil)
	return nil
}

func (p *Provider) emit(ev session.Event, sess *model.Session) {
	p.mu.Lock()
	ls := make([]func(session.Event, *model.Session), 0, len(p.listeners))
	for _, fn := range p.listeners {
		ls = append(ls, fn)
	}
	p.mu.Unlock()
	for _, fn := range ls {
		fn(ev, sess)
	}
}

var errBreakerOpen = errors.New("breaker open")

// breakerCall runs fn through the breaker and converts failures to *errs.ProviderError.
func breakerCall[T any](p *Provider, op string, fn func() (T, error)) (T, error) {
	var zero T
	v, err := p.cb.Execute(func() (any, error) {
		r, err := fn()
		return r, err
	})
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return zero, &errs.ProviderError{
			Op:      op,
			Message: "the identity provider is temporarily unavailable, try again shortly",
			Err:     errors.Join(errBreakerOpen, err),
		}
	case err != nil:
		return zero, &errs.ProviderError{Op: op, Message: err.Error(), Err: err}
	}
	t, _ := v.(T)
	return t, nil
}

func isTransient(err error) bool {
	return errors.Is(err, errBreakerOpen)
}
