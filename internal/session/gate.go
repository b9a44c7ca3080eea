// Package session mirrors the identity provider's session for guarded views.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/and161185/moment-keeper/internal/errs"
	"github.com/and161185/moment-keeper/internal/model"
)

// State is the gate's view of the session.
type State int

// Gate states. Resolving is initial; the other two are terminal until the
// provider reports a change.
const (
	Resolving State = iota
	Authenticated
	Anonymous
)

func (s State) String() string {
	switch s {
	case Resolving:
		return "resolving"
	case Authenticated:
		return "authenticated"
	case Anonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// Snapshot is the state plus the identity when authenticated.
type Snapshot struct {
	State State
	User  *model.Identity
}

// Event names a provider session change.
type Event string

// Provider events.
const (
	EventSignedIn       Event = "SIGNED_IN"
	EventSignedOut      Event = "SIGNED_OUT"
	EventTokenRefreshed Event = "TOKEN_REFRESHED"
)

// Provider is the external identity provider boundary.
type Provider interface {
	// GetSession returns the current session, or nil when signed out.
	GetSession(ctx context.Context) (*model.Session, error)
	// OnSessionChange registers fn for session changes and returns its unsubscribe func.
	OnSessionChange(fn func(Event, *model.Session)) (unsubscribe func())
	// SignInWithProvider starts a sign-in with the named provider.
	SignInWithProvider(ctx context.Context, provider, redirectTo string) error
	// SignOut ends the current session.
	SignOut(ctx context.Context) error
}

// ErrUnbound is returned by SignIn and SignOut before Bind.
var ErrUnbound = errors.New("session: gate is not bound to a provider")

// Gate owns the in-memory mirror of the provider session. One Gate is created
// per process and injected into the views that need it.
//
// State changes only through provider notifications. Subscribers are called
// outside the state lock, one delivery at a time, in transition order; they
// must not call Subscribe or Bind.
type Gate struct {
	log    *zap.Logger
	notify Notifier

	mu       sync.Mutex
	snap     Snapshot
	subs     map[uint64]func(Snapshot)
	nextID   uint64
	provider Provider

	deliver sync.Mutex
}

// NewGate returns a gate in the Resolving state.
func NewGate(notify Notifier, log *zap.Logger) *Gate {
	if log == nil {
		log = zap.NewNop()
	}
	if notify == nil {
		notify = NotifierFunc(func(Notification) {})
	}
	return &Gate{
		log:    log,
		notify: notify,
		snap:   Snapshot{State: Resolving},
		subs:   map[uint64]func(Snapshot){},
	}
}

// Current returns the latest snapshot.
func (g *Gate) Current() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snap
}

// Subscribe calls fn with the current snapshot and then on every transition
// until the returned function is called.
func (g *Gate) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	g.deliver.Lock()
	defer g.deliver.Unlock()

	g.mu.Lock()
	id := g.nextID
	g.nextID++
	g.subs[id] = fn
	cur := g.snap
	g.mu.Unlock()

	fn(cur)

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.subs, id)
			g.mu.Unlock()
		})
	}
}

// Bind resolves the initial session from p and follows its change
// notifications until the returned function is called. A failed initial
// fetch leaves the gate Anonymous and is reported to the notifier.
//
// unbind is never nil, even when err is not: the subscription is made
// before the fetch, so callers always call unbind.
func (g *Gate) Bind(ctx context.Context, p Provider) (unbind func(), err error) {
	g.mu.Lock()
	g.provider = p
	g.mu.Unlock()

	unsub := p.OnSessionChange(g.onChange)
	if unsub == nil {
		unsub = func() {}
	}

	sess, err := p.GetSession(ctx)
	if err != nil {
		g.log.Warn("initial session fetch failed", zap.Error(err))
		g.set(Snapshot{State: Anonymous})
		g.reportError("Error", "Could not restore your session.", err)
		return unsub, wrapProvider("get session", err)
	}
	g.set(snapshotOf(sess))
	return unsub, nil
}

// SignIn asks the provider to start a sign-in. Failures are reported to the
// notifier and leave the state unchanged.
func (g *Gate) SignIn(ctx context.Context, provider, redirectTo string) error {
	p, err := g.bound()
	if err != nil {
		return err
	}
	if err := p.SignInWithProvider(ctx, provider, redirectTo); err != nil {
		g.log.Info("sign in failed", zap.String("provider", provider), zap.Error(err))
		g.reportError("Error signing in", "An unexpected error occurred during sign in.", err)
		return wrapProvider("sign in", err)
	}
	return nil
}

// SignOut asks the provider to end the session. Failures are reported to the
// notifier and leave the state unchanged.
func (g *Gate) SignOut(ctx context.Context) error {
	p, err := g.bound()
	if err != nil {
		return err
	}
	if err := p.SignOut(ctx); err != nil {
		g.log.Info("sign out failed", zap.Error(err))
		g.reportError("Error signing out", "An unexpected error occurred during sign out.", err)
		return wrapProvider("sign out", err)
	}
	return nil
}

func (g *Gate) bound() (Provider, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.provider == nil {
		return nil, ErrUnbound
	}
	return g.provider, nil
}

// onChange applies a provider notification. A flip between terminal states
// passes through Resolving.
func (g *Gate) onChange(ev Event, sess *model.Session) {
	next := snapshotOf(sess)
	cur := g.Current()
	if cur.State != Resolving && cur.State != next.State {
		g.set(Snapshot{State: Resolving})
	}
	g.set(next)

	switch ev {
	case EventSignedIn:
		g.notify.Notify(Notification{Title: "Welcome!", Description: "You have successfully signed in."})
	case EventSignedOut:
		g.notify.Notify(Notification{Title: "Goodbye!", Description: "You have been signed out."})
	}
}

func (g *Gate) set(s Snapshot) {
	g.deliver.Lock()
	defer g.deliver.Unlock()

	g.mu.Lock()
	g.snap = s
	subs := make([]func(Snapshot), 0, len(g.subs))
	for _, fn := range g.subs {
		subs = append(subs, fn)
	}
	g.mu.Unlock()

	g.log.Debug("session state", zap.Stringer("state", s.State))
	for _, fn := range subs {
		fn(s)
	}
}

func (g *Gate) reportError(title, fallback string, err error) {
	msg := fallback
	var pe *errs.ProviderError
	if errors.As(err, &pe) && pe.Message != "" {
		msg = pe.Message
	} else {
		title = "Error"
	}
	g.notify.Notify(Notification{Variant: VariantDestructive, Title: title, Description: msg})
}

func snapshotOf(sess *model.Session) Snapshot {
	if sess == nil || sess.User.ID == uuid.Nil {
		return Snapshot{State: Anonymous}
	}
	u := sess.User
	return Snapshot{State: Authenticated, User: &u}
}

func wrapProvider(op string, err error) error {
	if errors.Is(err, errs.ErrProvider) {
		return err
	}
	return &errs.ProviderError{Op: op, Message: err.Error(), Err: err}
}
