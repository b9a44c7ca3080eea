package session

import (
	"sync"

	"github.com/and161185/moment-keeper/internal/model"
)

// Route is a navigable view.
type Route string

// Routes a guard may redirect to.
const (
	RouteHome   Route = "/"
	RouteSignIn Route = "/auth"
)

// Navigator changes the active view.
type Navigator interface {
	Redirect(Route)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(Route)

// Redirect calls f.
func (f NavigatorFunc) Redirect(r Route) { f(r) }

// View is what a guarded view renders.
type View int

// Guarded view outcomes.
const (
	ViewLoading View = iota
	ViewContent
	ViewHidden
)

// Guard protects one mounted view. It redirects to RouteSignIn once on every
// entry into Anonymous while mounted; rendering itself never redirects.
type Guard struct {
	nav Navigator

	mu    sync.Mutex
	snap  Snapshot
	seen  bool
	unsub func()
}

// Mount subscribes a new guard to g.
func Mount(g *Gate, nav Navigator) *Guard {
	gd := &Guard{nav: nav}
	gd.unsub = g.Subscribe(gd.observe)
	return gd
}

func (gd *Guard) observe(s Snapshot) {
	gd.mu.Lock()
	entered := s.State == Anonymous && (!gd.seen || gd.snap.State != Anonymous)
	gd.snap = s
	gd.seen = true
	gd.mu.Unlock()

	if entered {
		gd.nav.Redirect(RouteSignIn)
	}
}

// Render reports what the view shows now and, for ViewContent, the identity.
func (gd *Guard) Render() (View, *model.Identity) {
	gd.mu.Lock()
	defer gd.mu.Unlock()
	switch gd.snap.State {
	case Authenticated:
		return ViewContent, gd.snap.User
	case Anonymous:
		return ViewHidden, nil
	default:
		return ViewLoading, nil
	}
}

// Unmount stops the guard. It is safe to call more than once.
func (gd *Guard) Unmount() {
	if gd.unsub != nil {
		gd.unsub()
	}
}
