// Command mk is a terminal client for MomentKeeper.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/and161185/moment-keeper/internal/client"
	"github.com/and161185/moment-keeper/internal/config"
	"github.com/and161185/moment-keeper/internal/countdown"
	"github.com/and161185/moment-keeper/internal/model"
	"github.com/and161185/moment-keeper/internal/repository/sqlite"
	"github.com/and161185/moment-keeper/internal/service"
	"github.com/and161185/moment-keeper/internal/session"
	"github.com/and161185/moment-keeper/internal/session/supabase"
	"github.com/and161185/moment-keeper/internal/store"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// errSignInRequired is returned when a guarded view runs without a session.
var errSignInRequired = errors.New("sign in required")

func usage() {
	fmt.Fprintf(os.Stderr, `mk - MomentKeeper CLI
Usage:
  mk [-config file] [-server HOST:PORT] [-cacert file | -insecure | -plaintext] [-local] <cmd> [args]

Commands:
  version
  signin                                       (opens the provider consent URL)
  signout
  whoami
  home
  list        [-q text] [-sort newest|oldest|alphabetical]
  get         -id <id> [-story [-o dir]]
  add         -title <t> -desc <d> [-date YYYY-MM-DD] [-image url] [-tags a,b] [-private]
  edit        -id <id> [-title t] [-desc d] [-date YYYY-MM-DD] [-image url] [-tags a,b] [-private=bool]
  anniversary [-date YYYY-MM-DD] [-name label]
  countdown   [-target anniversary|home] [-interval 1s] [-once]
`)
	os.Exit(2)
}

// main dispatches subcommands behind the session gate.
func main() {
	cfgPath := flag.String("config", "", "YAML config file (default $XDG_CONFIG_HOME/momentkeeper/config.yaml)")
	addr := flag.String("server", "", "server addr")
	caPath := flag.String("cacert", "", "CA cert (PEM)")
	insecureTLS := flag.Bool("insecure", false, "skip cert verify (dev)")
	plaintext := flag.Bool("plaintext", false, "connect without TLS (dev)")
	local := flag.Bool("local", false, "use the local SQLite profile instead of the server")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}

	cfg, err := config.LoadClient(*cfgPath)
	if err != nil {
		fail(err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "server":
			cfg.Server = *addr
		case "cacert":
			cfg.CAFile = *caPath
		case "insecure":
			cfg.Insecure = *insecureTLS
		case "local":
			cfg.Local = *local
		}
	})

	log := zap.NewNop()
	if *verbose {
		log, _ = zap.NewDevelopment()
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a := &app{
		cfg:       cfg,
		plaintext: *plaintext,
		in:        os.Stdin,
		out:       os.Stdout,
		errOut:    os.Stderr,
		log:       log,
	}
	if err := a.run(ctx, flag.Arg(0), flag.Args()[1:]); err != nil {
		if errors.Is(err, errUsage) {
			usage()
		}
		fail(err)
	}
}

// app holds what every command needs.
type app struct {
	cfg       *config.Client
	plaintext bool
	in        io.Reader
	out       io.Writer
	errOut    io.Writer
	log       *zap.Logger

	// provider and openBackend are replaced in tests.
	provider    func() (session.Provider, error)
	openBackend func(ctx context.Context, user model.Identity, p session.Provider) (client.Backend, error)
}

var errUsage = errors.New("usage")

func (a *app) run(ctx context.Context, cmd string, args []string) error {
	if cmd == "version" {
		fmt.Fprintf(a.out, "mk %s (%s)\n", version, buildDate)
		return nil
	}

	p, err := a.sessionProvider()
	if err != nil {
		return err
	}
	gate := session.NewGate(a.notifier(), a.log.Named("gate"))

	switch cmd {
	case "signin":
		return a.signIn(ctx, gate, p)
	case "signout":
		return a.signOut(ctx, gate, p)
	}

	view, ok := views[cmd]
	if !ok {
		return errUsage
	}

	user, release, err := a.guarded(ctx, gate, p)
	if err != nil {
		return err
	}
	defer release()

	b, err := a.backend(ctx, *user, p)
	if err != nil {
		return err
	}
	defer func() { _ = b.Close() }()

	if cmd != "countdown" {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
	}
	return view(ctx, b, args, a.out)
}

// guarded binds the gate and mounts a guard for one view. It returns the
// signed-in identity, or errSignInRequired after the guard redirected.
func (a *app) guarded(ctx context.Context, gate *session.Gate, p session.Provider) (*model.Identity, func(), error) {
	unbind, err := gate.Bind(ctx, p)
	if err != nil {
		a.log.Debug("bind", zap.Error(err))
	}

	guard := session.Mount(gate, session.NavigatorFunc(func(r session.Route) {
		if r == session.RouteSignIn {
			fmt.Fprintln(a.errOut, "Sign in required. Run `mk signin` first.")
		}
	}))
	release := func() {
		guard.Unmount()
		unbind()
	}

	view, user := guard.Render()
	if view != session.ViewContent || user == nil {
		release()
		return nil, nil, errSignInRequired
	}
	return user, release, nil
}

func (a *app) signIn(ctx context.Context, gate *session.Gate, p session.Provider) error {
	unbind, _ := gate.Bind(ctx, p)
	defer unbind()

	if cur := gate.Current(); cur.State == session.Authenticated {
		fmt.Fprintf(a.out, "Already signed in as %s\n", cur.User.Email)
		return nil
	}
	return gate.SignIn(ctx, a.cfg.Provider, a.cfg.RedirectURL)
}

func (a *app) signOut(ctx context.Context, gate *session.Gate, p session.Provider) error {
	unbind, _ := gate.Bind(ctx, p)
	defer unbind()

	if gate.Current().State != session.Authenticated {
		fmt.Fprintln(a.out, "Not signed in")
		return nil
	}
	return gate.SignOut(ctx)
}

// notifier prints transient notifications to stderr.
func (a *app) notifier() session.Notifier {
	return session.NotifierFunc(func(n session.Notification) {
		prefix := ""
		if n.Variant == session.VariantDestructive {
			prefix = "error: "
		}
		if n.Description == "" {
			fmt.Fprintf(a.errOut, "%s%s\n", prefix, n.Title)
			return
		}
		fmt.Fprintf(a.errOut, "%s%s %s\n", prefix, n.Title, n.Description)
	})
}

func (a *app) sessionProvider() (session.Provider, error) {
	if a.provider != nil {
		return a.provider()
	}
	if a.cfg.SupabaseURL == "" || a.cfg.SupabaseAnonKey == "" {
		return nil, errors.New("supabase_url and supabase_anon_key must be configured")
	}
	api, err := supabase.NewAPI(a.cfg.SupabaseURL, a.cfg.SupabaseAnonKey)
	if err != nil {
		return nil, err
	}
	return supabase.NewProvider(api,
		supabase.LinePrompter{In: a.in, Out: a.errOut},
		supabase.FileStore{Dir: a.cfg.Dir},
		supabase.WithLogger(a.log.Named("supabase")),
	), nil
}

// backend opens the local profile or dials the server.
func (a *app) backend(ctx context.Context, user model.Identity, p session.Provider) (client.Backend, error) {
	if a.openBackend != nil {
		return a.openBackend(ctx, user, p)
	}
	if a.cfg.Local {
		db, err := sqlite.Open(a.cfg.LocalDB)
		if err != nil {
			return nil, err
		}
		kv := sqlite.NewKVRepo(db)
		moments := service.NewMomentService(store.NewMomentStore(kv), a.log.Named("moments"))
		anniv := service.NewAnniversaryService(store.NewAnniversaryStore(kv), moments, time.Now, a.log.Named("anniversary"))
		return client.NewLocal(user, moments, anniv, countdown.SystemClock, db.Close), nil
	}

	token := func(ctx context.Context) (string, error) {
		sess, err := p.GetSession(ctx)
		if err != nil {
			return "", err
		}
		if sess == nil {
			return "", errSignInRequired
		}
		return sess.AccessToken, nil
	}
	cc, err := client.Dial(ctx, client.DialOptions{
		Addr:      a.cfg.Server,
		CAFile:    a.cfg.CAFile,
		Insecure:  a.cfg.Insecure,
		Plaintext: a.plaintext,
	}, token)
	if err != nil {
		return nil, err
	}
	return client.NewRemote(cc), nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
