// Command mk-server serves the MomentKeeper gRPC and HTTP APIs.
package main

import (
	"context"
	"errors"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	pb "github.com/and161185/moment-keeper/gen/go/momentkeeper/v1"
	"github.com/and161185/moment-keeper/internal/auth"
	"github.com/and161185/moment-keeper/internal/config"
	"github.com/and161185/moment-keeper/internal/migrate"
	"github.com/and161185/moment-keeper/internal/observability"
	"github.com/and161185/moment-keeper/internal/repository/postgres"
	grpcserver "github.com/and161185/moment-keeper/internal/server/grpc"
	httpserver "github.com/and161185/moment-keeper/internal/server/http"
	"github.com/and161185/moment-keeper/internal/service"
	"github.com/and161185/moment-keeper/internal/session/supabase"
	"github.com/and161185/moment-keeper/internal/store"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main loads configuration, runs migrations, and starts the gRPC and HTTP servers.
func main() {
	cfgPath := flag.String("config", "", "YAML config file")
	grpcAddr := flag.String("grpc-addr", "", "gRPC listen address")
	httpAddr := flag.String("http-addr", "", "HTTP listen address")
	dsn := flag.String("dsn", "", "PostgreSQL DSN")
	certFile := flag.String("tls-cert", "", "TLS certificate (PEM)")
	keyFile := flag.String("tls-key", "", "TLS private key (PEM)")
	dev := flag.Bool("dev", false, "enable server reflection (dev only)")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	cfg, err := config.LoadServer(*cfgPath)
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "grpc-addr":
			cfg.GRPCAddr = *grpcAddr
		case "http-addr":
			cfg.HTTPAddr = *httpAddr
		case "dsn":
			cfg.DSN = *dsn
		case "tls-cert":
			cfg.TLSCert = *certFile
		case "tls-key":
			cfg.TLSKey = *keyFile
		case "dev":
			cfg.Dev = *dev
		}
	})
	if err := cfg.Validate(); err != nil {
		logger.Fatal("config", zap.Error(err))
	}

	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("grpc", cfg.GRPCAddr),
		zap.String("http", cfg.HTTPAddr),
	)

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := migrate.Up(ctx, cfg.DSN, logger); err != nil {
		logger.Fatal("migrate up", zap.Error(err))
	}

	db, err := postgres.New(ctx, cfg.DSN)
	if err != nil {
		logger.Fatal("postgres", zap.Error(err))
	}
	defer db.Close()

	metrics := observability.NewCollector(cfg.MetricsNS)

	// Stores and services
	kv := observability.InstrumentKV(postgres.NewKVRepo(db), metrics)
	momentSvc := service.NewMomentService(store.NewMomentStore(kv), logger.Named("moments"))
	annivSvc := service.NewAnniversaryService(store.NewAnniversaryStore(kv), momentSvc, time.Now, logger.Named("anniversary"))

	verifier, err := newVerifier(cfg, logger)
	if err != nil {
		logger.Fatal("verifier", zap.Error(err))
	}

	// gRPC server with interceptors
	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			grpcserver.RecoverUnary(logger),
			grpcserver.LoggingUnary(logger),
			grpcserver.MetricsUnary(metrics),
			grpcserver.AuthUnary(verifier, logger),
		),
		grpc.ChainStreamInterceptor(
			grpcserver.RecoverStream(logger),
			grpcserver.LoggingStream(logger),
			grpcserver.MetricsStream(metrics),
			grpcserver.AuthStream(verifier, logger),
		),
	}
	if cfg.TLSCert != "" {
		creds, err := credentials.NewServerTLSFromFile(cfg.TLSCert, cfg.TLSKey)
		if err != nil {
			logger.Fatal("failed to load TLS cert/key", zap.Error(err))
		}
		opts = append(opts, grpc.Creds(creds))
	} else {
		logger.Warn("TLS disabled, serving plaintext gRPC")
	}
	s := grpc.NewServer(opts...)

	app := grpcserver.New(momentSvc, annivSvc, logger, grpcserver.WithMetrics(metrics))
	pb.RegisterMomentKeeperServer(s, app)

	// Health & reflection (dev)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	hs.SetServingStatus(pb.MomentKeeper_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	if cfg.Dev {
		reflection.Register(s)
	}

	hsrv := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: httpserver.NewRouter(httpserver.Deps{
			Moments:     momentSvc,
			Anniversary: annivSvc,
			Verifier:    verifier,
			Metrics:     metrics,
			Logger:      logger,
			CORSOrigins: cfg.CORSOrigins,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Listen
	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Fatal("listen", zap.Error(err))
	}

	errCh := make(chan error, 2)
	go func() {
		logger.Info("grpc listening", zap.String("addr", cfg.GRPCAddr), zap.Bool("tls", cfg.TLSCert != ""))
		errCh <- s.Serve(lis)
	}()
	go func() {
		logger.Info("http listening", zap.String("addr", cfg.HTTPAddr))
		var err error
		if cfg.TLSCert != "" {
			err = hsrv.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = hsrv.ListenAndServe()
		}
		if !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for stop
	select {
	case <-ctx.Done():
		hs.Shutdown()
		shutdown(s, hsrv, cfg.ShutdownTimeout, logger)
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
		shutdown(s, hsrv, cfg.ShutdownTimeout, logger)
		os.Exit(1)
	}

	logger.Info("shutdown complete")
}

// newVerifier checks tokens locally when the JWT secret is known and asks
// the identity provider otherwise.
func newVerifier(cfg *config.Server, logger *zap.Logger) (auth.Verifier, error) {
	if cfg.JWTSecret != "" {
		return auth.NewJWTVerifier([]byte(cfg.JWTSecret), cfg.JWTAudience), nil
	}
	users, err := supabase.NewAPI(cfg.SupabaseURL, cfg.SupabaseAnonKey)
	if err != nil {
		return nil, err
	}
	return auth.NewRemoteVerifier(users, supabase.BreakerSettings(logger.Named("verifier"))), nil
}

func shutdown(s *grpc.Server, hsrv *http.Server, timeout time.Duration, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := hsrv.Shutdown(ctx); err != nil {
		logger.Warn("http shutdown", zap.Error(err))
	}

	// graceful shutdown
	done := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		s.Stop()
	}
}
