// Package grpcserver exposes the MomentKeeper gRPC API handlers.
package grpcserver

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/and161185/moment-keeper/gen/go/momentkeeper/v1"
	"github.com/and161185/moment-keeper/internal/auth"
	"github.com/and161185/moment-keeper/internal/convert"
	"github.com/and161185/moment-keeper/internal/countdown"
	"github.com/and161185/moment-keeper/internal/model"
	"github.com/and161185/moment-keeper/internal/observability"
	"github.com/and161185/moment-keeper/internal/query"
	"github.com/and161185/moment-keeper/internal/service"
)

// DefaultWatchInterval is the countdown refresh cadence of every view.
const DefaultWatchInterval = time.Second

// minWatchInterval bounds how often a stream may be asked to tick.
const minWatchInterval = 100 * time.Millisecond

// Server wires services into gRPC handlers.
type Server struct {
	pb.UnimplementedMomentKeeperServer
	moments service.MomentService
	anniv   service.AnniversaryService
	clock   countdown.Clock
	metrics *observability.Collector
	log     *zap.Logger
}

// Option customises Server.
type Option func(*Server)

// WithClock sets the clock used by countdown streams.
func WithClock(c countdown.Clock) Option { return func(s *Server) { s.clock = c } }

// WithMetrics makes handlers report domain counters to c.
func WithMetrics(c *observability.Collector) Option { return func(s *Server) { s.metrics = c } }

// New constructs a gRPC server with injected services.
func New(moments service.MomentService, anniv service.AnniversaryService, log *zap.Logger, opts ...Option) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{moments: moments, anniv: anniv, clock: countdown.SystemClock, log: log}
	for _, o := range opts {
		o(s)
	}
	return s
}

// --- Moments ---

// ListMoments returns the filtered and sorted collection.
func (s *Server) ListMoments(ctx context.Context, req *pb.ListMomentsRequest) (*pb.ListMomentsResponse, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	mode, ok := query.ParseSortMode(req.GetSort())
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unknown sort mode %q", req.GetSort())
	}
	ms, err := s.moments.List(ctx, id.ID, req.GetQuery(), mode)
	if err != nil {
		return nil, s.toStatus("list moments", err)
	}
	return &pb.ListMomentsResponse{Moments: convert.ToProtoMoments(ms)}, nil
}

// GetMoment returns a single moment by id.
func (s *Server) GetMoment(ctx context.Context, req *pb.GetMomentRequest) (*pb.MomentResponse, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	if req.GetId() == "" {
		return nil, status.Error(codes.InvalidArgument, "empty id")
	}
	m, err := s.moments.Get(ctx, id.ID, req.GetId())
	if err != nil {
		return nil, s.toStatus("get moment", err)
	}
	return &pb.MomentResponse{Moment: convert.ToProtoMoment(m)}, nil
}

// CreateMoment appends a new moment.
func (s *Server) CreateMoment(ctx context.Context, req *pb.CreateMomentRequest) (*pb.MomentResponse, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	in, err := convert.FromProtoMomentInput(req.GetMoment())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "bad moment: %v", err)
	}
	m, err := s.moments.Create(ctx, id.ID, in)
	if err != nil {
		return nil, s.toStatus("create moment", err)
	}
	if s.metrics != nil {
		s.metrics.MomentsCreated.Inc()
	}
	return &pb.MomentResponse{Moment: convert.ToProtoMoment(m)}, nil
}

// UpdateMoment replaces a moment in place.
func (s *Server) UpdateMoment(ctx context.Context, req *pb.UpdateMomentRequest) (*pb.MomentResponse, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	if req.GetId() == "" {
		return nil, status.Error(codes.InvalidArgument, "empty id")
	}
	in, err := convert.FromProtoMomentInput(req.GetMoment())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "bad moment: %v", err)
	}
	m, err := s.moments.Update(ctx, id.ID, req.GetId(), in)
	if err != nil {
		return nil, s.toStatus("update moment", err)
	}
	return &pb.MomentResponse{Moment: convert.ToProtoMoment(m)}, nil
}

// --- Anniversary ---

// GetAnniversary returns the anniversary view.
func (s *Server) GetAnniversary(ctx context.Context, _ *pb.GetAnniversaryRequest) (*pb.AnniversaryView, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	v, err := s.anniv.View(ctx, id.ID)
	if err != nil {
		return nil, s.toStatus("get anniversary", err)
	}
	return convert.ToProtoAnniversaryView(v), nil
}

// SaveAnniversary overwrites the anniversary setting.
func (s *Server) SaveAnniversary(ctx context.Context, req *pb.SaveAnniversaryRequest) (*pb.AnniversaryView, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	in, err := convert.FromProtoSaveAnniversary(req)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "bad anniversary: %v", err)
	}
	v, err := s.anniv.Save(ctx, id.ID, in)
	if err != nil {
		return nil, s.toStatus("save anniversary", err)
	}
	return convert.ToProtoAnniversaryView(v), nil
}

// Home returns the landing view.
func (s *Server) Home(ctx context.Context, _ *pb.HomeRequest) (*pb.HomeResponse, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	h, err := s.anniv.Home(ctx, id.ID)
	if err != nil {
		return nil, s.toStatus("home", err)
	}
	return convert.ToProtoHome(h), nil
}

// WhoAmI echoes the authenticated identity.
func (s *Server) WhoAmI(ctx context.Context, _ *pb.WhoAmIRequest) (*pb.WhoAmIResponse, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	return convert.ToProtoWhoAmI(id), nil
}

// errReached ends a countdown stream once the target is reached.
var errReached = errors.New("target reached")

// WatchCountdown streams the countdown to the requested target until the
// client goes away or the target is reached.
func (s *Server) WatchCountdown(req *pb.WatchCountdownRequest, stream grpc.ServerStreamingServer[pb.CountdownEvent]) error {
	ctx := stream.Context()
	id, err := identity(ctx)
	if err != nil {
		return err
	}

	interval := DefaultWatchInterval
	if req.GetIntervalMs() < 0 {
		return status.Error(codes.InvalidArgument, "negative interval")
	}
	if req.GetIntervalMs() > 0 {
		interval = max(time.Duration(req.GetIntervalMs())*time.Millisecond, minWatchInterval)
	}

	target := req.GetTarget()
	if target == "" {
		target = model.TargetAnniversary
	}
	var at time.Time
	switch target {
	case model.TargetAnniversary:
		v, err := s.anniv.View(ctx, id.ID)
		if err != nil {
			return s.toStatus("watch countdown", err)
		}
		at = v.NextOccurrence
	case model.TargetHome:
		a, _, err := s.anniv.Setting(ctx, id.ID)
		if err != nil {
			return s.toStatus("watch countdown", err)
		}
		at = a.Date
	default:
		return status.Errorf(codes.InvalidArgument, "unknown target %q", req.GetTarget())
	}

	if s.metrics != nil {
		s.metrics.CountdownStreams.Inc()
		defer s.metrics.CountdownStreams.Dec()
	}

	err = countdown.Watch(ctx, s.clock, at, interval, func(c model.Countdown) error {
		ev := &pb.CountdownEvent{Target: target, Countdown: convert.ToProtoCountdown(c), Reached: c.IsZero()}
		if err := stream.Send(ev); err != nil {
			return err
		}
		if ev.Reached {
			return errReached
		}
		return nil
	})
	switch {
	case errors.Is(err, errReached):
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	default:
		return err
	}
}

// identity returns the caller put into ctx by the auth interceptors.
func identity(ctx context.Context) (model.Identity, error) {
	id, ok := auth.IdentityFrom(ctx)
	if !ok {
		return model.Identity{}, status.Error(codes.Unauthenticated, "no auth")
	}
	return id, nil
}
