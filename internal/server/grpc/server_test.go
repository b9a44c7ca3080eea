package grpcserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/and161185/moment-keeper/gen/go/momentkeeper/v1"
	"github.com/and161185/moment-keeper/internal/convert"
	"github.com/and161185/moment-keeper/internal/countdown"
	"github.com/and161185/moment-keeper/internal/errs"
	"github.com/and161185/moment-keeper/internal/model"
	"github.com/and161185/moment-keeper/internal/observability"
	"github.com/and161185/moment-keeper/internal/service"
)

type fakeVerifier struct {
	tokens map[string]model.Identity
}

func (f fakeVerifier) Verify(_ context.Context, token string) (model.Identity, error) {
	if token == "provider-down" {
		return model.Identity{}, fmt.Errorf("%w: breaker is open", errs.ErrUnavailable)
	}
	id, ok := f.tokens[token]
	if !ok {
		return model.Identity{}, fmt.Errorf("%w: unknown token", errs.ErrUnauthorized)
	}
	return id, nil
}

type fakeMoments struct {
	mu      sync.Mutex
	byOwner map[uuid.UUID][]model.Moment
	err     error
}

func (f *fakeMoments) List(_ context.Context, owner uuid.UUID, _ string, mode model.SortMode) ([]model.Moment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := append([]model.Moment(nil), f.byOwner[owner]...)
	if mode == model.SortOldest {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out, nil
}

func (f *fakeMoments) Get(_ context.Context, owner uuid.UUID, id string) (model.Moment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.byOwner[owner] {
		if m.ID == id {
			return m, nil
		}
	}
	return model.Moment{}, errs.ErrNotFound
}

func (f *fakeMoments) Create(_ context.Context, owner uuid.UUID, in service.MomentInput) (model.Moment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if in.Title == "" {
		return model.Moment{}, errs.Validation("title is required")
	}
	m := model.Moment{ID: in.ID, Title: in.Title, Date: in.Date, Description: in.Description, ImageURL: in.ImageURL, Tags: in.Tags}
	if m.ID == "" {
		m.ID = fmt.Sprintf("m%d", len(f.byOwner[owner])+1)
	}
	for _, x := range f.byOwner[owner] {
		if x.ID == m.ID {
			return model.Moment{}, errs.ErrAlreadyExists
		}
	}
	f.byOwner[owner] = append(f.byOwner[owner], m)
	return m, nil
}

func (f *fakeMoments) Update(_ context.Context, owner uuid.UUID, id string, in service.MomentInput) (model.Moment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, m := range f.byOwner[owner] {
		if m.ID == id {
			m.Title, m.Description = in.Title, in.Description
			f.byOwner[owner][i] = m
			return m, nil
		}
	}
	return model.Moment{}, errs.ErrNotFound
}

func (f *fakeMoments) Recent(ctx context.Context, owner uuid.UUID, n int) ([]model.Moment, error) {
	ms, err := f.List(ctx, owner, "", model.SortNewest)
	if err != nil {
		return nil, err
	}
	return ms[:min(n, len(ms))], nil
}

type fakeAnniv struct {
	setting model.AnniversarySetting
	saved   bool
	err     error
}

func (f *fakeAnniv) Setting(context.Context, uuid.UUID) (model.AnniversarySetting, bool, error) {
	return f.setting, f.saved, f.err
}

func (f *fakeAnniv) View(_ context.Context, _ uuid.UUID) (model.AnniversaryView, error) {
	if f.err != nil {
		return model.AnniversaryView{}, f.err
	}
	return service.BuildView(f.setting, f.saved, testNow), nil
}

func (f *fakeAnniv) Save(_ context.Context, _ uuid.UUID, in service.AnniversaryInput) (model.AnniversaryView, error) {
	f.setting = model.AnniversarySetting{Date: in.Date, Name: in.Name}
	f.saved = true
	return service.BuildView(f.setting, true, testNow), nil
}

func (f *fakeAnniv) Home(context.Context, uuid.UUID) (model.Home, error) {
	return model.Home{Anniversary: f.setting, Saved: f.saved}, f.err
}

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

const bufSize = 1 << 20

type env struct {
	cl      pb.MomentKeeperClient
	health  healthpb.HealthClient
	moments *fakeMoments
	anniv   *fakeAnniv
	metrics *observability.Collector
	user    model.Identity
}

func startBufGRPC(t *testing.T) *env {
	t.Helper()
	log := zaptest.NewLogger(t)

	e := &env{
		moments: &fakeMoments{byOwner: map[uuid.UUID][]model.Moment{}},
		anniv: &fakeAnniv{setting: model.AnniversarySetting{
			Date: time.Date(2020, 6, 12, 0, 0, 0, 0, time.UTC), Name: "Us",
		}, saved: true},
		metrics: observability.NewCollector("mk"),
		user:    model.Identity{ID: uuid.Must(uuid.NewV4()), Email: "a@b.c"},
	}
	v := fakeVerifier{tokens: map[string]model.Identity{"good": e.user}}

	lis := bufconn.Listen(bufSize)
	gs := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			RecoverUnary(log),
			LoggingUnary(log),
			MetricsUnary(e.metrics),
			AuthUnary(v, log),
		),
		grpc.ChainStreamInterceptor(
			RecoverStream(log),
			LoggingStream(log),
			MetricsStream(e.metrics),
			AuthStream(v, log),
		),
	)
	clock := countdown.ClockFunc(func() time.Time { return testNow })
	pb.RegisterMomentKeeperServer(gs, New(e.moments, e.anniv, log, WithClock(clock), WithMetrics(e.metrics)))
	healthpb.RegisterHealthServer(gs, health.NewServer())
	go func() { _ = gs.Serve(lis) }()

	dialer := func(context.Context, string) (net.Conn, error) { return lis.Dial() }
	//nolint:staticcheck // DialContext is supported through 1.x
	cc, err := grpc.DialContext(context.Background(), "bufnet",
		grpc.WithContextDialer(dialer), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = cc.Close(); gs.Stop(); _ = lis.Close() })

	e.cl = pb.NewMomentKeeperClient(cc)
	e.health = healthpb.NewHealthClient(cc)
	return e
}

func ctxAuth(token string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+token)
}

func wantCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	if st, ok := status.FromError(err); !ok || st.Code() != code {
		t.Fatalf("want %v, got %v", code, err)
	}
}

func TestServer_E2E_MomentFlow(t *testing.T) {
	t.Parallel()
	e := startBufGRPC(t)
	ctx := ctxAuth("good")

	who, err := e.cl.WhoAmI(ctx, &pb.WhoAmIRequest{})
	if err != nil || who.GetUserId() != e.user.ID.String() || who.GetEmail() != "a@b.c" {
		t.Fatalf("whoami: %+v %v", who, err)
	}

	day := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)
	for _, title := range []string{"Beach", "Paris"} {
		_, err := e.cl.CreateMoment(ctx, &pb.CreateMomentRequest{Moment: &pb.Moment{
			Title: title, Description: "d", Date: timestamppb.New(day),
			ImageUrl: "https://example.com/x.jpg", Tags: []string{"trip"},
		}})
		if err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
	}

	list, err := e.cl.ListMoments(ctx, &pb.ListMomentsRequest{Sort: "oldest"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list.GetMoments()) != 2 || list.GetMoments()[0].GetTitle() != "Paris" {
		t.Fatalf("unexpected list: %v", list.GetMoments())
	}
	if !list.GetMoments()[1].GetDate().AsTime().Equal(day) {
		t.Fatalf("date not carried: %v", list.GetMoments()[1].GetDate())
	}

	got, err := e.cl.GetMoment(ctx, &pb.GetMomentRequest{Id: "m1"})
	if err != nil || got.GetMoment().GetTitle() != "Beach" {
		t.Fatalf("get: %v %v", got, err)
	}

	upd, err := e.cl.UpdateMoment(ctx, &pb.UpdateMomentRequest{Id: "m1", Moment: &pb.Moment{Title: "Beach day", Description: "sun"}})
	if err != nil || upd.GetMoment().GetTitle() != "Beach day" {
		t.Fatalf("update: %v %v", upd, err)
	}

	if got := testutil.ToFloat64(e.metrics.MomentsCreated); got != 2 {
		t.Fatalf("moments created = %v", got)
	}
}

func TestServer_ErrorMapping(t *testing.T) {
	t.Parallel()
	e := startBufGRPC(t)
	ctx := ctxAuth("good")

	_, err := e.cl.GetMoment(ctx, &pb.GetMomentRequest{Id: "nope"})
	wantCode(t, err, codes.NotFound)

	_, err = e.cl.GetMoment(ctx, &pb.GetMomentRequest{})
	wantCode(t, err, codes.InvalidArgument)

	_, err = e.cl.CreateMoment(ctx, &pb.CreateMomentRequest{Moment: &pb.Moment{Description: "d"}})
	wantCode(t, err, codes.InvalidArgument)

	_, err = e.cl.CreateMoment(ctx, &pb.CreateMomentRequest{Moment: &pb.Moment{Title: "t", Date: &timestamppb.Timestamp{Seconds: 1, Nanos: -1}}})
	wantCode(t, err, codes.InvalidArgument)

	in := &pb.Moment{Id: "dup", Title: "t", Description: "d"}
	if _, err := e.cl.CreateMoment(ctx, &pb.CreateMomentRequest{Moment: in}); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err = e.cl.CreateMoment(ctx, &pb.CreateMomentRequest{Moment: in})
	wantCode(t, err, codes.AlreadyExists)

	_, err = e.cl.ListMoments(ctx, &pb.ListMomentsRequest{Sort: "random"})
	wantCode(t, err, codes.InvalidArgument)

	e.moments.mu.Lock()
	e.moments.err = fmt.Errorf("load: %w", &errs.MalformedStoreError{Key: "moments", Err: errors.New("eof")})
	e.moments.mu.Unlock()
	_, err = e.cl.ListMoments(ctx, &pb.ListMomentsRequest{})
	wantCode(t, err, codes.DataLoss)

	e.moments.mu.Lock()
	e.moments.err = errors.New("connection refused")
	e.moments.mu.Unlock()
	_, err = e.cl.ListMoments(ctx, &pb.ListMomentsRequest{})
	wantCode(t, err, codes.Internal)
	if st, _ := status.FromError(err); st.Message() != "list moments: internal error" {
		t.Fatalf("internal detail leaked: %q", st.Message())
	}
}

func TestServer_Unauthenticated(t *testing.T) {
	t.Parallel()
	e := startBufGRPC(t)

	_, err := e.cl.Home(context.Background(), &pb.HomeRequest{})
	wantCode(t, err, codes.Unauthenticated)

	_, err = e.cl.Home(ctxAuth("forged"), &pb.HomeRequest{})
	wantCode(t, err, codes.Unauthenticated)

	_, err = e.cl.Home(ctxAuth("provider-down"), &pb.HomeRequest{})
	wantCode(t, err, codes.Unavailable)

	stream, err := e.cl.WatchCountdown(context.Background(), &pb.WatchCountdownRequest{})
	if err == nil {
		_, err = stream.Recv()
	}
	wantCode(t, err, codes.Unauthenticated)

	// health is public
	resp, err := e.health.Check(context.Background(), &healthpb.HealthCheckRequest{})
	if err != nil || resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		t.Fatalf("health: %v %v", resp, err)
	}
}

func TestServer_Anniversary(t *testing.T) {
	t.Parallel()
	e := startBufGRPC(t)
	ctx := ctxAuth("good")

	v, err := e.cl.GetAnniversary(ctx, &pb.GetAnniversaryRequest{})
	if err != nil {
		t.Fatalf("get anniversary: %v", err)
	}
	next := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)
	if !v.GetNextOccurrence().AsTime().Equal(next) || v.GetYearsElapsed() != 3 || v.GetCountdown().GetDays() != 10 {
		t.Fatalf("unexpected view: %v", v)
	}

	dayOne := timestamppb.New(time.Date(2019, 1, 2, 0, 0, 0, 0, time.UTC))
	saved, err := e.cl.SaveAnniversary(ctx, &pb.SaveAnniversaryRequest{Date: dayOne, Name: "Day one"})
	if err != nil || saved.GetAnniversary().GetName() != "Day one" || !saved.GetSaved() {
		t.Fatalf("save: %v %v", saved, err)
	}

	_, err = e.cl.SaveAnniversary(ctx, &pb.SaveAnniversaryRequest{Date: &timestamppb.Timestamp{Seconds: -1 << 40}})
	wantCode(t, err, codes.InvalidArgument)

	home, err := e.cl.Home(ctx, &pb.HomeRequest{})
	if err != nil || home.GetAnniversary().GetName() != "Day one" {
		t.Fatalf("home: %v %v", home, err)
	}
}

func TestServer_WatchCountdown(t *testing.T) {
	t.Parallel()
	e := startBufGRPC(t)

	t.Run("anniversary streams until cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(ctxAuth("good"))
		defer cancel()
		stream, err := e.cl.WatchCountdown(ctx, &pb.WatchCountdownRequest{Target: model.TargetAnniversary, IntervalMs: 100})
		if err != nil {
			t.Fatalf("watch: %v", err)
		}
		for i := 0; i < 2; i++ {
			ev, err := stream.Recv()
			if err != nil {
				t.Fatalf("recv %d: %v", i, err)
			}
			if ev.GetTarget() != model.TargetAnniversary || ev.GetReached() || ev.GetCountdown().GetDays() != 10 || ev.GetCountdown().GetHours() != 12 {
				t.Fatalf("unexpected event: %v", ev)
			}
		}
		cancel()
		if _, err := stream.Recv(); status.Code(err) != codes.Canceled {
			t.Fatalf("want Canceled, got %v", err)
		}
	})

	t.Run("home target in the past ends after one event", func(t *testing.T) {
		stream, err := e.cl.WatchCountdown(ctxAuth("good"), &pb.WatchCountdownRequest{Target: model.TargetHome})
		if err != nil {
			t.Fatalf("watch: %v", err)
		}
		ev, err := stream.Recv()
		if err != nil || !ev.GetReached() || convert.FromProtoCountdown(ev.GetCountdown()) != (model.Countdown{}) {
			t.Fatalf("want reached zero countdown, got %v %v", ev, err)
		}
		if _, err := stream.Recv(); !errors.Is(err, io.EOF) {
			t.Fatalf("want EOF, got %v", err)
		}
	})

	t.Run("bad requests", func(t *testing.T) {
		for _, req := range []*pb.WatchCountdownRequest{
			{Target: "birthday"},
			{IntervalMs: -1},
		} {
			stream, err := e.cl.WatchCountdown(ctxAuth("good"), req)
			if err == nil {
				_, err = stream.Recv()
			}
			wantCode(t, err, codes.InvalidArgument)
		}
	})
}
