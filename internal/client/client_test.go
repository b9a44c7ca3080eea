package client

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	pb "github.com/and161185/moment-keeper/gen/go/momentkeeper/v1"
	"github.com/and161185/moment-keeper/internal/countdown"
	"github.com/and161185/moment-keeper/internal/errs"
	"github.com/and161185/moment-keeper/internal/model"
	"github.com/and161185/moment-keeper/internal/repository/sqlite"
	grpcserver "github.com/and161185/moment-keeper/internal/server/grpc"
	"github.com/and161185/moment-keeper/internal/service"
	"github.com/and161185/moment-keeper/internal/store"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type staticVerifier struct{ id model.Identity }

func (v staticVerifier) Verify(_ context.Context, token string) (model.Identity, error) {
	if token != "tok" {
		return model.Identity{}, errs.ErrUnauthorized
	}
	return v.id, nil
}

func services(t *testing.T) (service.MomentService, service.AnniversaryService) {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	kv := sqlite.NewKVRepo(db)

	now := func() time.Time { return testNow }
	log := zaptest.NewLogger(t)
	ms := service.NewMomentService(store.NewMomentStore(kv), log, service.WithMomentClock(now))
	as := service.NewAnniversaryService(store.NewAnniversaryStore(kv), ms, now, log)
	return ms, as
}

func newLocal(t *testing.T, user model.Identity) Backend {
	ms, as := services(t)
	return NewLocal(user, ms, as, countdown.ClockFunc(func() time.Time { return testNow }), nil)
}

func newRemote(t *testing.T, user model.Identity) Backend {
	ms, as := services(t)
	log := zaptest.NewLogger(t)
	v := staticVerifier{id: user}

	lis := bufconn.Listen(1 << 20)
	gs := grpc.NewServer(
		grpc.ChainUnaryInterceptor(grpcserver.AuthUnary(v, log)),
		grpc.ChainStreamInterceptor(grpcserver.AuthStream(v, log)),
	)
	clock := countdown.ClockFunc(func() time.Time { return testNow })
	pb.RegisterMomentKeeperServer(gs, grpcserver.New(ms, as, log, grpcserver.WithClock(clock)))
	go func() { _ = gs.Serve(lis) }()

	dialer := func(context.Context, string) (net.Conn, error) { return lis.Dial() }
	token := func(context.Context) (string, error) { return "tok", nil }
	cc, err := Dial(context.Background(), DialOptions{Addr: "bufnet", Plaintext: true}, token, grpc.WithContextDialer(dialer))
	require.NoError(t, err)

	r := NewRemote(cc)
	t.Cleanup(func() { _ = r.Close(); gs.Stop(); _ = lis.Close() })
	return r
}

func TestBackends_JournalFlow(t *testing.T) {
	user := model.Identity{ID: uuid.Must(uuid.NewV4()), Email: "a@b.c"}
	backends := map[string]func(*testing.T, model.Identity) Backend{
		"local":  newLocal,
		"remote": newRemote,
	}
	for name, mk := range backends {
		t.Run(name, func(t *testing.T) {
			b := mk(t, user)
			ctx := context.Background()

			who, err := b.WhoAmI(ctx)
			require.NoError(t, err)
			require.Equal(t, user, who)

			demo, err := b.List(ctx, "", model.SortNewest)
			require.NoError(t, err)
			require.Len(t, demo, 4)

			created, err := b.Create(ctx, service.MomentInput{
				Title:       "Paris",
				Description: "Eiffel tower at night",
				Date:        time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
				ImageURL:    "https://example.com/paris.jpg",
				Tags:        []string{"trip", " trip ", "city"},
			})
			require.NoError(t, err)
			require.NotEmpty(t, created.ID)
			require.Equal(t, []string{"trip", "city"}, created.Tags)

			got, err := b.Get(ctx, created.ID)
			require.NoError(t, err)
			require.True(t, got.Date.Equal(created.Date))

			upd, err := b.Update(ctx, created.ID, service.MomentInput{
				Title: "Paris again", Description: "d", Date: created.Date, ImageURL: created.ImageURL,
			})
			require.NoError(t, err)
			require.Equal(t, "Paris again", upd.Title)

			list, err := b.List(ctx, "again", model.SortAlphabetical)
			require.NoError(t, err)
			require.Len(t, list, 1)

			_, err = b.Get(ctx, "missing")
			require.ErrorIs(t, err, errs.ErrNotFound)

			_, err = b.Create(ctx, service.MomentInput{Description: "no title", ImageURL: "https://example.com/x.jpg"})
			require.ErrorIs(t, err, errs.ErrValidation)

			v, err := b.SaveAnniversary(ctx, service.AnniversaryInput{Date: time.Date(2020, 6, 12, 0, 0, 0, 0, time.UTC), Name: "Us"})
			require.NoError(t, err)
			require.True(t, v.Saved)
			require.Equal(t, 3, v.YearsElapsed)
			require.True(t, v.NextOccurrence.Equal(time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)))

			v, err = b.Anniversary(ctx)
			require.NoError(t, err)
			require.Equal(t, "Us", v.Setting.Name)
			require.Equal(t, model.Countdown{Days: 10, Hours: 12}, v.Countdown)

			home, err := b.Home(ctx)
			require.NoError(t, err)
			require.Len(t, home.Recent, 1)
			require.True(t, home.Countdown.IsZero())

			var events []model.Countdown
			err = b.WatchCountdown(ctx, model.TargetHome, 100*time.Millisecond, func(c model.Countdown) error {
				events = append(events, c)
				return nil
			})
			require.NoError(t, err)
			require.Equal(t, []model.Countdown{{}}, events)

			stop := errors.New("stop")
			events = nil
			err = b.WatchCountdown(ctx, model.TargetAnniversary, 100*time.Millisecond, func(c model.Countdown) error {
				events = append(events, c)
				if len(events) == 2 {
					return stop
				}
				return nil
			})
			require.ErrorIs(t, err, stop)
			require.Equal(t, model.Countdown{Days: 10, Hours: 12}, events[1])

			require.NoError(t, b.Close())
		})
	}
}

func TestFromStatus(t *testing.T) {
	t.Parallel()
	cases := []struct {
		code codes.Code
		want error
	}{
		{codes.NotFound, errs.ErrNotFound},
		{codes.InvalidArgument, errs.ErrValidation},
		{codes.AlreadyExists, errs.ErrAlreadyExists},
		{codes.Unauthenticated, errs.ErrUnauthorized},
		{codes.FailedPrecondition, errs.ErrVersionConflict},
		{codes.DataLoss, errs.ErrMalformedStore},
		{codes.Canceled, context.Canceled},
	}
	for _, tc := range cases {
		err := fromStatus(status.Error(tc.code, "msg"))
		require.ErrorIs(t, err, tc.want, tc.code.String())
	}

	plain := errors.New("plain")
	require.Equal(t, plain, fromStatus(plain))
	require.Equal(t, codes.Unavailable, status.Code(fromStatus(status.Error(codes.Unavailable, "down"))))
}

func TestBearerCreds(t *testing.T) {
	t.Parallel()
	c := bearerCreds{token: func(context.Context) (string, error) { return "abc", nil }, secure: true}
	md, err := c.GetRequestMetadata(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer abc", md["authorization"])
	require.True(t, c.RequireTransportSecurity())

	failing := bearerCreds{token: func(context.Context) (string, error) { return "", errs.ErrUnauthorized }}
	_, err = failing.GetRequestMetadata(context.Background())
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestLoadTLS(t *testing.T) {
	t.Parallel()
	_, err := loadTLS("/does/not/exist.pem", false)
	require.Error(t, err)

	c, err := loadTLS("", true)
	require.NoError(t, err)
	require.NotNil(t, c)
}
