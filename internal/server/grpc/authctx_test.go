package grpcserver

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/and161185/moment-keeper/internal/auth"
	"github.com/and161185/moment-keeper/internal/model"
)

func Test_bearerTokenFromMD_OkAndErrors(t *testing.T) {
	t.Parallel()

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer abc.def.ghi"))
	got, err := bearerTokenFromMD(ctx)
	if err != nil || got != "abc.def.ghi" {
		t.Fatalf("ok: got=%q err=%v", got, err)
	}

	ctx = metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Basic foo"))
	if _, err := bearerTokenFromMD(ctx); err == nil {
		t.Fatalf("want error on non-bearer")
	}

	ctx = metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer   "))
	if _, err := bearerTokenFromMD(ctx); err == nil {
		t.Fatalf("want error on empty token")
	}

	if _, err := bearerTokenFromMD(context.Background()); err == nil {
		t.Fatalf("want error on no metadata")
	}
}

func TestAuthUnary_PutsIdentityIntoCtx(t *testing.T) {
	t.Parallel()

	want := model.Identity{ID: uuid.Must(uuid.NewV4()), Email: "x@y.z"}
	ic := AuthUnary(fakeVerifier{tokens: map[string]model.Identity{"tok": want}}, zaptest.NewLogger(t))
	info := &grpc.UnaryServerInfo{FullMethod: "/momentkeeper.v1.MomentKeeper/Home"}

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "bearer tok"))
	_, err := ic(ctx, nil, info, func(ctx context.Context, _ any) (any, error) {
		got, ok := auth.IdentityFrom(ctx)
		if !ok || got != want {
			t.Fatalf("identity: %+v %v", got, ok)
		}
		return nil, nil
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	called := false
	_, err = ic(context.Background(), nil, info, func(context.Context, any) (any, error) {
		called = true
		return nil, nil
	})
	if status.Code(err) != codes.Unauthenticated || called {
		t.Fatalf("want Unauthenticated without calling handler, got %v called=%v", err, called)
	}
}

func TestAuthUnary_HealthIsPublic(t *testing.T) {
	t.Parallel()

	ic := AuthUnary(fakeVerifier{}, zaptest.NewLogger(t))
	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}
	resp, err := ic(context.Background(), nil, info, func(context.Context, any) (any, error) { return "ok", nil })
	if err != nil || resp.(string) != "ok" {
		t.Fatalf("health must pass: %v %v", resp, err)
	}
}
