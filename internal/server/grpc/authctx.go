package grpcserver

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/and161185/moment-keeper/internal/auth"
)

// publicPrefix marks services that do not require a bearer token.
const publicPrefix = "/grpc.health.v1.Health/"

func isPublic(fullMethod string) bool {
	return strings.HasPrefix(fullMethod, publicPrefix)
}

// AuthUnary verifies the bearer token and stores the caller identity in ctx.
func AuthUnary(v auth.Verifier, log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		if isPublic(info.FullMethod) {
			return next(ctx, req)
		}
		ctx, err := authenticate(ctx, v, log, info.FullMethod)
		if err != nil {
			return nil, err
		}
		return next(ctx, req)
	}
}

// AuthStream is the streaming counterpart of AuthUnary.
func AuthStream(v auth.Verifier, log *zap.Logger) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, next grpc.StreamHandler) error {
		if isPublic(info.FullMethod) {
			return next(srv, ss)
		}
		ctx, err := authenticate(ss.Context(), v, log, info.FullMethod)
		if err != nil {
			return err
		}
		return next(srv, &authedStream{ServerStream: ss, ctx: ctx})
	}
}

// authedStream overrides the context of a server stream.
type authedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *authedStream) Context() context.Context { return s.ctx }

func authenticate(ctx context.Context, v auth.Verifier, log *zap.Logger, method string) (context.Context, error) {
	tok, err := bearerTokenFromMD(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	id, err := v.Verify(ctx, tok)
	if auth.IsUnavailable(err) {
		log.Warn("token not verified", zap.String("method", method), zap.Error(err))
		return nil, status.Error(codes.Unavailable, "identity provider unavailable")
	}
	if err != nil {
		log.Debug("token rejected", zap.String("method", method), zap.Error(err))
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}
	return auth.WithIdentity(ctx, id), nil
}

func bearerTokenFromMD(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", errors.New("no metadata")
	}
	return auth.BearerToken(md.Get("authorization")...)
}
