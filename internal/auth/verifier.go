// Package auth verifies bearer access tokens issued by the identity provider.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sony/gobreaker"

	"github.com/and161185/moment-keeper/internal/errs"
	"github.com/and161185/moment-keeper/internal/model"
)

// DefaultAudience is the audience GoTrue puts into user access tokens.
const DefaultAudience = "authenticated"

// Verifier turns an access token into the identity it was issued for.
// Rejected tokens wrap errs.ErrUnauthorized. A verifier that cannot reach
// its provider returns errs.ErrUnavailable or the context error instead.
type Verifier interface {
	Verify(ctx context.Context, token string) (model.Identity, error)
}

// claims is the payload of a provider access token.
type claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// JWTVerifier checks HS256 tokens against the project JWT secret.
type JWTVerifier struct {
	secret   []byte
	audience string
	leeway   time.Duration
}

// NewJWTVerifier returns a verifier for tokens signed with secret.
// An empty audience disables the audience check.
func NewJWTVerifier(secret []byte, audience string) *JWTVerifier {
	return &JWTVerifier{secret: secret, audience: audience, leeway: 30 * time.Second}
}

// Verify implements Verifier.
func (v *JWTVerifier) Verify(_ context.Context, token string) (model.Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(v.leeway),
		jwt.WithExpirationRequired(),
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil || !parsed.Valid {
		return model.Identity{}, fmt.Errorf("%w: invalid token", errs.ErrUnauthorized)
	}

	id, err := uuid.FromString(c.Subject)
	if err != nil || id == uuid.Nil {
		return model.Identity{}, fmt.Errorf("%w: bad subject", errs.ErrUnauthorized)
	}
	return model.Identity{ID: id, Email: c.Email}, nil
}

// UserLookup resolves an access token at the provider. Refused tokens
// wrap errs.ErrUnauthorized; any other error is a provider failure.
type UserLookup interface {
	User(accessToken string) (model.Identity, error)
}

// RemoteVerifier asks the provider who a token belongs to. It is used when
// the server is not given the project JWT secret. Lookups go through a
// circuit breaker; refused tokens do not count as breaker failures.
type RemoteVerifier struct {
	users UserLookup
	cb    *gobreaker.CircuitBreaker
}

// NewRemoteVerifier returns a verifier backed by users and a breaker built from st.
func NewRemoteVerifier(users UserLookup, st gobreaker.Settings) *RemoteVerifier {
	st.IsSuccessful = func(err error) bool {
		return err == nil || errors.Is(err, errs.ErrUnauthorized)
	}
	return &RemoteVerifier{users: users, cb: gobreaker.NewCircuitBreaker(st)}
}

type lookupResult struct {
	id  model.Identity
	err error
}

// Verify implements Verifier. It returns ctx.Err() once ctx ends, even if
// the lookup is still in flight.
func (v *RemoteVerifier) Verify(ctx context.Context, token string) (model.Identity, error) {
	if err := ctx.Err(); err != nil {
		return model.Identity{}, err
	}
	done := make(chan lookupResult, 1)
	go func() {
		out, err := v.cb.Execute(func() (any, error) {
			return v.users.User(token)
		})
		id, _ := out.(model.Identity)
		done <- lookupResult{id: id, err: err}
	}()

	var r lookupResult
	select {
	case <-ctx.Done():
		return model.Identity{}, ctx.Err()
	case r = <-done:
	}

	switch {
	case errors.Is(r.err, errs.ErrUnauthorized):
		return model.Identity{}, r.err
	case r.err != nil:
		// Includes gobreaker.ErrOpenState and ErrTooManyRequests.
		return model.Identity{}, fmt.Errorf("%w: identity provider: %w", errs.ErrUnavailable, r.err)
	case r.id.ID == uuid.Nil:
		return model.Identity{}, fmt.Errorf("%w: provider returned no user", errs.ErrUnauthorized)
	}
	return r.id, nil
}

// ErrNoBearer reports a missing or malformed Authorization value.
var ErrNoBearer = fmt.Errorf("%w: no bearer token", errs.ErrUnauthorized)

// BearerToken extracts the token from "Bearer <token>", case-insensitively.
func BearerToken(values ...string) (string, error) {
	for _, v := range values {
		v = strings.TrimSpace(v)
		if len(v) >= 7 && strings.EqualFold(v[:7], "bearer ") {
			if t := strings.TrimSpace(v[7:]); t != "" {
				return t, nil
			}
		}
	}
	return "", ErrNoBearer
}

// IsUnauthorized reports whether err is an authentication failure.
func IsUnauthorized(err error) bool { return errors.Is(err, errs.ErrUnauthorized) }

// IsUnavailable reports whether err means the token could not be checked right now.
func IsUnavailable(err error) bool { return errors.Is(err, errs.ErrUnavailable) }
