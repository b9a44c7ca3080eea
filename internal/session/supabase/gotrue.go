// Package supabase implements the session provider over Supabase GoTrue.
package supabase

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"
	supa "github.com/supabase-community/supabase-go"

	"github.com/and161185/moment-keeper/internal/errs"
	"github.com/and161185/moment-keeper/internal/model"
)

// AuthAPI is the subset of GoTrue used by this package.
type AuthAPI interface {
	// Authorize returns the provider consent URL and the PKCE verifier for it.
	Authorize(provider, redirectTo string) (authURL, verifier string, err error)
	ExchangeCode(code, verifier string) (model.Session, error)
	Refresh(refreshToken string) (model.Session, error)
	// User resolves an access token. Tokens the provider refuses yield
	// errors wrapping errs.ErrUnauthorized.
	User(accessToken string) (model.Identity, error)
	Logout(accessToken string) error
}

type gotrueAPI struct {
	c gotrue.Client
}

// NewAPI connects to the Supabase project at projectURL using its anon key.
func NewAPI(projectURL, anonKey string) (AuthAPI, error) {
	client, err := supa.NewClient(projectURL, anonKey, nil)
	if err != nil {
		return nil, fmt.Errorf("supabase client: %w", err)
	}
	return &gotrueAPI{c: client.Auth}, nil
}

func (a *gotrueAPI) Authorize(provider, redirectTo string) (string, string, error) {
	resp, err := a.c.Authorize(types.AuthorizeRequest{
		Provider: types.Provider(provider),
		FlowType: types.FlowPKCE,
	})
	if err != nil {
		return "", "", err
	}
	authURL := resp.AuthorizationURL
	if redirectTo != "" {
		u, err := url.Parse(authURL)
		if err != nil {
			return "", "", fmt.Errorf("authorization url: %w", err)
		}
		q := u.Query()
		q.Set("redirect_to", redirectTo)
		u.RawQuery = q.Encode()
		authURL = u.String()
	}
	return authURL, resp.Verifier, nil
}

func (a *gotrueAPI) ExchangeCode(code, verifier string) (model.Session, error) {
	resp, err := a.c.Token(types.TokenRequest{
		GrantType:    "pkce",
		Code:         code,
		CodeVerifier: verifier,
	})
	if err != nil {
		return model.Session{}, err
	}
	return sessionOf(resp.Session), nil
}

func (a *gotrueAPI) Refresh(refreshToken string) (model.Session, error) {
	resp, err := a.c.RefreshToken(refreshToken)
	if err != nil {
		return model.Session{}, err
	}
	return sessionOf(resp.Session), nil
}

func (a *gotrueAPI) User(accessToken string) (model.Identity, error) {
	resp, err := a.c.WithToken(accessToken).GetUser()
	if err != nil {
		if refused(err) {
			return model.Identity{}, fmt.Errorf("%w: %v", errs.ErrUnauthorized, err)
		}
		return model.Identity{}, err
	}
	return identityOf(resp.User), nil
}

// refused reports a 4xx answer; gotrue-go only exposes it in the message.
func refused(err error) bool {
	return strings.HasPrefix(err.Error(), "response status code 4")
}

func (a *gotrueAPI) Logout(accessToken string) error {
	return a.c.WithToken(accessToken).Logout()
}

func sessionOf(s types.Session) model.Session {
	return model.Session{
		User:         identityOf(s.User),
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		ExpiresAt:    time.Unix(s.ExpiresAt, 0).UTC(),
	}
}

func identityOf(u types.User) model.Identity {
	return model.Identity{ID: uuid.UUID(u.ID), Email: u.Email}
}
