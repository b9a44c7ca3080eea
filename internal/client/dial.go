// Package client gives the CLI one view of the moment journal, either through
// the gRPC server or through a local SQLite profile.
package client

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"os"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

// TokenSource returns the access token to attach to the next call.
type TokenSource func(ctx context.Context) (string, error)

type bearerCreds struct {
	token  TokenSource
	secure bool
}

func (b bearerCreds) GetRequestMetadata(ctx context.Context, _ ...string) (map[string]string, error) {
	tok, err := b.token(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]string{"authorization": "Bearer " + tok}, nil
}

func (b bearerCreds) RequireTransportSecurity() bool { return b.secure }

// DialOptions selects the transport security of Dial.
type DialOptions struct {
	Addr      string
	CAFile    string
	Insecure  bool // TLS without certificate verification (dev)
	Plaintext bool // no TLS at all (tests, local dev)
}

func loadTLS(caPath string, skipVerify bool) (credentials.TransportCredentials, error) {
	if skipVerify {
		return credentials.NewTLS(&tls.Config{InsecureSkipVerify: true}), nil
	}
	if caPath == "" {
		return credentials.NewClientTLSFromCert(nil, ""), nil
	}
	pem, err := os.ReadFile(caPath)
	if err != nil {
		return nil, err
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, errors.New("bad CA cert")
	}
	return credentials.NewTLS(&tls.Config{RootCAs: pool}), nil
}

// Dial connects to the server. When token is not nil every call carries its bearer token.
func Dial(ctx context.Context, o DialOptions, token TokenSource, extra ...grpc.DialOption) (*grpc.ClientConn, error) {
	var creds credentials.TransportCredentials
	if o.Plaintext {
		creds = insecure.NewCredentials()
	} else {
		c, err := loadTLS(o.CAFile, o.Insecure)
		if err != nil {
			return nil, err
		}
		creds = c
	}
	opts := []grpc.DialOption{grpc.WithTransportCredentials(creds)}
	if token != nil {
		opts = append(opts, grpc.WithPerRPCCredentials(bearerCreds{token: token, secure: !o.Plaintext}))
	}
	opts = append(opts, extra...)
	//nolint:staticcheck // DialContext is supported through 1.x; migrate when grpc.NewClient is stable
	return grpc.DialContext(ctx, o.Addr, opts...)
}
