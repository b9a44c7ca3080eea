package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadServer_MissingFileMeansDefaults(t *testing.T) {
	t.Setenv("MK_JWT_SECRET", "")
	t.Setenv("MK_DSN", "")
	t.Setenv("MK_CORS_ORIGINS", "")

	c, err := LoadServer(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, ":8443", c.GRPCAddr)
	require.Equal(t, ":8080", c.HTTPAddr)
	require.Equal(t, "authenticated", c.JWTAudience)
	require.Equal(t, 5*time.Second, c.ShutdownTimeout)
	require.Error(t, c.Validate())
}

func TestLoadServer_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
grpc_addr: ":9443"
dsn: postgres://file
jwt_secret: from-file
cors_origins: [http://a.example]
shutdown_timeout: 2s
`), 0o600))
	t.Setenv("MK_JWT_SECRET", "from-env")
	t.Setenv("MK_DSN", "")
	t.Setenv("MK_CORS_ORIGINS", "http://b.example, http://c.example")

	c, err := LoadServer(path)
	require.NoError(t, err)
	require.Equal(t, ":9443", c.GRPCAddr)
	require.Equal(t, "postgres://file", c.DSN)
	require.Equal(t, "from-env", c.JWTSecret)
	require.Equal(t, []string{"http://b.example", "http://c.example"}, c.CORSOrigins)
	require.Equal(t, 2*time.Second, c.ShutdownTimeout)
	require.NoError(t, c.Validate())

	c.TLSCert = "cert.pem"
	require.Error(t, c.Validate())
}

func TestLoadServer_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grpc_addr: [unterminated"), 0o600))
	_, err := LoadServer(path)
	require.Error(t, err)
}

func TestLoadClient_DefaultsFollowConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("MK_SERVER", "")
	t.Setenv("MK_LOCAL", "true")

	c, err := LoadClient("")
	require.NoError(t, err)
	want := filepath.Join(dir, "momentkeeper")
	require.Equal(t, want, c.Dir)
	require.Equal(t, filepath.Join(want, "local.db"), c.LocalDB)
	require.Equal(t, "localhost:8443", c.Server)
	require.Equal(t, "google", c.Provider)
	require.True(t, c.Local)
}

func TestLoadClient_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mk.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: keeper.example:443\nprovider: github\n"), 0o600))
	t.Setenv("MK_SERVER", "")
	t.Setenv("MK_LOCAL", "")

	c, err := LoadClient(path)
	require.NoError(t, err)
	require.Equal(t, "keeper.example:443", c.Server)
	require.Equal(t, "github", c.Provider)
	require.Equal(t, dir, c.Dir)
	require.False(t, c.Local)
}
