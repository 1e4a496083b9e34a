package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	portmocks "github.com/bnema/airella-bridge/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
stations = ["S1", " S2 ", "S1"]
interval = "90s"

[airella]
url = "https://api.airella.example/v1"
email = "bridge@example.com"
password_ref = "airella/password"
timeout = "20s"

[agh]
url = "https://agh.example/api/data"
token = "agh-secret"

[log]
level = "DEBUG"
format = "json"
`

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadReadsFileOverDefaults(t *testing.T) {
	cfg, err := Load(New(), writeFile(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, []string{"S1", "S2"}, cfg.Stations)
	assert.Equal(t, 90*time.Second, cfg.Interval)
	assert.Equal(t, "https://api.airella.example/v1", cfg.Airella.URL)
	assert.Equal(t, "airella/password", cfg.Airella.PasswordRef)
	assert.Equal(t, 20*time.Second, cfg.Airella.Timeout)
	assert.Equal(t, "agh-secret", cfg.AGH.Token)
	assert.Equal(t, DefaultLabel, cfg.AGH.Label)
	assert.Equal(t, DefaultAGHTimeout, cfg.AGH.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Empty(t, cfg.Metrics.Addr)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	t.Setenv("AIRELLA_BRIDGE_STATIONS", "S7,S8")
	t.Setenv("AIRELLA_BRIDGE_AGH_TOKEN", "from-env")
	t.Setenv("AIRELLA_BRIDGE_INTERVAL", "1m")

	cfg, err := Load(New(), writeFile(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, []string{"S7", "S8"}, cfg.Stations)
	assert.Equal(t, "from-env", cfg.AGH.Token)
	assert.Equal(t, time.Minute, cfg.Interval)
}

func TestLoadExplicitOverrideWins(t *testing.T) {
	v := New()
	v.Set(KeyAirellaEmail, "flag@example.com")

	cfg, err := Load(v, writeFile(t, sampleConfig))
	require.NoError(t, err)
	assert.Equal(t, "flag@example.com", cfg.Airella.Email)
}

func TestLoadMissingDefaultFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Empty(t, cfg.Stations)
	assert.Equal(t, DefaultInterval, cfg.Interval)
	assert.Equal(t, DefaultAirellaTimeout, cfg.Airella.Timeout)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "read config file")
}

func validConfig() Config {
	cfg := Default()
	cfg.Airella.URL = "https://api.airella.example"
	cfg.Airella.Email = "bridge@example.com"
	cfg.Airella.Password = "hunter2"
	cfg.AGH.URL = "https://agh.example/api/data"
	cfg.AGH.Token = "agh-secret"
	return cfg
}

func TestValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing source url", mutate: func(c *Config) { c.Airella.URL = "" }, wantErr: "airella.url is required"},
		{name: "bad scheme", mutate: func(c *Config) { c.AGH.URL = "ftp://agh.example" }, wantErr: "agh.url must use http or https"},
		{name: "missing host", mutate: func(c *Config) { c.Airella.URL = "https://" }, wantErr: "airella.url host is required"},
		{name: "missing email", mutate: func(c *Config) { c.Airella.Email = "" }, wantErr: "airella.email is required"},
		{name: "missing password", mutate: func(c *Config) { c.Airella.Password = "" }, wantErr: "airella.password"},
		{name: "missing token", mutate: func(c *Config) { c.AGH.Token = "" }, wantErr: "agh.token"},
		{name: "zero interval", mutate: func(c *Config) { c.Interval = 0 }, wantErr: "interval must be positive"},
		{name: "bad level", mutate: func(c *Config) { c.Log.Level = "trace" }, wantErr: "log.level"},
		{name: "bad format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: "log.format"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalid)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestValidateSourceIgnoresDestination(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.AGH = AGHConfig{}

	require.NoError(t, cfg.ValidateSource())
	require.Error(t, cfg.Validate())
}

func TestResolveSecretsUsesReferences(t *testing.T) {
	t.Parallel()

	store := portmocks.NewMockSecretStore(t)
	store.EXPECT().Get(mock.Anything, "airella/password").Return("from-pass", nil).Once()

	cfg := validConfig()
	cfg.Airella.Password = ""
	cfg.Airella.PasswordRef = "airella/password"
	cfg.AGH.TokenRef = "agh/token"
	require.True(t, cfg.NeedsSecrets())

	require.NoError(t, cfg.ResolveSecrets(context.Background(), store))
	assert.Equal(t, "from-pass", cfg.Airella.Password)
	assert.Equal(t, "agh-secret", cfg.AGH.Token, "direct value wins over reference")
	assert.False(t, cfg.NeedsSecrets())
}

func TestResolveSecretsReportsFailingKey(t *testing.T) {
	t.Parallel()

	store := portmocks.NewMockSecretStore(t)
	store.EXPECT().Get(mock.Anything, "agh/token").Return("", errors.New("not found")).Once()

	cfg := validConfig()
	cfg.AGH.Token = ""
	cfg.AGH.TokenRef = "agh/token"

	err := cfg.ResolveSecrets(context.Background(), store)
	assert.ErrorContains(t, err, "agh.token_ref")
}

func TestWriteThenLoadKeepsSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := validConfig()
	cfg.Stations = []string{"S1", "S2"}
	cfg.Interval = 2 * time.Minute
	cfg.Metrics.Addr = "127.0.0.1:9464"

	require.NoError(t, Write(path, cfg, false))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(configFileMode), info.Mode().Perm())

	loaded, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	err = Write(path, cfg, false)
	require.ErrorIs(t, err, ErrConfigExists)
	require.NoError(t, Write(path, Default(), true))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestRenderRedactsSecrets(t *testing.T) {
	t.Parallel()

	out, err := Render(validConfig())
	require.NoError(t, err)

	assert.NotContains(t, out, "hunter2")
	assert.NotContains(t, out, "agh-secret")
	assert.Contains(t, out, redacted)
	assert.Contains(t, out, "bridge@example.com")
	assert.Contains(t, out, "5m0s")
}

func TestDecodeMatchesDefaultWithoutOverrides(t *testing.T) {
	cfg, err := Decode(New())
	require.NoError(t, err)
	assert.Equal(t, Default().Interval, cfg.Interval)
	assert.Equal(t, Default().AGH, cfg.AGH)
	assert.Equal(t, Default().Log, cfg.Log)
}
