package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	aghadapter "github.com/bnema/airella-bridge/internal/adapters/agh"
	airellaadapter "github.com/bnema/airella-bridge/internal/adapters/airella"
	metricsadapter "github.com/bnema/airella-bridge/internal/adapters/metrics"
	chainstore "github.com/bnema/airella-bridge/internal/adapters/secrets/chain"
	"github.com/bnema/airella-bridge/internal/application"
	"github.com/bnema/airella-bridge/internal/config"
	"github.com/bnema/airella-bridge/internal/ports"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagKeys maps command line flags to config keys.
var flagKeys = map[string]string{
	"stations":        config.KeyStations,
	"email":           config.KeyAirellaEmail,
	"password":        config.KeyAirellaPassword,
	"airella-api-url": config.KeyAirellaURL,
	"agh-api-url":     config.KeyAGHURL,
	"agh-api-token":   config.KeyAGHToken,
	"interval":        config.KeyInterval,
	"log-level":       config.KeyLogLevel,
	"log-format":      config.KeyLogFormat,
	"metrics-addr":    config.KeyMetricsAddr,
}

type settings struct {
	v              *viper.Viper
	configPath     string
	newSecretStore func() (ports.SecretStore, error)
}

type app struct {
	logger   *slog.Logger
	recorder *metricsadapter.Recorder
	bridge   *application.Bridge
}

func newSettings() *settings {
	return &settings{v: config.New(), newSecretStore: defaultSecretStore}
}

func (s *settings) bindFlags(flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		if err := s.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag --%s: %w", name, err)
		}
	}
	return nil
}

// load reads the effective configuration and resolves secret references.
func (s *settings) load(ctx context.Context) (config.Config, error) {
	cfg, err := config.Load(s.v, s.configPath)
	if err != nil {
		return config.Config{}, err
	}

	if cfg.NeedsSecrets() {
		store, err := s.newSecretStore()
		if err != nil {
			return config.Config{}, fmt.Errorf("wire secret store chain: %w", err)
		}
		if err := cfg.ResolveSecrets(ctx, store); err != nil {
			return config.Config{}, err
		}
	}

	return cfg, nil
}

func (s *settings) path() (string, error) {
	if s.configPath != "" {
		return s.configPath, nil
	}
	return config.DefaultPath()
}

func defaultSecretStore() (ports.SecretStore, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	return chainstore.NewPassFirstWithFileFallback(filepath.Join(homeDir, ".config", "airella-bridge", "secrets"))
}

func wireApp(cfg config.Config, logOut io.Writer) *app {
	logger := newLogger(cfg.Log, logOut)
	recorder := metricsadapter.NewRecorder()
	httpClient := &http.Client{}

	source := airellaadapter.Client{
		BaseURL:        cfg.Airella.URL,
		HTTPClient:     httpClient,
		RequestTimeout: cfg.Airella.Timeout,
	}
	sink := aghadapter.Client{
		URL:        cfg.AGH.URL,
		Token:      cfg.AGH.Token,
		HTTPClient: httpClient,
		Timeout:    cfg.AGH.Timeout,
	}

	bridge := application.NewBridge(source, sink, cfg.Credentials(), application.Options{
		Stations: cfg.StationIDs(),
		Interval: cfg.Interval,
		Label:    cfg.AGH.Label,
		Recorder: recorder,
		Logger:   logger,
	})

	return &app{logger: logger, recorder: recorder, bridge: bridge}
}

func newLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
