package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/airella-bridge/internal/domain"
	"github.com/bnema/airella-bridge/internal/ports"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "AIRELLA_BRIDGE"

	configDir  = "airella-bridge"
	configName = "config"
	configType = "toml"

	KeyStations        = "stations"
	KeyInterval        = "interval"
	KeyAirellaURL      = "airella.url"
	KeyAirellaEmail    = "airella.email"
	KeyAirellaPassword = "airella.password"
	KeyAirellaPassRef  = "airella.password_ref"
	KeyAirellaTimeout  = "airella.timeout"
	KeyAGHURL          = "agh.url"
	KeyAGHToken        = "agh.token"
	KeyAGHTokenRef     = "agh.token_ref"
	KeyAGHLabel        = "agh.label"
	KeyAGHTimeout      = "agh.timeout"
	KeyLogLevel        = "log.level"
	KeyLogFormat       = "log.format"
	KeyMetricsAddr     = "metrics.addr"
)

const (
	DefaultInterval       = 5 * time.Minute
	DefaultAirellaTimeout = 30 * time.Second
	DefaultAGHTimeout     = 10 * time.Second
	DefaultLabel          = "Airella Quality Sensor"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Stations []string      `mapstructure:"stations"`
	Interval time.Duration `mapstructure:"interval"`
	Airella  AirellaConfig `mapstructure:"airella"`
	AGH      AGHConfig     `mapstructure:"agh"`
	Log      LogConfig     `mapstructure:"log"`
	Metrics  MetricsConfig `mapstructure:"metrics"`
}

type AirellaConfig struct {
	URL         string        `mapstructure:"url"`
	Email       string        `mapstructure:"email"`
	Password    string        `mapstructure:"password"`
	PasswordRef string        `mapstructure:"password_ref"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

type AGHConfig struct {
	URL      string        `mapstructure:"url"`
	Token    string        `mapstructure:"token"`
	TokenRef string        `mapstructure:"token_ref"`
	Label    string        `mapstructure:"label"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type MetricsConfig struct {
	// Addr enables the status server when set, e.g. "127.0.0.1:9464".
	Addr string `mapstructure:"addr"`
}

// New returns a viper instance with defaults and environment lookup set up.
// Flags are bound by the caller before Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyStations, []string{})
	v.SetDefault(KeyInterval, DefaultInterval)

	v.SetDefault(KeyAirellaURL, "")
	v.SetDefault(KeyAirellaEmail, "")
	v.SetDefault(KeyAirellaPassword, "")
	v.SetDefault(KeyAirellaPassRef, "")
	v.SetDefault(KeyAirellaTimeout, DefaultAirellaTimeout)

	v.SetDefault(KeyAGHURL, "")
	v.SetDefault(KeyAGHToken, "")
	v.SetDefault(KeyAGHTokenRef, "")
	v.SetDefault(KeyAGHLabel, DefaultLabel)
	v.SetDefault(KeyAGHTimeout, DefaultAGHTimeout)

	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFormat, DefaultLogFormat)
	v.SetDefault(KeyMetricsAddr, "")
}

// DefaultPath is $HOME/.config/airella-bridge/config.toml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", configDir, configName+"."+configType), nil
}

// Load reads the config file at path, or the default location when path is
// empty. A missing default file is not an error; a missing explicit one is.
func Load(v *viper.Viper, path string) (Config, error) {
	if v == nil {
		v = New()
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType(configType)
	} else {
		defaultPath, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(filepath.Dir(defaultPath))
	}

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	return Decode(v)
}

// Decode builds a Config from v without reading any file.
func Decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.normalize()

	return cfg, nil
}

// Default is the configuration written by "config init".
func Default() Config {
	return Config{
		Interval: DefaultInterval,
		Airella:  AirellaConfig{Timeout: DefaultAirellaTimeout},
		AGH:      AGHConfig{Label: DefaultLabel, Timeout: DefaultAGHTimeout},
		Log:      LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
	}
}

func (c *Config) normalize() {
	stations := make([]string, 0, len(c.Stations))
	for _, id := range domain.ParseStationIDs(c.Stations...) {
		stations = append(stations, string(id))
	}
	c.Stations = stations

	c.Airella.URL = strings.TrimSpace(c.Airella.URL)
	c.Airella.Email = strings.TrimSpace(c.Airella.Email)
	c.AGH.URL = strings.TrimSpace(c.AGH.URL)
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	if c.AGH.Label == "" {
		c.AGH.Label = DefaultLabel
	}
}

func (c Config) StationIDs() []domain.StationID {
	return domain.ParseStationIDs(c.Stations...)
}

func (c Config) Credentials() domain.Credentials {
	return domain.Credentials{Email: c.Airella.Email, Password: c.Airella.Password}
}

// ResolveSecrets fills the password and token from their references when they
// are not set directly.
func (c *Config) ResolveSecrets(ctx context.Context, store ports.SecretStore) error {
	if c.Airella.Password == "" && c.Airella.PasswordRef != "" {
		value, err := store.Get(ctx, c.Airella.PasswordRef)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", KeyAirellaPassRef, err)
		}
		c.Airella.Password = value
	}

	if c.AGH.Token == "" && c.AGH.TokenRef != "" {
		value, err := store.Get(ctx, c.AGH.TokenRef)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", KeyAGHTokenRef, err)
		}
		c.AGH.Token = value
	}

	return nil
}

// NeedsSecrets reports whether any credential must be looked up by reference.
func (c Config) NeedsSecrets() bool {
	return (c.Airella.Password == "" && c.Airella.PasswordRef != "") ||
		(c.AGH.Token == "" && c.AGH.TokenRef != "")
}

// ValidateSource checks what is needed to talk to the source API only.
func (c Config) ValidateSource() error {
	if err := validateURL(KeyAirellaURL, c.Airella.URL); err != nil {
		return err
	}
	if c.Airella.Email == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalid, KeyAirellaEmail)
	}
	if c.Airella.Password == "" {
		return fmt.Errorf("%w: %s or %s is required", ErrInvalid, KeyAirellaPassword, KeyAirellaPassRef)
	}
	if c.Airella.Timeout <= 0 {
		return fmt.Errorf("%w: %s must be positive", ErrInvalid, KeyAirellaTimeout)
	}
	return c.validateLog()
}

// Validate checks everything a bridge run needs.
func (c Config) Validate() error {
	if err := c.ValidateSource(); err != nil {
		return err
	}
	if err := validateURL(KeyAGHURL, c.AGH.URL); err != nil {
		return err
	}
	if c.AGH.Token == "" {
		return fmt.Errorf("%w: %s or %s is required", ErrInvalid, KeyAGHToken, KeyAGHTokenRef)
	}
	if c.AGH.Timeout <= 0 {
		return fmt.Errorf("%w: %s must be positive", ErrInvalid, KeyAGHTimeout)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("%w: %s must be positive", ErrInvalid, KeyInterval)
	}
	return nil
}

func (c Config) validateLog() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %s %q is not one of debug, info, warn, error", ErrInvalid, KeyLogLevel, c.Log.Level)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %s %q is not one of text, json", ErrInvalid, KeyLogFormat, c.Log.Format)
	}
	return nil
}

func validateURL(key, raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalid, key)
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalid, key, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%w: %s must use http or https", ErrInvalid, key)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%w: %s host is required", ErrInvalid, key)
	}
	return nil
}
