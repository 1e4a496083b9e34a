package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	configDirMode   = 0o700
	configFileMode  = 0o600
	tempFilePattern = ".config-*.toml.tmp"
	redacted        = "<redacted>"
)

var ErrConfigExists = errors.New("config file already exists")

type fileSchema struct {
	Stations []string          `toml:"stations"`
	Interval string            `toml:"interval"`
	Airella  airellaFileSchema `toml:"airella"`
	AGH      aghFileSchema     `toml:"agh"`
	Log      logFileSchema     `toml:"log"`
	Metrics  metricsFileSchema `toml:"metrics"`
}

type airellaFileSchema struct {
	URL         string `toml:"url"`
	Email       string `toml:"email"`
	Password    string `toml:"password,omitempty"`
	PasswordRef string `toml:"password_ref"`
	Timeout     string `toml:"timeout"`
}

type aghFileSchema struct {
	URL      string `toml:"url"`
	Token    string `toml:"token,omitempty"`
	TokenRef string `toml:"token_ref"`
	Label    string `toml:"label"`
	Timeout  string `toml:"timeout"`
}

type logFileSchema struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type metricsFileSchema struct {
	Addr string `toml:"addr"`
}

func toFileSchema(cfg Config) fileSchema {
	stations := cfg.Stations
	if stations == nil {
		stations = []string{}
	}

	return fileSchema{
		Stations: stations,
		Interval: cfg.Interval.String(),
		Airella: airellaFileSchema{
			URL:         cfg.Airella.URL,
			Email:       cfg.Airella.Email,
			Password:    cfg.Airella.Password,
			PasswordRef: cfg.Airella.PasswordRef,
			Timeout:     cfg.Airella.Timeout.String(),
		},
		AGH: aghFileSchema{
			URL:      cfg.AGH.URL,
			Token:    cfg.AGH.Token,
			TokenRef: cfg.AGH.TokenRef,
			Label:    cfg.AGH.Label,
			Timeout:  cfg.AGH.Timeout.String(),
		},
		Log:     logFileSchema{Level: cfg.Log.Level, Format: cfg.Log.Format},
		Metrics: metricsFileSchema{Addr: cfg.Metrics.Addr},
	}
}

// Render encodes cfg as TOML with the password and token masked.
func Render(cfg Config) (string, error) {
	file := toFileSchema(cfg)
	if file.Airella.Password != "" {
		file.Airella.Password = redacted
	}
	if file.AGH.Token != "" {
		file.AGH.Token = redacted
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return string(data), nil
}

// Write stores cfg at path through a temp file and rename. An existing file
// is only replaced when overwrite is set.
func Write(path string, cfg Config, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat config file: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), configDirMode); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	data, err := toml.Marshal(toFileSchema(cfg))
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := tempFile.Chmod(configFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace file: %w", err)
	}

	cleanup = false
	return nil
}
