// Package config loads postview settings: defaults, then the YAML file,
// then POSTVIEW_* environment variables. Flags are applied by the caller.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/postview/internal/source"
)

const (
	appName        = "postview"
	configFileName = "config.yaml"
	logFileName    = "postview.log"

	DefaultURL      = source.DefaultURL
	DefaultTimeout  = 10 * time.Second
	DefaultPageSize = 10
)

// Config holds all settings.
type Config struct {
	Source   SourceConfig `yaml:"source"`
	PageSize int          `yaml:"page_size" env:"POSTVIEW_PAGE_SIZE"`
	Theme    string       `yaml:"theme" env:"POSTVIEW_THEME"`
	LogFile  string       `yaml:"log_file" env:"POSTVIEW_LOG_FILE"`
	Verbose  bool         `yaml:"verbose" env:"POSTVIEW_VERBOSE"`
}

// SourceConfig selects where records come from. File wins over URL.
type SourceConfig struct {
	URL     string        `yaml:"url" env:"POSTVIEW_SOURCE_URL"`
	File    string        `yaml:"file" env:"POSTVIEW_SOURCE_FILE"`
	Timeout time.Duration `yaml:"timeout" env:"POSTVIEW_TIMEOUT"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			URL:     DefaultURL,
			Timeout: DefaultTimeout,
		},
		PageSize: DefaultPageSize,
		Theme:    "classic",
		LogFile:  defaultLogFile(),
	}
}

// DefaultPath is $XDG_CONFIG_HOME/postview/config.yaml (or the platform
// equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(dir, appName, configFileName), nil
}

// Load reads path (DefaultPath when empty). A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	cfg.fillDefaults()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c *Config) fillDefaults() {
	if c.Source.URL == "" {
		c.Source.URL = DefaultURL
	}
	if c.Theme == "" {
		c.Theme = "classic"
	}
	if c.LogFile == "" {
		c.LogFile = defaultLogFile()
	}
}

// Validate checks the settings a run depends on.
func (c *Config) Validate() error {
	if c.PageSize <= 0 {
		return fmt.Errorf("page_size must be positive, got %d", c.PageSize)
	}
	if c.Source.Timeout < 0 {
		return fmt.Errorf("source.timeout must not be negative, got %s", c.Source.Timeout)
	}
	if c.Source.File == "" {
		u, err := url.Parse(c.Source.URL)
		if err != nil {
			return fmt.Errorf("source.url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("source.url: unsupported scheme %q", u.Scheme)
		}
	}
	switch c.Theme {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("theme: unknown %q (want classic, neon or mono)", c.Theme)
	}
	return nil
}

// YAML renders the effective configuration.
func (c *Config) YAML() (string, error) {
	b, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("yaml marshal: %w", err)
	}
	return string(b), nil
}

func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), logFileName)
	}
	return filepath.Join(dir, appName, logFileName)
}
