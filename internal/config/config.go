// Package config loads the lightcal CLI configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lightcal/lightcal/client"
)

// EnvPrefix is prepended to every variable name, e.g. LIGHTCAL_PROFILER_URL.
const EnvPrefix = "LIGHTCAL"

// Config holds the CLI configuration.
type Config struct {
	// Base URLs of the two profiling tools. Both default to the port the tools listen on.
	ProfilerURL string `envconfig:"PROFILER_URL" default:"http://localhost:8081"`
	WizURL      string `envconfig:"WIZ_URL" default:"http://localhost:8081"`

	// HTTPTimeout bounds each request at the http.Client level; 0 means none.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"0s"`
	// CallTimeout bounds how long a CLI command waits for its call.
	CallTimeout time.Duration `envconfig:"CALL_TIMEOUT" default:"15s"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"` // console | json
	Debug     bool   `envconfig:"DEBUG" default:"false"`
}

// New loads an optional .env file from the working directory, then parses
// LIGHTCAL_* environment variables.
func New() (*Config, error) {
	if err := LoadEnvFile(".env"); err != nil {
		return nil, err
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("profiler_url", cfg.ProfilerURL).
		Str("wiz_url", cfg.WizURL).
		Dur("http_timeout", cfg.HTTPTimeout).
		Dur("call_timeout", cfg.CallTimeout).
		Str("log_level", cfg.LogLevel).
		Bool("debug", cfg.Debug).
		Msg("Configuration loaded")

	return &cfg, nil
}

// LoadEnvFile loads variables from path without overriding ones already set.
// A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// NewForTesting returns the defaults without reading the environment.
func NewForTesting() *Config {
	return &Config{
		ProfilerURL: "http://localhost:8081",
		WizURL:      "http://localhost:8081",
		CallTimeout: 15 * time.Second,
		LogLevel:    "info",
		LogFormat:   "console",
	}
}

// Validate checks URLs, timeouts and log settings.
func (c *Config) Validate() error {
	for name, raw := range map[string]string{"PROFILER_URL": c.ProfilerURL, "WIZ_URL": c.WizURL} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid %s: %q", name, raw)
		}
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("HTTP_TIMEOUT must not be negative")
	}
	if c.CallTimeout <= 0 {
		return fmt.Errorf("CALL_TIMEOUT must be > 0")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("unsupported LOG_FORMAT: %s", c.LogFormat)
	}
	return nil
}

// Level parses LogLevel. Debug forces debug level.
func (c *Config) Level() (zerolog.Level, error) {
	if c.Debug {
		return zerolog.DebugLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("unsupported LOG_LEVEL: %s", c.LogLevel)
	}
	return lvl, nil
}

// ClientOptions translates the configuration into client options.
func (c *Config) ClientOptions() []client.Option {
	var opts []client.Option
	if c.HTTPTimeout > 0 {
		opts = append(opts, client.WithHTTPTimeout(c.HTTPTimeout))
	}
	if c.Debug {
		opts = append(opts, client.WithDebugLogging(true))
	}
	return opts
}
