package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the workspace client.
type Config struct {
	Endpoints EndpointsConfig
	HTTP      HTTPConfig
	Log       LogConfig
	Trace     TraceConfig
}

// EndpointsConfig holds the two remote service addresses.
type EndpointsConfig struct {
	RandomProblemURL    string
	GenerateFeedbackURL string
}

// HTTPConfig holds request behaviour.
type HTTPConfig struct {
	// RequestTimeout bounds a single request; zero means no timeout.
	RequestTimeout time.Duration
	// ShutdownGrace is how long the program waits for an in-flight
	// submission after the UI exits.
	ShutdownGrace time.Duration
}

// LogConfig holds logging configuration.
type LogConfig struct {
	File string
}

// TraceConfig holds OpenTelemetry configuration.
type TraceConfig struct {
	Enabled  bool
	Endpoint string
}

const (
	defaultShutdownGrace = 15 * time.Second
	defaultLogFile       = "codescript.log"
	defaultTraceEndpoint = "localhost:4318"
)

// Load reads an optional .env file, then builds a Config from the
// environment.
func Load(envFiles ...string) (*Config, error) {
	if err := loadDotEnv(envFiles...); err != nil {
		return nil, err
	}

	cfg := &Config{
		Endpoints: EndpointsConfig{
			RandomProblemURL:    getEnvFirst("RANDOM_PROBLEM_URL", "VITE_RANDOM_PROBLEM_URL"),
			GenerateFeedbackURL: getEnvFirst("GENERATE_FEEDBACK_URL", "VITE_GENERATE_FEEDBACK_URL"),
		},
		HTTP: HTTPConfig{
			RequestTimeout: getEnvAsDuration("CODESCRIPT_REQUEST_TIMEOUT", 0),
			ShutdownGrace:  getEnvAsDuration("CODESCRIPT_SHUTDOWN_GRACE", defaultShutdownGrace),
		},
		Log: LogConfig{
			File: getEnvOrDefault("CODESCRIPT_LOG_FILE", defaultLogFile),
		},
		Trace: TraceConfig{
			Enabled:  getEnvAsBool("CODESCRIPT_TRACE_ENABLED", false),
			Endpoint: getEnv("CODESCRIPT_TRACE_ENDPOINT", defaultTraceEndpoint),
		},
	}

	return cfg, nil
}

// Validate checks the configuration once flags have been applied.
func (c *Config) Validate() error {
	if err := validateURL("random problem URL", c.Endpoints.RandomProblemURL); err != nil {
		return err
	}
	if err := validateURL("generate feedback URL", c.Endpoints.GenerateFeedbackURL); err != nil {
		return err
	}
	if c.HTTP.RequestTimeout < 0 {
		return fmt.Errorf("invalid request timeout: %s", c.HTTP.RequestTimeout)
	}
	if c.HTTP.ShutdownGrace < 0 {
		return fmt.Errorf("invalid shutdown grace: %s", c.HTTP.ShutdownGrace)
	}
	return nil
}

func validateURL(name, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", name)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", name, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid %s: scheme must be http or https, got %q", name, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid %s: missing host", name)
	}
	return nil
}

// loadDotEnv loads the given files, or ".env" when none are named. Missing
// files are ignored; values already in the environment win.
func loadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvOrDefault distinguishes an explicitly empty variable from an unset one.
func getEnvOrDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func getEnvFirst(keys ...string) string {
	for _, k := range keys {
		if value := os.Getenv(k); value != "" {
			return value
		}
	}
	return ""
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
