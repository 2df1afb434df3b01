package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"RANDOM_PROBLEM_URL",
	"VITE_RANDOM_PROBLEM_URL",
	"GENERATE_FEEDBACK_URL",
	"VITE_GENERATE_FEEDBACK_URL",
	"CODESCRIPT_REQUEST_TIMEOUT",
	"CODESCRIPT_SHUTDOWN_GRACE",
	"CODESCRIPT_LOG_FILE",
	"CODESCRIPT_TRACE_ENABLED",
	"CODESCRIPT_TRACE_ENDPOINT",
}

// clearEnv unsets every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		if v, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { os.Setenv(k, v) })
		} else {
			t.Cleanup(func() { os.Unsetenv(k) })
		}
		os.Unsetenv(k)
	}
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Empty(t, cfg.Endpoints.RandomProblemURL)
	assert.Zero(t, cfg.HTTP.RequestTimeout)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ShutdownGrace)
	assert.Equal(t, "codescript.log", cfg.Log.File)
	assert.False(t, cfg.Trace.Enabled)
	assert.Equal(t, "localhost:4318", cfg.Trace.Endpoint)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("RANDOM_PROBLEM_URL", "https://api.example.com/random")
	t.Setenv("VITE_GENERATE_FEEDBACK_URL", "https://api.example.com/feedback")
	t.Setenv("CODESCRIPT_REQUEST_TIMEOUT", "20s")
	t.Setenv("CODESCRIPT_TRACE_ENABLED", "true")
	t.Setenv("CODESCRIPT_LOG_FILE", "")

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/random", cfg.Endpoints.RandomProblemURL)
	assert.Equal(t, "https://api.example.com/feedback", cfg.Endpoints.GenerateFeedbackURL, "VITE_ name is accepted")
	assert.Equal(t, 20*time.Second, cfg.HTTP.RequestTimeout)
	assert.True(t, cfg.Trace.Enabled)
	assert.Empty(t, cfg.Log.File, "an explicitly empty log file disables logging")
}

func TestPlainNameWinsOverVite(t *testing.T) {
	clearEnv(t)
	t.Setenv("RANDOM_PROBLEM_URL", "https://plain.example.com")
	t.Setenv("VITE_RANDOM_PROBLEM_URL", "https://vite.example.com")

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, "https://plain.example.com", cfg.Endpoints.RandomProblemURL)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("CODESCRIPT_SHUTDOWN_GRACE", "soon")
	t.Setenv("CODESCRIPT_TRACE_ENABLED", "maybe")

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ShutdownGrace)
	assert.False(t, cfg.Trace.Enabled)
}

func TestLoadDotEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("GENERATE_FEEDBACK_URL", "https://env.example.com/feedback")

	path := filepath.Join(t.TempDir(), ".env")
	content := "VITE_RANDOM_PROBLEM_URL=https://file.example.com/random\n" +
		"GENERATE_FEEDBACK_URL=https://file.example.com/feedback\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://file.example.com/random", cfg.Endpoints.RandomProblemURL)
	assert.Equal(t, "https://env.example.com/feedback", cfg.Endpoints.GenerateFeedbackURL, "environment wins over the file")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Endpoints: EndpointsConfig{
				RandomProblemURL:    "https://api.example.com/random",
				GenerateFeedbackURL: "http://localhost:8080/feedback",
			},
			HTTP: HTTPConfig{ShutdownGrace: time.Second},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"missing problem url", func(c *Config) { c.Endpoints.RandomProblemURL = "" }, "random problem URL is required"},
		{"missing feedback url", func(c *Config) { c.Endpoints.GenerateFeedbackURL = "" }, "generate feedback URL is required"},
		{"bad scheme", func(c *Config) { c.Endpoints.RandomProblemURL = "ftp://example.com" }, "scheme must be http or https"},
		{"no host", func(c *Config) { c.Endpoints.GenerateFeedbackURL = "https://" }, "missing host"},
		{"negative timeout", func(c *Config) { c.HTTP.RequestTimeout = -time.Second }, "invalid request timeout"},
		{"negative grace", func(c *Config) { c.HTTP.ShutdownGrace = -time.Second }, "invalid shutdown grace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
