package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Protocol-Lattice/codescript/src/config"
)

func TestVersionNeedsNoConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("RANDOM_PROBLEM_URL='unterminated\n"), 0o600))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	opts, err := parseFlags([]string{"-version"})
	require.NoError(t, err)
	assert.True(t, opts.version)
}

func TestApplyOnlyOverridesGivenFlags(t *testing.T) {
	cfg := &config.Config{
		Endpoints: config.EndpointsConfig{
			RandomProblemURL:    "https://env.example.com/random",
			GenerateFeedbackURL: "https://env.example.com/feedback",
		},
		HTTP:  config.HTTPConfig{ShutdownGrace: 15 * time.Second},
		Log:   config.LogConfig{File: "codescript.log"},
		Trace: config.TraceConfig{Endpoint: "localhost:4318"},
	}

	opts, err := parseFlags([]string{"-problem-url", "http://localhost:8080/random", "-log-file", "", "-trace"})
	require.NoError(t, err)
	opts.apply(cfg)

	assert.Equal(t, "http://localhost:8080/random", cfg.Endpoints.RandomProblemURL)
	assert.Equal(t, "https://env.example.com/feedback", cfg.Endpoints.GenerateFeedbackURL)
	assert.Empty(t, cfg.Log.File)
	assert.True(t, cfg.Trace.Enabled)
	assert.Equal(t, "localhost:4318", cfg.Trace.Endpoint)
}

func TestParseFlagsRejectsUnknown(t *testing.T) {
	_, err := parseFlags([]string{"-nope"})
	assert.Error(t, err)
}
