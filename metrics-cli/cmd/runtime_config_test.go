package main

import (
	"os"
	"path"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/require"
)

func TestLoadRuntimeConfigDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	homedir.Reset()
	cfg, err := loadRuntimeConfig()
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8080/api/v1", cfg.APIAddress)
	require.True(t, cfg.AIEnabled)
	require.Equal(t, "local", cfg.EnvName)
	require.False(t, cfg.Production)
}

func TestLoadRuntimeConfigLayers(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.Reset()

	// The persisted config file overrides the built-in default address
	metricsHome := path.Join(home, ".metricsimple")
	require.NoError(t, os.MkdirAll(metricsHome, 0755))
	require.NoError(
		t,
		os.WriteFile(
			path.Join(metricsHome, "config"),
			[]byte(`{"apiAddress":"http://saved.example.com/api/v1"}`),
			0644,
		),
	)
	cfg, err := loadRuntimeConfig()
	require.NoError(t, err)
	require.Equal(t, "http://saved.example.com/api/v1", cfg.APIAddress)

	// Environment variables override everything
	t.Setenv("METRICS_API_ADDRESS", "http://env.example.com/api/v1")
	t.Setenv("METRICS_AI_ENABLED", "false")
	t.Setenv("METRICS_ENV_NAME", "prod")
	t.Setenv("METRICS_PRODUCTION", "true")
	cfg, err = loadRuntimeConfig()
	require.NoError(t, err)
	require.Equal(t, "http://env.example.com/api/v1", cfg.APIAddress)
	require.False(t, cfg.AIEnabled)
	require.Equal(t, "prod", cfg.EnvName)
	require.True(t, cfg.Production)
}
