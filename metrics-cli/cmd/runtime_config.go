package main

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// runtimeConfig is the effective environment the CLI operates in. It is
// resolved in three layers: built-in defaults, then the persisted config
// file, then METRICS_* environment variables.
type runtimeConfig struct {
	APIAddress string `envconfig:"API_ADDRESS"`
	AIEnabled  bool   `envconfig:"AI_ENABLED"`
	EnvName    string `envconfig:"ENV_NAME"`
	Production bool   `envconfig:"PRODUCTION"`
}

func loadRuntimeConfig() (*runtimeConfig, error) {
	cfg := &runtimeConfig{
		APIAddress: "http://localhost:8080/api/v1",
		AIEnabled:  true,
		EnvName:    "local",
		Production: false,
	}
	savedConfig, err := getConfig()
	if err != nil {
		return nil, err
	}
	if savedConfig != nil && savedConfig.APIAddress != "" {
		cfg.APIAddress = savedConfig.APIAddress
	}
	if err := envconfig.Process("metrics", cfg); err != nil {
		return nil, errors.Wrap(err, "error processing environment variables")
	}
	return cfg, nil
}
