package main

import (
	"encoding/json"
	"os"
	"path"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

// config is the slice of CLI configuration that survives between
// invocations. The access token itself is NOT here; it lives in its own
// 0600 file managed by the SDK's token store.
type config struct {
	APIAddress string `json:"apiAddress"`
}

// getConfig returns the persisted configuration, or nil when none has been
// saved yet. An absent configuration is not an error; defaults apply.
func getConfig() (*config, error) {
	metricsHome, err := getMetricsHome()
	if err != nil {
		return nil, err
	}
	configFile := path.Join(metricsHome, "config")
	configBytes, err := os.ReadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "error reading config file at %s", configFile)
	}
	config := &config{}
	if err := json.Unmarshal(configBytes, config); err != nil {
		return nil, errors.Wrapf(err, "error parsing config file at %s", configFile)
	}
	return config, nil
}

func saveConfig(config *config) error {
	metricsHome, err := getMetricsHome()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(metricsHome, 0755); err != nil {
		return errors.Wrapf(err, "error creating %s", metricsHome)
	}
	configFile := path.Join(metricsHome, "config")
	configBytes, err := json.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "error marshaling config")
	}
	if err := os.WriteFile(configFile, configBytes, 0644); err != nil {
		return errors.Wrapf(err, "error writing to %s", configFile)
	}
	return nil
}

func getMetricsHome() (string, error) {
	homeDir, err := homedir.Dir()
	if err != nil {
		return "", errors.Wrap(err, "error locating user's home directory")
	}
	return path.Join(homeDir, ".metricsimple"), nil
}
