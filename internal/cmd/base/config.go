// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package base

import (
	"github.com/kelseyhightower/envconfig"
)

// Config is the client configuration read from the environment.
type Config struct {
	// ProfilesPath overrides the location of the profile store. Empty means
	// profiles.DefaultPath, resolved when a store is first opened.
	ProfilesPath string `envconfig:"MAAS_CLI_PROFILES"`
	NoColor      bool   `envconfig:"MAAS_CLI_NO_COLOR"`
	LogLevel     string `envconfig:"MAAS_CLI_LOG_LEVEL" default:"warn"`
	LogFormat    string `envconfig:"MAAS_CLI_LOG_FORMAT"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}
	return &c, nil
}
