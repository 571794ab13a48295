// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
)

// ClientConfig is the configuration view used by the command-line client.
type ClientConfig struct {
	// Adapter contains the server address, timeout and stored token.
	Adapter Adapter
}

// GetClientConfig builds and validates the client configuration from
// environment variables only; command-line arguments belong to the client's
// subcommands.
func GetClientConfig() (*ClientConfig, error) {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, fmt.Errorf("error get client config: %w", err)
	}

	if envCfg.Adapter.HTTPAddress == "" {
		envCfg.Adapter.HTTPAddress = DefaultHTTPAddress
	}
	if envCfg.Adapter.RequestTimeout == 0 {
		envCfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}

	clientCfg := &ClientConfig{Adapter: envCfg.Adapter}

	return clientCfg, clientCfg.validate()
}
