// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Nested sections pick up
// their variables through the envPrefix tags (APP_, STORAGE_DB_, SERVER_,
// ADAPTER_, ...) declared on [StructuredConfig].
func parseEnv[T any](cfg *T) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
