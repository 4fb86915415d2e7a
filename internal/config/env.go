// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FCS Project Authors

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. The mapping lives in
// the `env`/`envPrefix` tags on [StructuredConfig] and its nested
// sections; a value that cannot be converted to the field type surfaces
// as a wrapped parse error.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse environment configuration: %w", err)
	}
	return nil
}
