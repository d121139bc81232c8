// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the variables named by the env and envPrefix tags of
// [StructuredConfig] from a snapshot of the process environment. Unset
// variables leave zero values, which the merge step treats as not provided.
// [Switch] values parse themselves through encoding.TextUnmarshaler.
func parseEnv(cfg any) error {
	opts := env.Options{Environment: env.ToMap(os.Environ())}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("parse env config: %w", err)
	}
	return nil
}
