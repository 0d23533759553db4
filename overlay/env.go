// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package overlay

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env overlays dst with process environment variables using the
// caarlos0/env library. Struct fields are mapped via their `env` and
// `envPrefix` tags; prefix is prepended to every variable name.
//
// Only variables that are set touch dst, so values decoded from files
// survive unless explicitly overridden.
//
// Returns a wrapped error if env parsing fails (e.g. a required variable is
// missing or a value cannot be converted to the target type).
func Env(dst any, prefix string) error {
	return parseEnv(dst, env.Options{Prefix: prefix})
}

// EnvFrom is [Env] reading from environ instead of the process environment.
func EnvFrom(dst any, prefix string, environ map[string]string) error {
	return parseEnv(dst, env.Options{Prefix: prefix, Environment: environ})
}

func parseEnv(dst any, opts env.Options) error {
	if err := env.ParseWithOptions(dst, opts); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
