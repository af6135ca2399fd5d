// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// mindcraft client. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the initial bearer
	// credential.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local session database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the processing service address and outbound request
	// settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Token is a bearer credential obtained by an external login step.
	// When non-empty it replaces the persisted credential at startup.
	// Env: APP_TOKEN
	Token string `env:"TOKEN"`
}

// Storage groups the configuration for local persistence.
type Storage struct {
	// DB holds the session database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path (e.g. "mindcraft.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds settings for the outbound connection to the processing
// service.
type Adapter struct {
	// HTTPAddress is the base URL of the processing service
	// (e.g. "https://api.example.com" or "localhost:8000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request (e.g. "30s").
	// Zero keeps the transport default, which is no timeout.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// RefreshInterval is how often the dashboard re-lists documents while it
	// is open. Zero disables the background refresh.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
