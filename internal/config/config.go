// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// sticky-canvas client. It is populated by merging built-in defaults,
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds logging and first-run settings.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the key-value backend holding the
	// note snapshot.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter configures the summarization service client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers configures the trash sweeper.
	Workers Workers `envPrefix:"WORKERS_"`

	// Canvas configures the drawing surface of canvas notes.
	Canvas Canvas `envPrefix:"CANVAS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// LogLevel is a zerolog level name (e.g. "debug", "info").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the client writes its JSON log lines. Relative paths
	// are resolved next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// SeedWelcomeNotes controls whether a store that has never been written
	// starts with the welcome notes.
	// Env: APP_SEED_WELCOME_NOTES
	SeedWelcomeNotes Switch `env:"SEED_WELCOME_NOTES"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// Backend is one of "sqlite", "file" or "memory".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// Key is the single key the note snapshot is stored under.
	// Env: STORAGE_KEY
	Key string `env:"KEY"`

	// DB holds the SQLite settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the file backend settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the SQLite backend.
type DB struct {
	// DSN is the SQLite data source name (a file path or a file: URI).
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Files holds settings for the file backend.
type Files struct {
	// Dir is the directory holding one JSON file per key.
	// Env: STORAGE_FILES_DIR
	Dir string `env:"DIR"`
}

// Adapter holds the summarization service settings.
type Adapter struct {
	// SummarizerURL is the endpoint receiving {"noteContent"} requests.
	// Empty disables summarization.
	// Env: ADAPTER_SUMMARIZER_URL
	SummarizerURL string `env:"SUMMARIZER_URL"`

	// SummarizerAPIKey is sent as a bearer token when set.
	// Env: ADAPTER_SUMMARIZER_API_KEY
	SummarizerAPIKey string `env:"SUMMARIZER_API_KEY"`

	// RequestTimeout bounds a single summarization request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// TrashSweep enables the trash sweeper.
	// Env: WORKERS_TRASH_SWEEP
	TrashSweep Switch `env:"TRASH_SWEEP"`

	// TrashRetention is how long a note stays in the trash before the
	// sweeper deletes it permanently.
	// Env: WORKERS_TRASH_RETENTION
	TrashRetention time.Duration `env:"TRASH_RETENTION"`

	// TrashSweepInterval is the period between two sweeps.
	// Env: WORKERS_TRASH_SWEEP_INTERVAL
	TrashSweepInterval time.Duration `env:"TRASH_SWEEP_INTERVAL"`
}

// Canvas holds the drawing surface settings.
type Canvas struct {
	// Env: CANVAS_WIDTH
	Width int `env:"WIDTH"`
	// Env: CANVAS_HEIGHT
	Height int `env:"HEIGHT"`
	// History is the maximum number of undo snapshots.
	// Env: CANVAS_HISTORY
	History int `env:"HISTORY"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources in the following priority order (later sources override
// earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags parsed from args
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
