package config

import (
	"flag"
	"fmt"
	"io"
)

// parseFlags parses the command-line flags in args on a dedicated FlagSet.
//
// Flags:
//
//	-log-level zerolog level name
//	-log-file log file path
//	-seed seed welcome notes into an empty store (bool)
//	-storage storage backend: sqlite, file or memory
//	-d SQLite DSN
//	-f file backend directory
//	-storage-key key of the note snapshot
//	-summarizer-url summarization endpoint
//	-summarizer-api-key summarization bearer token
//	-request-timeout summarization request timeout (e.g. "30s")
//	-trash-sweep enable the trash sweeper (bool)
//	-trash-retention how long trashed notes are kept (e.g. "720h")
//	-trash-sweep-interval period between sweeps (e.g. "1h")
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		cfg            StructuredConfig
		jsonConfigPath string
	)

	fs := flag.NewFlagSet("sticky-canvas", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Log file path")
	fs.Var(&cfg.App.SeedWelcomeNotes, "seed", "Seed welcome notes into an empty store")
	fs.StringVar(&cfg.Storage.Backend, "storage", "", "Storage backend: sqlite, file or memory")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "SQLite DSN")
	fs.StringVar(&cfg.Storage.Files.Dir, "f", "", "File storage directory")
	fs.StringVar(&cfg.Storage.Key, "storage-key", "", "Storage key of the note snapshot")
	fs.StringVar(&cfg.Adapter.SummarizerURL, "summarizer-url", "", "Summarization endpoint URL")
	fs.StringVar(&cfg.Adapter.SummarizerAPIKey, "summarizer-api-key", "", "Summarization API key")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Var(&cfg.Workers.TrashSweep, "trash-sweep", "Enable the trash sweeper")
	fs.DurationVar(&cfg.Workers.TrashRetention, "trash-retention", 0, "Trash retention (e.g., 720h)")
	fs.DurationVar(&cfg.Workers.TrashSweepInterval, "trash-sweep-interval", 0, "Trash sweep interval (e.g., 1h)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.JSONFilePath = jsonConfigPath
	return &cfg, nil
}
