package config

import "time"

// Storage backend names accepted by Storage.Backend.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// DefaultStorageKey is the key the note snapshot lives under.
const DefaultStorageKey = "stickycanvas-notes"

// defaultConfig returns the lowest-priority configuration source.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel:         "debug",
			LogFile:          "sticky-canvas.log",
			SeedWelcomeNotes: SwitchOn,
		},
		Storage: Storage{
			Backend: BackendSQLite,
			Key:     DefaultStorageKey,
			DB:      DB{DSN: "sticky-canvas.db"},
			Files:   Files{Dir: "data"},
		},
		Adapter: Adapter{
			RequestTimeout: 30 * time.Second,
		},
		Workers: Workers{
			TrashSweep:         SwitchOn,
			TrashRetention:     30 * 24 * time.Hour,
			TrashSweepInterval: time.Hour,
		},
		Canvas: Canvas{
			Width:   500,
			Height:  400,
			History: 50,
		},
	}
}
