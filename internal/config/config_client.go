package config

import (
	"fmt"
	"time"
)

// ClientApp holds application-level client settings.
type ClientApp struct {
	// LogLevel is the zerolog level name.
	LogLevel string
	// LogFile is the log destination path.
	LogFile string
	// SeedWelcomeNotes seeds the welcome notes into a never-written store.
	SeedWelcomeNotes bool
}

// ClientStorage selects the key-value backend.
type ClientStorage struct {
	Backend string
	// Key is the single key the note snapshot lives under.
	Key string
	// DSN is the SQLite data source name.
	DSN string
	// FilesDir is the directory of the file backend.
	FilesDir string
}

// ClientAdapter holds summarization client settings.
type ClientAdapter struct {
	// SummarizerURL is empty when summarization is disabled.
	SummarizerURL    string
	SummarizerAPIKey string
	RequestTimeout   time.Duration
}

// ClientWorkers contains background worker settings.
type ClientWorkers struct {
	// TrashRetention is zero when the sweeper is disabled.
	TrashRetention     time.Duration
	TrashSweepInterval time.Duration
}

// ClientCanvas holds drawing surface settings.
type ClientCanvas struct {
	Width   int
	Height  int
	History int
}

// ClientConfig is the runtime configuration of the client, assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Storage ClientStorage
	Adapter ClientAdapter
	Workers ClientWorkers
	Canvas  ClientCanvas
}

// SummarizationEnabled reports whether a summarization endpoint is set.
func (c *ClientConfig) SummarizationEnabled() bool {
	return c.Adapter.SummarizerURL != ""
}

// GetClientConfig builds and validates the client config from the merged
// structured configuration. args are the command-line arguments without the
// program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	retention := cfg.Workers.TrashRetention
	if !cfg.Workers.TrashSweep.Enabled() {
		retention = 0
	}

	return &ClientConfig{
		App: ClientApp{
			LogLevel:         cfg.App.LogLevel,
			LogFile:          cfg.App.LogFile,
			SeedWelcomeNotes: cfg.App.SeedWelcomeNotes.Enabled(),
		},
		Storage: ClientStorage{
			Backend:  cfg.Storage.Backend,
			Key:      cfg.Storage.Key,
			DSN:      cfg.Storage.DB.DSN,
			FilesDir: cfg.Storage.Files.Dir,
		},
		Adapter: ClientAdapter{
			SummarizerURL:    cfg.Adapter.SummarizerURL,
			SummarizerAPIKey: cfg.Adapter.SummarizerAPIKey,
			RequestTimeout:   cfg.Adapter.RequestTimeout,
		},
		Workers: ClientWorkers{
			TrashRetention:     retention,
			TrashSweepInterval: cfg.Workers.TrashSweepInterval,
		},
		Canvas: ClientCanvas{
			Width:   cfg.Canvas.Width,
			Height:  cfg.Canvas.Height,
			History: cfg.Canvas.History,
		},
	}
}
