package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the layout of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		LogLevel         string `json:"log_level"`
		LogFile          string `json:"log_file"`
		SeedWelcomeNotes Switch `json:"seed_welcome_notes"`
	} `json:"app,omitempty"`

	Storage struct {
		Backend string `json:"backend"`
		Key     string `json:"key"`

		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			Dir string `json:"dir"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		SummarizerURL    string   `json:"summarizer_url"`
		SummarizerAPIKey string   `json:"summarizer_api_key"`
		RequestTimeout   Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		TrashSweep         Switch   `json:"trash_sweep"`
		TrashRetention     Duration `json:"trash_retention"`
		TrashSweepInterval Duration `json:"trash_sweep_interval"`
	} `json:"workers,omitempty"`

	Canvas struct {
		Width   int `json:"width"`
		Height  int `json:"height"`
		History int `json:"history"`
	} `json:"canvas,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel:         jsonCfg.App.LogLevel,
			LogFile:          jsonCfg.App.LogFile,
			SeedWelcomeNotes: jsonCfg.App.SeedWelcomeNotes,
		},
		Storage: Storage{
			Backend: jsonCfg.Storage.Backend,
			Key:     jsonCfg.Storage.Key,
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				Dir: jsonCfg.Storage.Files.Dir,
			},
		},
		Adapter: Adapter{
			SummarizerURL:    jsonCfg.Adapter.SummarizerURL,
			SummarizerAPIKey: jsonCfg.Adapter.SummarizerAPIKey,
			RequestTimeout:   time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			TrashSweep:         jsonCfg.Workers.TrashSweep,
			TrashRetention:     time.Duration(jsonCfg.Workers.TrashRetention),
			TrashSweepInterval: time.Duration(jsonCfg.Workers.TrashSweepInterval),
		},
		Canvas: Canvas{
			Width:   jsonCfg.Canvas.Width,
			Height:  jsonCfg.Canvas.Height,
			History: jsonCfg.Canvas.History,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
