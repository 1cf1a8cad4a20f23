package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// JSONConfig mirrors [Config] with JSON tags and string-friendly duration
// parsing for the optional configuration file.
type JSONConfig struct {
	App struct {
		HomeCountry      string `json:"home_country"`
		SettingsPath     string `json:"settings_path"`
		RequireFirstSync bool   `json:"require_first_sync"`
		Version          string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Gateway struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"gateway,omitempty"`

	Sync struct {
		Interval              Duration `json:"interval"`
		StalenessWindow       Duration `json:"staleness_window"`
		AutomaticMaxSizeBytes int64    `json:"automatic_max_size_bytes"`
	} `json:"sync,omitempty"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg JSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		App: App{
			HomeCountry:      jsonCfg.App.HomeCountry,
			SettingsPath:     jsonCfg.App.SettingsPath,
			RequireFirstSync: jsonCfg.App.RequireFirstSync,
			Version:          jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Gateway: Gateway{
			BaseURL:        jsonCfg.Gateway.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Gateway.RequestTimeout),
		},
		Sync: Sync{
			Interval:              time.Duration(jsonCfg.Sync.Interval),
			StalenessWindow:       time.Duration(jsonCfg.Sync.StalenessWindow),
			AutomaticMaxSizeBytes: jsonCfg.Sync.AutomaticMaxSizeBytes,
		},
		JSONFilePath: "",
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
