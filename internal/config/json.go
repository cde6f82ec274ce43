// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Bessonov

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON decoding, with
// durations accepted as strings like "30s" or "1m".
type StructuredJSONConfig struct {
	App struct {
		KeySource        string `json:"key_source"`
		KeyEnvVar        string `json:"key_env_var"`
		Passphrase       string `json:"key_passphrase"`
		KeySalt          string `json:"key_salt"`
		LegacyPlaintext  string `json:"legacy_plaintext"`
		NotSelectedLabel string `json:"not_selected_label"`
		Version          string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		Engine string `json:"engine"`

		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		SQLite struct {
			Path string `json:"path"`
		} `json:"sqlite,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		ProjectionInterval Duration `json:"projection_interval"`
	} `json:"workers,omitempty"`
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
			KeySource:        jsonCfg.App.KeySource,
			KeyEnvVar:        jsonCfg.App.KeyEnvVar,
			Passphrase:       jsonCfg.App.Passphrase,
			KeySalt:          jsonCfg.App.KeySalt,
			LegacyPlaintext:  jsonCfg.App.LegacyPlaintext,
			NotSelectedLabel: jsonCfg.App.NotSelectedLabel,
			Version:          jsonCfg.App.Version,
		},
		Storage: Storage{
			Engine: jsonCfg.Storage.Engine,
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			SQLite: SQLite{
				Path: jsonCfg.Storage.SQLite.Path,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			BaseURL:        jsonCfg.Adapter.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			ProjectionInterval: time.Duration(jsonCfg.Workers.ProjectionInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
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
