package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON file source.
// Durations are accepted either as Go duration strings ("30s", "168h") or
// as integer nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		Env                    string   `json:"env"`
		Version                string   `json:"version"`
		LogLevel               string   `json:"log_level"`
		SessionDuration        Duration `json:"session_duration"`
		SessionCleanupInterval Duration `json:"session_cleanup_interval"`
		BcryptCost             int      `json:"bcrypt_cost"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		WebDir         string   `json:"web_dir"`
		MaxUploadSize  int64    `json:"max_upload_size"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	AI struct {
		ProjectID       string `json:"project_id"`
		Location        string `json:"location"`
		Model           string `json:"model"`
		CredentialsFile string `json:"credentials_file"`
	} `json:"ai,omitempty"`

	OCR struct {
		Languages        string `json:"languages"`
		FallbackLanguage string `json:"fallback_language"`
		TessdataPrefix   string `json:"tessdata_prefix"`
		Parallelism      int    `json:"parallelism"`
	} `json:"ocr,omitempty"`
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
			Env:                    jsonCfg.App.Env,
			Version:                jsonCfg.App.Version,
			LogLevel:               jsonCfg.App.LogLevel,
			SessionDuration:        time.Duration(jsonCfg.App.SessionDuration),
			SessionCleanupInterval: time.Duration(jsonCfg.App.SessionCleanupInterval),
			BcryptCost:             jsonCfg.App.BcryptCost,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			WebDir:         jsonCfg.Server.WebDir,
			MaxUploadSize:  jsonCfg.Server.MaxUploadSize,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		AI: AI{
			ProjectID:       jsonCfg.AI.ProjectID,
			Location:        jsonCfg.AI.Location,
			Model:           jsonCfg.AI.Model,
			CredentialsFile: jsonCfg.AI.CredentialsFile,
		},
		OCR: OCR{
			Languages:        splitLanguages(jsonCfg.OCR.Languages),
			FallbackLanguage: jsonCfg.OCR.FallbackLanguage,
			TessdataPrefix:   jsonCfg.OCR.TessdataPrefix,
			Parallelism:      jsonCfg.OCR.Parallelism,
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
