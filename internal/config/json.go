package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the shape of the
// configuration file. The same shape is read from JSON and YAML files.
type StructuredJSONConfig struct {
	App struct {
		AdminEmail    string   `json:"admin_email" yaml:"admin_email"`
		AdminPassword string   `json:"admin_password" yaml:"admin_password"`
		TokenSignKey  string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" yaml:"token_duration"`
		Environment   string   `json:"environment" yaml:"environment"`
		Version       string   `json:"version" yaml:"version"`
		LogLevel      string   `json:"log_level" yaml:"log_level"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		CORSOrigins    []string `json:"cors_origins" yaml:"cors_origins"`
		PublicURL      string   `json:"public_url" yaml:"public_url"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Printer struct {
		ServerAddress  string   `json:"server_address" yaml:"server_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		PollInterval   Duration `json:"poll_interval" yaml:"poll_interval"`
		BatchSize      int      `json:"batch_size" yaml:"batch_size"`
		JournalDSN     string   `json:"journal_dsn" yaml:"journal_dsn"`
		Output         string   `json:"output" yaml:"output"`
	} `json:"printer,omitempty" yaml:"printer,omitempty"`
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

	return jsonCfg.toStructuredConfig(), nil
}

func (fileCfg StructuredJSONConfig) toStructuredConfig() *StructuredConfig {
	cfg := &StructuredConfig{
		App: App{
			AdminEmail:    fileCfg.App.AdminEmail,
			AdminPassword: fileCfg.App.AdminPassword,
			TokenSignKey:  fileCfg.App.TokenSignKey,
			TokenIssuer:   fileCfg.App.TokenIssuer,
			TokenDuration: time.Duration(fileCfg.App.TokenDuration),
			Environment:   fileCfg.App.Environment,
			Version:       fileCfg.App.Version,
			LogLevel:      fileCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: fileCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    fileCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(fileCfg.Server.RequestTimeout),
			CORSOrigins:    fileCfg.Server.CORSOrigins,
			PublicURL:      fileCfg.Server.PublicURL,
		},
		Printer: Printer{
			ServerAddress:  fileCfg.Printer.ServerAddress,
			RequestTimeout: time.Duration(fileCfg.Printer.RequestTimeout),
			PollInterval:   time.Duration(fileCfg.Printer.PollInterval),
			BatchSize:      fileCfg.Printer.BatchSize,
			JournalDSN:     fileCfg.Printer.JournalDSN,
			Output:         fileCfg.Printer.Output,
		},
	}

	return cfg
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
