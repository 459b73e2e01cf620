package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
)

// fileConfig mirrors [StructuredConfig] in the shape of the configuration
// file. The same struct is decoded from JSON and YAML.
type fileConfig struct {
	App struct {
		TokenSignKey      string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer       string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration     Duration `json:"token_duration" yaml:"token_duration"`
		AdminLogin        string   `json:"admin_login" yaml:"admin_login"`
		AdminPasswordHash string   `json:"admin_password_hash" yaml:"admin_password_hash"`
		LogLevel          string   `json:"log_level" yaml:"log_level"`
		LogFormat         string   `json:"log_format" yaml:"log_format"`
		Version           string   `json:"version" yaml:"version"`
	} `json:"app" yaml:"app"`

	Server struct {
		HTTPAddress         string   `json:"http_address" yaml:"http_address"`
		AllowedOrigins      []string `json:"allowed_origins" yaml:"allowed_origins"`
		RecentArticlesLimit int      `json:"recent_articles_limit" yaml:"recent_articles_limit"`
		ShutdownTimeout     Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"server" yaml:"server"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db" yaml:"db"`

		Redis struct {
			Address        string   `json:"address" yaml:"address"`
			Password       string   `json:"password" yaml:"password"`
			DB             int      `json:"db" yaml:"db"`
			CounterTimeout Duration `json:"counter_timeout" yaml:"counter_timeout"`
		} `json:"redis" yaml:"redis"`
	} `json:"storage" yaml:"storage"`

	Access struct {
		ProtectedPaths []string `json:"protected_paths" yaml:"protected_paths"`
		ExemptPaths    []string `json:"exempt_paths" yaml:"exempt_paths"`
	} `json:"access" yaml:"access"`
}

// parseFile reads the configuration file at path. Files ending in .yaml or
// .yml are decoded as YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigFileNotRead, err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrConfigFileMalformed, path, err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:      fc.App.TokenSignKey,
			TokenIssuer:       fc.App.TokenIssuer,
			TokenDuration:     time.Duration(fc.App.TokenDuration),
			AdminLogin:        fc.App.AdminLogin,
			AdminPasswordHash: fc.App.AdminPasswordHash,
			LogLevel:          fc.App.LogLevel,
			LogFormat:         fc.App.LogFormat,
			Version:           fc.App.Version,
		},
		Server: Server{
			HTTPAddress:         fc.Server.HTTPAddress,
			AllowedOrigins:      fc.Server.AllowedOrigins,
			RecentArticlesLimit: fc.Server.RecentArticlesLimit,
			ShutdownTimeout:     time.Duration(fc.Server.ShutdownTimeout),
		},
		Storage: Storage{
			DB: DB{DSN: fc.Storage.DB.DSN},
			Redis: Redis{
				Address:        fc.Storage.Redis.Address,
				Password:       fc.Storage.Redis.Password,
				DB:             fc.Storage.Redis.DB,
				CounterTimeout: time.Duration(fc.Storage.Redis.CounterTimeout),
			},
		},
		Access: Access{
			ProtectedPaths: fc.Access.ProtectedPaths,
			ExemptPaths:    fc.Access.ExemptPaths,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that can be decoded from
// strings like "1h" or "30s" in both JSON and YAML files. Bare numbers are
// taken as nanoseconds.
type Duration time.Duration

// UnmarshalJSON implements [json.Unmarshaler].
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	return d.set(v)
}

// UnmarshalYAML implements goccy/go-yaml's BytesUnmarshaler.
func (d *Duration) UnmarshalYAML(b []byte) error {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return err
	}

	return d.set(v)
}

func (d *Duration) set(v any) error {
	switch value := v.(type) {
	case nil:
		*d = 0
	case float64:
		*d = Duration(time.Duration(value))
	case uint64:
		*d = Duration(time.Duration(value))
	case int64:
		*d = Duration(time.Duration(value))
	case int:
		*d = Duration(time.Duration(value))
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
	default:
		return fmt.Errorf("invalid duration %v", v)
	}

	return nil
}

// MarshalJSON encodes the duration in its string form ("1h0m0s").
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
