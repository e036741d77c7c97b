package config

import (
	"time"

	"github.com/vietddude/launchdash/internal/dataset"
	"github.com/vietddude/launchdash/internal/infra/storage/postgres"
)

// Dataset source kinds.
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

// AppConfig represents the top-level configuration.
type AppConfig struct {
	Server   ServerConfig    `yaml:"server"`
	Dataset  DatasetConfig   `yaml:"dataset"`
	Database postgres.Config `yaml:"database"`
	Slider   SliderConfig    `yaml:"slider"`
	Sessions SessionsConfig  `yaml:"sessions"`
	Charts   ChartsConfig    `yaml:"charts"`
	Logging  LoggingConfig   `yaml:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// DatasetConfig selects where launch records are loaded from.
type DatasetConfig struct {
	Source  string          `yaml:"source"` // csv, postgres
	Path    string          `yaml:"path"`
	Columns dataset.Columns `yaml:"columns"`
}

// SliderConfig holds the payload range control settings.
type SliderConfig struct {
	Step float64 `yaml:"step"`
}

// SessionsConfig holds dashboard session lifecycle settings.
type SessionsConfig struct {
	IdleTimeout   time.Duration `yaml:"idle_timeout"`
	PruneInterval time.Duration `yaml:"prune_interval"`
}

// ChartsConfig holds rendered chart dimensions in pixels.
type ChartsConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}
