package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// Load reads configuration from a YAML file.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration, expanding environment variables and
// filling defaults.
func Parse(data []byte) (*AppConfig, error) {
	var cfg AppConfig
	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *AppConfig {
	var cfg AppConfig
	cfg.applyDefaults()
	return &cfg
}

func (c *AppConfig) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8050
	}
	if c.Dataset.Source == "" {
		c.Dataset.Source = SourceCSV
	}
	if c.Dataset.Path == "" {
		c.Dataset.Path = "spacex_launch_dash.csv"
	}
	c.Dataset.Columns = c.Dataset.Columns.WithDefaults()

	if c.Database.Driver == "" {
		c.Database.Driver = "pgx"
	}

	if c.Slider.Step == 0 {
		c.Slider.Step = 1000
	}
	if c.Sessions.IdleTimeout == 0 {
		c.Sessions.IdleTimeout = 30 * time.Minute
	}
	if c.Sessions.PruneInterval == 0 {
		c.Sessions.PruneInterval = time.Minute
	}
	if c.Charts.Width == 0 {
		c.Charts.Width = 800
	}
	if c.Charts.Height == 0 {
		c.Charts.Height = 500
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}

// Validate checks settings that have no sensible default.
func (c *AppConfig) Validate() error {
	var errs []error

	switch c.Dataset.Source {
	case SourceCSV:
	case SourcePostgres:
		if c.Database.URL == "" {
			errs = append(errs, errors.New("dataset source postgres requires database.url"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown dataset source %q", c.Dataset.Source))
	}

	if c.Slider.Step < 0 {
		errs = append(errs, fmt.Errorf("slider step must be positive, got %v", c.Slider.Step))
	}
	if c.Sessions.IdleTimeout < 0 || c.Sessions.PruneInterval < 0 {
		errs = append(errs, errors.New("session durations must not be negative"))
	}

	switch c.Database.Driver {
	case "pgx", "postgres":
	default:
		errs = append(errs, fmt.Errorf("unknown database driver %q", c.Database.Driver))
	}

	return errors.Join(errs...)
}
