package config

import (
	"time"

	"github.com/smartparking/parkwatch/internal/render"
)

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Defaults.
const (
	DefaultEndpoint = "http://localhost:8000/dashboard-data"
	DefaultInterval = 3 * time.Second
	DefaultTimeout  = 5 * time.Second
	DefaultLocale   = "en"

	// MinInterval is the shortest poll interval Validate accepts.
	MinInterval = 500 * time.Millisecond
)

// Config represents the complete .parkwatch.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Endpoint is the dashboard-data URL polled every Interval.
	// Supports ${VAR} expansion from the environment.
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`

	// Interval between the starts of consecutive fetches. Plain numbers are
	// read as milliseconds.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// Timeout bounds a single fetch.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Locale selects display strings and date formats: "en" or "it".
	Locale string `yaml:"locale" mapstructure:"locale"`

	// DiscardStale drops a fetch result that arrives after a newer one.
	DiscardStale bool `yaml:"discard_stale" mapstructure:"discard_stale"`

	// Metrics are the summary cards, in display order. Summary keys without
	// a card are ignored.
	Metrics []render.MetricSlot `yaml:"metrics" mapstructure:"metrics"`

	Log    LogConfig    `yaml:"log" mapstructure:"log"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// LogConfig controls the diagnostic log. The dashboard owns the terminal,
// so logs only go to a file.
type LogConfig struct {
	// File is the log destination. Empty discards logs.
	File string `yaml:"file" mapstructure:"file"`

	// Level is "debug", "info", "warn" or "error".
	Level string `yaml:"level" mapstructure:"level"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`
}

// DefaultMetrics are the summary cards shown when the config names none.
func DefaultMetrics() []render.MetricSlot {
	return []render.MetricSlot{
		{Key: "lots", Label: "Lots"},
		{Key: "totalSpaces", Label: "Total spaces"},
		{Key: "freeSpaces", Label: "Free spaces"},
		{Key: "occupiedSpaces", Label: "Occupied spaces"},
		{Key: "sensorsOnline", Label: "Sensors online"},
		{Key: "sensorsOffline", Label: "Sensors offline"},
	}
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:  CurrentConfigVersion,
		Endpoint: DefaultEndpoint,
		Interval: DefaultInterval,
		Timeout:  DefaultTimeout,
		Locale:   DefaultLocale,
		Metrics:  DefaultMetrics(),
		Log: LogConfig{
			Level: "info",
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}
