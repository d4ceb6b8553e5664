// Package config defines the process configuration and how it is loaded.
package config

import (
	"fmt"
	"time"
)

// Config holds server and page settings.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// LogLevel is debug, info, warn or error. LogFormat is text or json.
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`

	// MaxUploadBytes caps the size of an uploaded image.
	MaxUploadBytes int64 `koanf:"max_upload_bytes"`

	// PreviewMaxWidth is the widest the uploaded image is shown back.
	PreviewMaxWidth int `koanf:"preview_max_width"`

	// Observer location named in the page text.
	ObserverName string  `koanf:"observer_name"`
	ObserverLat  float64 `koanf:"observer_lat"`
	ObserverLon  float64 `koanf:"observer_lon"`

	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`

	// Rendered chart PNGs are kept in memory; zero entries disables it.
	ChartCacheTTL     time.Duration `koanf:"chart_cache_ttl"`
	ChartCacheEntries int           `koanf:"chart_cache_entries"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Addr:              ":8080",
		LogLevel:          "info",
		LogFormat:         "text",
		MaxUploadBytes:    10 << 20,
		PreviewMaxWidth:   800,
		ObserverName:      "Seoul",
		ObserverLat:       37.57,
		ObserverLon:       126.98,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		ChartCacheTTL:     time.Hour,
		ChartCacheEntries: 256,
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.MaxUploadBytes <= 0:
		return fmt.Errorf("%w: max_upload_bytes must be positive", ErrInvalidConfig)
	case c.PreviewMaxWidth <= 0:
		return fmt.Errorf("%w: preview_max_width must be positive", ErrInvalidConfig)
	case c.ObserverLat < -90 || c.ObserverLat > 90:
		return fmt.Errorf("%w: observer_lat %v out of range", ErrInvalidConfig, c.ObserverLat)
	case c.ObserverLon < -180 || c.ObserverLon > 180:
		return fmt.Errorf("%w: observer_lon %v out of range", ErrInvalidConfig, c.ObserverLon)
	case c.ReadTimeout < 0 || c.WriteTimeout < 0:
		return fmt.Errorf("%w: timeouts must not be negative", ErrInvalidConfig)
	case c.ChartCacheTTL < 0 || c.ChartCacheEntries < 0:
		return fmt.Errorf("%w: chart cache settings must not be negative", ErrInvalidConfig)
	}
	return nil
}
