package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lox/lightage/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lightage.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with defaults", t, func() {
		cfg := config.New()

		convey.Convey("Then it matches the page defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.MaxUploadBytes, convey.ShouldEqual, int64(10<<20))
			convey.So(cfg.ObserverName, convey.ShouldEqual, "Seoul")
			convey.So(cfg.ObserverLat, convey.ShouldEqual, 37.57)
			convey.So(cfg.ObserverLon, convey.ShouldEqual, 126.98)
			convey.So(cfg.ChartCacheTTL, convey.ShouldEqual, time.Hour)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")

	convey.Convey("Given no file and no environment", t, func() {
		cfg, err := config.Load(context.Background(), "")

		convey.Convey("Then defaults are returned", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg, convey.ShouldResemble, config.New())
		})
	})
}

func TestLoad_File(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")
	path := writeConfigFile(t, `
addr: ":9090"
log_format: json
preview_max_width: 640
observer_name: Busan
observer_lat: 35.18
observer_lon: 129.08
read_timeout: 5s
`)

	convey.Convey("Given a YAML config file", t, func() {
		cfg, err := config.Load(context.Background(), path)

		convey.Convey("Then file values override defaults", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
			convey.So(cfg.LogFormat, convey.ShouldEqual, "json")
			convey.So(cfg.PreviewMaxWidth, convey.ShouldEqual, 640)
			convey.So(cfg.ObserverName, convey.ShouldEqual, "Busan")
			convey.So(cfg.ReadTimeout, convey.ShouldEqual, 5*time.Second)
		})

		convey.Convey("And unset keys keep their defaults", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.MaxUploadBytes, convey.ShouldEqual, int64(10<<20))
			convey.So(cfg.WriteTimeout, convey.ShouldEqual, 30*time.Second)
		})
	})
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "addr: \":9090\"\nlog_level: warn\n")
	t.Setenv(config.EnvConfigPath, path)
	t.Setenv("LIGHTAGE_ADDR", ":7070")
	t.Setenv("LIGHTAGE_MAX_UPLOAD_BYTES", "2048")

	convey.Convey("Given a file named by LIGHTAGE_CONFIG and env overrides", t, func() {
		cfg, err := config.Load(context.Background(), "")

		convey.Convey("Then env wins over the file", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
			convey.So(cfg.MaxUploadBytes, convey.ShouldEqual, int64(2048))
			convey.So(cfg.LogLevel, convey.ShouldEqual, "warn")
		})
	})
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")

	convey.Convey("Given a missing config file", t, func() {
		_, err := config.Load(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))

		convey.Convey("Then a load error is returned", func() {
			convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
		})
	})

	convey.Convey("Given a file with an out of range observer", t, func() {
		path := writeConfigFile(t, "observer_lat: 123\n")
		_, err := config.Load(context.Background(), path)

		convey.Convey("Then an invalid config error is returned", func() {
			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
		})
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"empty addr", func(c *config.Config) { c.Addr = "" }},
		{"zero upload limit", func(c *config.Config) { c.MaxUploadBytes = 0 }},
		{"zero preview width", func(c *config.Config) { c.PreviewMaxWidth = 0 }},
		{"longitude out of range", func(c *config.Config) { c.ObserverLon = -181 }},
		{"negative timeout", func(c *config.Config) { c.WriteTimeout = -time.Second }},
		{"negative cache size", func(c *config.Config) { c.ChartCacheEntries = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, config.ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
