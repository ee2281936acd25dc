// Package config loads server configuration from TOML files with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/bobmcallan/illustrator-mcp/internal/common"
)

// Config holds all illustrator-mcp configuration.
type Config struct {
	Server      ServerConfig         `toml:"server"`
	Illustrator IllustratorConfig    `toml:"illustrator"`
	Logging     common.LoggingConfig `toml:"logging"`
}

// ServerConfig holds MCP server settings.
type ServerConfig struct {
	Name string `toml:"name"`
	Port string `toml:"port"`
}

// IllustratorConfig holds settings for the bridge to the Illustrator window.
type IllustratorConfig struct {
	AppName        string `toml:"app_name"`
	CaptureRegion  string `toml:"capture_region"`
	JPEGQuality    int    `toml:"jpeg_quality"`
	CommandTimeout string `toml:"command_timeout"`
}

// GetCommandTimeout parses and returns the per-command timeout.
// Empty or unparsable values disable the timeout.
func (c *IllustratorConfig) GetCommandTimeout() time.Duration {
	if c.CommandTimeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.CommandTimeout)
	if err != nil || d < 0 {
		return 0
	}
	return d
}

// LoadConfig loads configuration from files with environment overrides.
// Later files override earlier ones; missing files are skipped.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)
	validateCaptureRegion(config)
	validateJPEGQuality(config)

	return config, nil
}

// applyEnvOverrides applies ILLUSTRATOR_* environment variable overrides.
func applyEnvOverrides(config *Config) {
	if port := os.Getenv("ILLUSTRATOR_MCP_PORT"); port != "" {
		config.Server.Port = port
	}
	if app := os.Getenv("ILLUSTRATOR_APP_NAME"); app != "" {
		config.Illustrator.AppName = app
	}
	if region := os.Getenv("ILLUSTRATOR_CAPTURE_REGION"); region != "" {
		config.Illustrator.CaptureRegion = region
	}
	if quality := os.Getenv("ILLUSTRATOR_JPEG_QUALITY"); quality != "" {
		if q, err := strconv.Atoi(quality); err == nil {
			config.Illustrator.JPEGQuality = q
		}
	}
	if timeout := os.Getenv("ILLUSTRATOR_COMMAND_TIMEOUT"); timeout != "" {
		config.Illustrator.CommandTimeout = timeout
	}
	if level := os.Getenv("ILLUSTRATOR_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// validateCaptureRegion ensures the region is a well-formed "x,y,w,h"
// integer quad, resetting to the default bounds otherwise.
func validateCaptureRegion(config *Config) {
	parts := strings.Split(config.Illustrator.CaptureRegion, ",")
	if len(parts) != 4 {
		config.Illustrator.CaptureRegion = DefaultCaptureRegion
		return
	}
	for _, p := range parts {
		if _, err := strconv.Atoi(strings.TrimSpace(p)); err != nil {
			config.Illustrator.CaptureRegion = DefaultCaptureRegion
			return
		}
	}
}

// validateJPEGQuality clamps the re-encode quality to the JPEG range.
func validateJPEGQuality(config *Config) {
	q := config.Illustrator.JPEGQuality
	if q < 1 || q > 100 {
		config.Illustrator.JPEGQuality = DefaultJPEGQuality
	}
}
