package config

import "github.com/bobmcallan/illustrator-mcp/internal/common"

// Default capture settings, matching the Illustrator window bounds the
// server was built against. Overridable via config file or environment.
const (
	DefaultAppName       = "Adobe Illustrator"
	DefaultCaptureRegion = "0,0,960,1080"
	DefaultJPEGQuality   = 50
)

// NewDefaultConfig returns a Config with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name: "illustrator",
			Port: "8080",
		},
		Illustrator: IllustratorConfig{
			AppName:       DefaultAppName,
			CaptureRegion: DefaultCaptureRegion,
			JPEGQuality:   DefaultJPEGQuality,
		},
		Logging: common.LoggingConfig{
			Level:      "info",
			Format:     "json",
			Outputs:    []string{"console", "file"},
			FilePath:   "logs/illustrator-mcp.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}
