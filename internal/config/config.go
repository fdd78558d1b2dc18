// Package config provides configuration structures and loading for formchart.
package config

// Config represents the complete application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database" mapstructure:"database"`
	Log      LoggingConfig  `yaml:"log" mapstructure:"log"`
	Window   WindowConfig   `yaml:"window" mapstructure:"window"`
	Chart    ChartConfig    `yaml:"chart" mapstructure:"chart"`
}

// DatabaseConfig locates the local SQLite file.
type DatabaseConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // console, json
}

// WindowConfig is the initial size of the main window.
type WindowConfig struct {
	Width  float32 `yaml:"width" mapstructure:"width"`
	Height float32 `yaml:"height" mapstructure:"height"`
}

// ChartConfig is the pixel size of each rendered chart panel.
type ChartConfig struct {
	Width  int `yaml:"width" mapstructure:"width"`
	Height int `yaml:"height" mapstructure:"height"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: "userdata.db",
		},
		Log: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Window: WindowConfig{
			Width:  1100,
			Height: 640,
		},
		Chart: ChartConfig{
			Width:  360,
			Height: 300,
		},
	}
}
