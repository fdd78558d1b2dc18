package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. FORMCHART_DATABASE_PATH.
const EnvPrefix = "FORMCHART"

// Load builds the configuration from defaults, the optional YAML file at
// configPath and FORMCHART_* environment variables, in increasing precedence.
func Load(configPath string) (*Config, error) {
	v := NewViper()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// NewViper returns a Viper instance with defaults and environment binding set up.
func NewViper() *viper.Viper {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadFromViper creates a Config from an existing Viper instance.
func LoadFromViper(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// Keys must be registered for AutomaticEnv to reach Unmarshal.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("database.path", cfg.Database.Path)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("window.width", cfg.Window.Width)
	v.SetDefault("window.height", cfg.Window.Height)
	v.SetDefault("chart.width", cfg.Chart.Width)
	v.SetDefault("chart.height", cfg.Chart.Height)
}

// Overrides holds command-line values that take precedence over every other source.
type Overrides struct {
	DatabasePath string
	LogLevel     string
	LogFormat    string
}

// Apply copies the non-empty override values onto cfg.
func (o Overrides) Apply(cfg *Config) {
	if o.DatabasePath != "" {
		cfg.Database.Path = o.DatabasePath
	}
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}
	if o.LogFormat != "" {
		cfg.Log.Format = o.LogFormat
	}
}
