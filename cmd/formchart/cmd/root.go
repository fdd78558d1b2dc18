package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"formchart/internal/config"
	"formchart/internal/logger"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.1.0-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile   string
	dbPath    string
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "formchart",
	Short: "Personal records form with SQLite storage and charts",
	Long: `formchart collects personal records (name, age, address, height)
through a desktop form, stores them in a local SQLite database and keeps
a table and two bar charts (age and height per entry) in sync with it.

Running without a subcommand opens the window.`,
	Version:      Version,
	SilenceUsage: true,
	RunE:         runGUI,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"Path to YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "",
		"Override database path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (console, json)")
}

// GetOverrides returns the flag values that take precedence over the config file.
func GetOverrides() config.Overrides {
	return config.Overrides{
		DatabasePath: dbPath,
		LogLevel:     logLevel,
		LogFormat:    logFormat,
	}
}

// loadConfig resolves defaults, file, environment and flags into a validated config.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	GetOverrides().Apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Logs go to stderr so command output stays clean.
func newLogger(w io.Writer, cfg *config.Config) logger.Logger {
	return logger.New(w, cfg.Log.Level, cfg.Log.Format)
}
