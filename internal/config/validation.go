package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

var (
	validLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
	validFormats = map[string]bool{"console": true, "text": true, "json": true}
)

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if strings.TrimSpace(c.Database.Path) == "" {
		errs = append(errs, ValidationError{Field: "database.path", Message: "is required"})
	}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, ValidationError{Field: "log.level", Message: fmt.Sprintf("unknown level %q", c.Log.Level)})
	}
	if !validFormats[strings.ToLower(c.Log.Format)] {
		errs = append(errs, ValidationError{Field: "log.format", Message: fmt.Sprintf("unknown format %q", c.Log.Format)})
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, ValidationError{Field: "window", Message: "width and height must be positive"})
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		errs = append(errs, ValidationError{Field: "chart", Message: "width and height must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
