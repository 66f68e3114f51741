package conf

import (
	"fmt"
	"strings"

	"github.com/tphakala/birdgroups/internal/errors"
	"github.com/tphakala/birdgroups/internal/logger"
)

// ValidationError represents a collection of validation errors
type ValidationError struct {
	Errors []string
}

// Error returns a string representation of the validation errors
func (ve ValidationError) Error() string {
	return fmt.Sprintf("validation errors: %s", strings.Join(ve.Errors, "; "))
}

// ErrorCategory marks settings problems as configuration errors
func (ve ValidationError) ErrorCategory() errors.ErrorCategory {
	return errors.CategoryConfiguration
}

// ValidateSettings checks the loaded settings and collects every problem
// found instead of stopping at the first.
func ValidateSettings(settings *Settings) error {
	ve := ValidationError{}

	if err := validateLogSettings(&settings.Log); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if strings.TrimSpace(settings.Lookup.Default) == "" {
		ve.Errors = append(ve.Errors, "lookup.default must not be empty")
	}

	if settings.Sentry.Enabled && settings.Sentry.DSN == "" {
		ve.Errors = append(ve.Errors, "sentry.dsn is required when sentry.enabled is true")
	}

	if len(ve.Errors) > 0 {
		return errors.New(ve).
			Component("conf").
			Category(errors.CategoryConfiguration).
			Context("error_count", len(ve.Errors)).
			Build()
	}

	return nil
}

func validateLogSettings(cfg *logger.LoggingConfig) error {
	if _, err := logger.ParseLevel(cfg.DefaultLevel); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch cfg.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format: unsupported format %q", cfg.Format)
	}
	for module, level := range cfg.ModuleLevels {
		if _, err := logger.ParseLevel(level); err != nil {
			return fmt.Errorf("log.module_levels.%s: %w", module, err)
		}
	}
	return nil
}
