package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in one pass
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return strings.Join(msgs, "\n")
}

// ConfigRequirements defines required configuration for each environment
type ConfigRequirements struct {
	RequiredFields []string
	RequiredDriver string
}

var requirements = map[Environment]ConfigRequirements{
	Development: {},
	Test:        {},
	CI: {
		RequiredFields: []string{"db_password", "jwt_secret"},
		RequiredDriver: DriverPostgres,
	},
	Production: {
		RequiredFields: []string{"db_host", "db_user", "db_password", "db_name", "jwt_secret"},
		RequiredDriver: DriverPostgres,
	},
}

func fieldValue(cfg *Config, field string) string {
	switch field {
	case "db_host":
		return cfg.DBHost
	case "db_user":
		return cfg.DBUser
	case "db_password":
		return cfg.DBPassword
	case "db_name":
		return cfg.DBName
	case "jwt_secret":
		return cfg.JWTSecret
	}
	return ""
}

// ValidateConfig checks if the configuration meets the requirements for its environment
func ValidateConfig(cfg *Config) error {
	reqs := requirements[cfg.Environment]

	var errs ValidationErrors
	for _, field := range reqs.RequiredFields {
		if fieldValue(cfg, field) == "" {
			errs = append(errs, ValidationError{Field: field, Message: "is required in " + string(cfg.Environment)})
		}
	}

	switch cfg.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		errs = append(errs, ValidationError{Field: "db_driver", Message: fmt.Sprintf("unsupported driver %q", cfg.DBDriver)})
	}
	if reqs.RequiredDriver != "" && cfg.DBDriver != reqs.RequiredDriver {
		errs = append(errs, ValidationError{Field: "db_driver", Message: "must be " + reqs.RequiredDriver + " in " + string(cfg.Environment)})
	}

	if cfg.Environment == Production && !cfg.AuthRequired {
		errs = append(errs, ValidationError{Field: "auth_required", Message: "cannot be disabled in production"})
	}
	if cfg.AuthRequired && cfg.JWTSecret == "" {
		errs = append(errs, ValidationError{Field: "jwt_secret", Message: "is required when auth is enabled"})
	}
	if !cfg.AuthRequired && cfg.DefaultUserID == "" {
		errs = append(errs, ValidationError{Field: "default_user_id", Message: "is required when auth is disabled"})
	}

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port < 1 || port > 65535 {
		errs = append(errs, ValidationError{Field: "server_port", Message: fmt.Sprintf("invalid port %q", cfg.ServerPort)})
	}
	if cfg.RecipeCreateLimit < 0 {
		errs = append(errs, ValidationError{Field: "recipe_create_limit", Message: "must not be negative"})
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		errs = append(errs, ValidationError{Field: "log_format", Message: "must be text or json"})
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		errs = append(errs, ValidationError{Field: "log_level", Message: err.Error()})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
