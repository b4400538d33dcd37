package config

import (
	"fmt"
	"strings"
)

// validLogLevels are the accepted log level names.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats are the accepted log format names.
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Path    string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// HasErrors returns true if there are validation errors.
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// Validator validates catalog server configuration.
type Validator struct {
	errors ValidationErrors
}

// NewValidator creates a new configuration validator.
func NewValidator() *Validator {
	return &Validator{
		errors: make(ValidationErrors, 0),
	}
}

// ValidateConfig validates a catalog server configuration.
func ValidateConfig(config *Config) error {
	v := NewValidator()
	return v.Validate(config)
}

// Validate validates the configuration and returns any errors.
func (v *Validator) Validate(config *Config) error {
	v.errors = make(ValidationErrors, 0)

	if config == nil {
		v.addError("", "configuration is nil")
		return v.errors
	}

	v.validateServer(config)
	v.validateAdmin(config)
	v.validateCatalog(config)
	v.validateRateLimit(config)
	v.validateLog(config)

	if v.errors.HasErrors() {
		return v.errors
	}
	return nil
}

func (v *Validator) addError(path, message string) {
	v.errors = append(v.errors, ValidationError{Path: path, Message: message})
}

func (v *Validator) validateServer(config *Config) {
	if config.Server.Port < 0 || config.Server.Port > 65535 {
		v.addError("server.port", fmt.Sprintf("port %d out of range", config.Server.Port))
	}
}

func (v *Validator) validateAdmin(config *Config) {
	if !config.Admin.Enabled {
		return
	}
	if config.Admin.Port < 0 || config.Admin.Port > 65535 {
		v.addError("admin.port", fmt.Sprintf("port %d out of range", config.Admin.Port))
	}
	if config.Admin.Port != 0 && config.Admin.Port == config.Server.Port {
		v.addError("admin.port", "admin port must differ from server port")
	}
}

func (v *Validator) validateCatalog(config *Config) {
	if config.Catalog.DataFile == "" {
		v.addError("catalog.dataFile", "data file path is required")
	}
}

func (v *Validator) validateRateLimit(config *Config) {
	if !config.RateLimit.Enabled {
		return
	}
	if config.RateLimit.RequestsPerSecond <= 0 {
		v.addError("rateLimit.requestsPerSecond", "must be positive when rate limiting is enabled")
	}
	if config.RateLimit.Burst < 0 {
		v.addError("rateLimit.burst", "must be non-negative")
	}
}

func (v *Validator) validateLog(config *Config) {
	if !validLogLevels[config.Log.Level] {
		v.addError("log.level", fmt.Sprintf("unknown log level %q", config.Log.Level))
	}
	if !validLogFormats[config.Log.Format] {
		v.addError("log.format", fmt.Sprintf("unknown log format %q", config.Log.Format))
	}
}
