package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidateConfig performs validation on the GlobalConfig structure.
func ValidateConfig(cfg *GlobalConfig) error {
	validate := validator.New()

	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "trace", "debug", "info", "warn", "error", "fatal", "panic":
			return true
		}
		return false
	})

	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "console", "json", "text":
			return true
		}
		return false
	})

	if err := validate.Struct(cfg); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			messages := make([]string, 0, len(validationErrors))
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf(
					"field '%s' failed validation '%s'", fieldErr.Namespace(), fieldErr.Tag()))
			}
			return fmt.Errorf("config validation failed: %s", strings.Join(messages, "; "))
		}
		return fmt.Errorf("config validation failed: %w", err)
	}

	if len(cfg.ToolsConfig.ResolveTools()) == 0 {
		return fmt.Errorf("config validation failed: no tools enabled")
	}

	return nil
}
