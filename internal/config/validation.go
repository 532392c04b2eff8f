package config

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validSize validates the human-readable size format (e.g., "10MB", "1GB").
// Empty values are acceptable.
func validSize(fl validator.FieldLevel) bool {
	value := strings.ToUpper(strings.TrimSpace(fl.Field().String()))
	if value == "" {
		return true
	}
	re := regexp.MustCompile(`^\d+(B|KB|MB|GB|TB|PB)$`)
	return re.MatchString(value)
}
