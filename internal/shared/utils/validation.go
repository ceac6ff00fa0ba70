package utils

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// String length limits
const (
	MaxNameLength    = 256
	MaxVersionLength = 128
	MaxLabelLength   = 64 // type, format, status
	MaxURLLength     = 2048
)

// FieldError describes a single invalid payload field
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateString validates a string field with length and content checks.
// Empty values are accepted; presence is enforced at binding time.
func ValidateString(value, fieldName string, maxLen int) error {
	if utf8.RuneCountInString(value) > maxLen {
		return &FieldError{Field: fieldName, Message: fmt.Sprintf("must not exceed %d characters", maxLen)}
	}

	if strings.Contains(value, "\x00") {
		return &FieldError{Field: fieldName, Message: "contains invalid characters"}
	}

	if !utf8.ValidString(value) {
		return &FieldError{Field: fieldName, Message: "must be valid UTF-8"}
	}

	return nil
}

// ValidateName validates a repository or package name
func ValidateName(name, fieldName string) error {
	return ValidateString(name, fieldName, MaxNameLength)
}

// ValidateVersion validates a package version string
func ValidateVersion(version string) error {
	return ValidateString(version, "version", MaxVersionLength)
}

// ValidateLabel validates short descriptive fields such as type, format and status
func ValidateLabel(value, fieldName string) error {
	return ValidateString(value, fieldName, MaxLabelLength)
}

// ValidateURL validates a repository base URL
func ValidateURL(url string) error {
	return ValidateString(url, "url", MaxURLLength)
}
