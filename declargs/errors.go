package declargs

import (
	"fmt"
	"strings"
)

// ErrorType categorizes configuration and command-line errors
type ErrorType string

const (
	// Raised by New for an invalid schema
	ErrorTypeDuplicateName  ErrorType = "duplicate_name"
	ErrorTypeDuplicateAlias ErrorType = "duplicate_alias"
	ErrorTypeEmptyName      ErrorType = "empty_name"
	ErrorTypeInvalidType    ErrorType = "invalid_type"
	ErrorTypeInvalidDefault ErrorType = "invalid_default"

	// Raised by Parse and ParseString for bad user input
	ErrorTypeUnknownOption  ErrorType = "unknown_option"
	ErrorTypeMalformedInput ErrorType = "malformed_input"
)

// ConfigError reports a mistake in the schema. It is never caused by end-user
// input; the fix is to change the schema.
type ConfigError struct {
	Type    ErrorType
	Name    string // Offending option name or alias
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// newConfigError creates a ConfigError with a formatted message
func newConfigError(typ ErrorType, name, format string, args ...any) *ConfigError {
	return &ConfigError{
		Type:    typ,
		Name:    name,
		Message: fmt.Sprintf(format, args...),
	}
}

// CLIError reports bad command-line input. Callers usually print it together
// with the generated help and exit non-zero.
type CLIError struct {
	Type        ErrorType
	Option      string // Offending option as typed, without dashes
	Message     string
	Suggestions []string
	Cause       error
}

// Error returns the message without suggestions
func (e *CLIError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any
func (e *CLIError) Unwrap() error {
	return e.Cause
}

// NewCLIError creates a CLIError with the given type and message
func NewCLIError(typ ErrorType, message string) *CLIError {
	return &CLIError{
		Type:    typ,
		Message: message,
	}
}

// WithOption records the offending option
func (e *CLIError) WithOption(option string) *CLIError {
	e.Option = option
	return e
}

// WithSuggestion adds a suggestion to the error
func (e *CLIError) WithSuggestion(suggestion string) *CLIError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithCause adds an underlying cause to the error
func (e *CLIError) WithCause(cause error) *CLIError {
	e.Cause = cause
	return e
}

// Detail returns the message followed by one indented line per suggestion
func (e *CLIError) Detail() string {
	if len(e.Suggestions) == 0 {
		return e.Message
	}

	var builder strings.Builder
	builder.WriteString(e.Message)
	for _, suggestion := range e.Suggestions {
		builder.WriteString("\n  ")
		builder.WriteString(suggestion)
	}
	return builder.String()
}
