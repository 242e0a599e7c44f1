package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Point is a 2D coordinate pair used for shape geometry.
// It is a value type: helpers in the geom package always return a new
// Point and never modify their input.
type Point struct {
	// X is the horizontal coordinate.
	X float64 `json:"x" yaml:"x"`

	// Y is the vertical coordinate.
	Y float64 `json:"y" yaml:"y"`
}

// String returns the point formatted as "(x, y)" using the shortest
// representation that round-trips each coordinate.
func (p Point) String() string {
	return fmt.Sprintf("(%s, %s)",
		strconv.FormatFloat(p.X, 'g', -1, 64),
		strconv.FormatFloat(p.Y, 'g', -1, 64))
}

// Table is a CSV table: an ordered sequence of rows, each an ordered
// sequence of string cells. Rows may have different lengths because the
// loader performs no width enforcement.
type Table [][]string

// Width returns the length of the longest row, or 0 for an empty table.
func (t Table) Width() int {
	width := 0
	for _, row := range t {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// Header returns the first row of the table, or nil if the table is empty.
func (t Table) Header() []string {
	if len(t) == 0 {
		return nil
	}
	return t[0]
}

// OutputFormat selects how the CLI renders command results.
type OutputFormat string

const (
	// FormatText renders results as plain human-readable text.
	FormatText OutputFormat = "text"

	// FormatJSON renders results as indented JSON.
	FormatJSON OutputFormat = "json"

	// FormatYAML renders results as YAML.
	FormatYAML OutputFormat = "yaml"
)

// String returns the string representation of OutputFormat.
func (f OutputFormat) String() string {
	return string(f)
}

// IsValid checks whether the OutputFormat value is one of the
// predefined formats.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// ParseOutputFormat converts a string to an OutputFormat.
// Matching is case-insensitive. Returns an error for unknown formats.
func ParseOutputFormat(s string) (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(s))
	if !format.IsValid() {
		return "", fmt.Errorf("invalid output format: %q (valid: text, json, yaml)", s)
	}
	return format, nil
}

// ExitCode defines the CLI exit codes. These codes allow scripts to
// programmatically determine the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitInvalidInput indicates a command argument could not be parsed
	// or violates a precondition (e.g. indexing an empty sequence).
	ExitInvalidInput ExitCode = 2

	// ExitInputNotFound indicates an input file does not exist.
	ExitInputNotFound ExitCode = 3

	// ExitParseError indicates an input file could not be decoded
	// (bad text encoding, malformed JSON, non-numeric coordinates).
	ExitParseError ExitCode = 4

	// ExitConfigError indicates the configuration file is missing or invalid.
	ExitConfigError ExitCode = 5
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
