package model

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPoint_String verifies the compact "(x, y)" rendering used in text output.
func TestPoint_String(t *testing.T) {
	tests := []struct {
		point    Point
		expected string
	}{
		{Point{X: 0, Y: 0}, "(0, 0)"},
		{Point{X: 1.5, Y: -2}, "(1.5, -2)"},
		{Point{X: math.Inf(1), Y: math.NaN()}, "(+Inf, NaN)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.point.String())
		})
	}
}

// TestTable_Width checks that Width reports the longest row, since the
// loader does not enforce a fixed column count.
func TestTable_Width(t *testing.T) {
	assert.Equal(t, 0, Table(nil).Width())
	assert.Equal(t, 1, Table{{""}}.Width())
	assert.Equal(t, 3, Table{{"a"}, {"b", "c", "d"}, {"e", "f"}}.Width())
}

// TestTable_Header verifies the first row is returned as the header.
func TestTable_Header(t *testing.T) {
	assert.Nil(t, Table{}.Header())
	assert.Equal(t, []string{"x", "y"}, Table{{"x", "y"}, {"1", "2"}}.Header())
}

// TestOutputFormat_IsValid checks that only defined formats pass validation.
func TestOutputFormat_IsValid(t *testing.T) {
	assert.True(t, FormatText.IsValid())
	assert.True(t, FormatJSON.IsValid())
	assert.True(t, FormatYAML.IsValid())
	assert.False(t, OutputFormat("xml").IsValid())
	assert.False(t, OutputFormat("").IsValid())
}

// TestParseOutputFormat verifies string-to-format conversion,
// including case normalization and error cases.
func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected OutputFormat
		hasError bool
	}{
		{"text", FormatText, false},
		{"json", FormatJSON, false},
		{"YAML", FormatYAML, false}, // case insensitive
		{"csv", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseOutputFormat(tt.input)
			if tt.hasError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

// TestCLIError_Error verifies message formatting with and without
// an underlying error.
func TestCLIError_Error(t *testing.T) {
	plain := NewCLIError(ExitInvalidInput, "bad argument")
	assert.Equal(t, "bad argument", plain.Error())
	assert.Equal(t, ExitInvalidInput, plain.Code)

	wrapped := WrapCLIError(ExitInputNotFound, "file not found", errors.New("no such file"))
	assert.Equal(t, "file not found: no such file", wrapped.Error())
}

// TestCLIError_Unwrap confirms errors.Is and errors.As see through CLIError.
func TestCLIError_Unwrap(t *testing.T) {
	sentinel := errors.New("sentinel")
	var err error = WrapCLIError(ExitParseError, "decode failed", sentinel)

	assert.True(t, errors.Is(err, sentinel))

	var cliErr *CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, ExitParseError, cliErr.Code)
}
