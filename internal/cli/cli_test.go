// Package cli — cli_test.go runs the commands in-process through the root
// command, capturing stdout. No external processes are started.
package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/tnoshape/internal/model"
)

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// writeFile writes content to name inside a fresh temp dir and returns
// the path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// requireExitCode asserts err is a CLIError carrying code.
func requireExitCode(t *testing.T, err error, code model.ExitCode) {
	t.Helper()
	require.Error(t, err)
	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr), "expected CLIError, got %T: %v", err, err)
	assert.Equal(t, code, cliErr.Code)
}

func TestMulDivCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "mul", args: []string{"mul", "2", "3", "4"}, want: "8 12\n"},
		{name: "div", args: []string{"div", "3", "9", "3"}, want: "1 3\n"},
		{name: "negative after separator", args: []string{"mul", "--", "-1.5", "2", "2"}, want: "-3 4\n"},
		{name: "div by zero", args: []string{"div", "1", "0", "0"}, want: "+Inf NaN\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestMulCommand_JSON(t *testing.T) {
	out, err := run(t, "mul", "--json", "1", "2", "0.5")
	require.NoError(t, err)

	var p model.Point
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, model.Point{X: 0.5, Y: 1}, p)
}

// TestDivCommand_JSONInfinity verifies non-finite results cannot be
// rendered as JSON.
func TestDivCommand_JSONInfinity(t *testing.T) {
	_, err := run(t, "div", "--json", "1", "1", "0")
	requireExitCode(t, err, model.ExitGeneralError)
}

func TestScaleCommand_InvalidNumber(t *testing.T) {
	_, err := run(t, "mul", "one", "2", "3")
	requireExitCode(t, err, model.ExitInvalidInput)
}

func TestIndexCommand(t *testing.T) {
	out, err := run(t, "index", "--", "5", "-1")
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)

	out, err = run(t, "index", "--yaml", "5", "12")
	require.NoError(t, err)
	assert.Contains(t, out, "wrapped: 2")

	_, err = run(t, "index", "0", "3")
	requireExitCode(t, err, model.ExitInvalidInput)
}

func TestFactorialAndCombinationCommands(t *testing.T) {
	out, err := run(t, "factorial", "5")
	require.NoError(t, err)
	assert.Equal(t, "120\n", out)

	out, err = run(t, "factorial", "0")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	out, err = run(t, "combination", "2", "5")
	require.NoError(t, err)
	assert.Equal(t, "10\n", out)

	out, err = run(t, "combination", "--json", "3", "6")
	require.NoError(t, err)
	assert.JSONEq(t, `{"p": 3, "n": 6, "combination": 20}`, out)
}

func TestCSVCommand(t *testing.T) {
	path := writeFile(t, "table.csv", "a,b\r\n1,2")

	out, err := run(t, "csv", path)
	require.NoError(t, err)
	assert.Equal(t, "a\tb\n1\t2\n", out)

	out, err = run(t, "csv", "--json", path)
	require.NoError(t, err)
	var table model.Table
	require.NoError(t, json.Unmarshal([]byte(out), &table))
	assert.Equal(t, model.Table{{"a", "b"}, {"1", "2"}}, table)
}

func TestCSVCommand_Encoding(t *testing.T) {
	path := writeFile(t, "legacy.csv", "caf\xe9,1")

	out, err := run(t, "csv", "--encoding", "windows-1252", path)
	require.NoError(t, err)
	assert.Equal(t, "café\t1\n", out)

	_, err = run(t, "csv", "--encoding", "klingon", path)
	requireExitCode(t, err, model.ExitParseError)
}

func TestCSVCommand_NotFound(t *testing.T) {
	_, err := run(t, "csv", filepath.Join(t.TempDir(), "missing.csv"))
	requireExitCode(t, err, model.ExitInputNotFound)
}

func TestCopyCommand(t *testing.T) {
	path := writeFile(t, "shape.jsonc", `{
  // name of the shape
  "name": "ellipse",
  "points": [{"x": 1, "y": 2},],
}`)

	out, err := run(t, "copy", path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "ellipse", "points": [{"x": 1, "y": 2}]}`, out)

	out, err = run(t, "copy", "--yaml", path)
	require.NoError(t, err)
	assert.Contains(t, out, "name: ellipse")
}

func TestCopyCommand_Stdin(t *testing.T) {
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(`[1, "two", null]`))
	cmd.SetArgs([]string{"copy", "-"})

	require.NoError(t, cmd.Execute())
	assert.JSONEq(t, `[1, "two", null]`, out.String())
}

func TestCopyCommand_Invalid(t *testing.T) {
	_, err := run(t, "copy", writeFile(t, "bad.json", `{"a": `))
	requireExitCode(t, err, model.ExitParseError)

	_, err = run(t, "copy", filepath.Join(t.TempDir(), "none.json"))
	requireExitCode(t, err, model.ExitInputNotFound)
}

func TestBezierCommand(t *testing.T) {
	path := writeFile(t, "ctrl.csv", "x,y\n0,0\n10,0\n")

	out, err := run(t, "bezier", "--samples", "2", path)
	require.NoError(t, err)
	assert.Equal(t, "0\t0\n5\t0\n10\t0\n", out)
}

func TestBezierCommand_Closed(t *testing.T) {
	path := writeFile(t, "ctrl.csv", "0,0\n4,0\n")

	out, err := run(t, "bezier", "--json", "--samples", "1", "--closed", path)
	require.NoError(t, err)

	var outline []model.Point
	require.NoError(t, json.Unmarshal([]byte(out), &outline))
	require.Len(t, outline, 2)
	assert.Equal(t, model.Point{X: 0, Y: 0}, outline[0])
	assert.Equal(t, model.Point{X: 0, Y: 0}, outline[1], "closed outline ends at the first point")
}

func TestBezierCommand_Errors(t *testing.T) {
	_, err := run(t, "bezier", writeFile(t, "bad.csv", "x,y\n1,2\n3,z"))
	requireExitCode(t, err, model.ExitParseError)

	_, err = run(t, "bezier", writeFile(t, "empty.csv", "x,y\n"))
	requireExitCode(t, err, model.ExitInvalidInput)
}

// TestConfigFile verifies the config file drives output format and
// sampling defaults, and that flags still override it.
func TestConfigFile(t *testing.T) {
	configFile := writeFile(t, "tnoshape.yaml", "output: json\nbezier:\n  samples: 4\n")

	out, err := run(t, "--config", configFile, "factorial", "4")
	require.NoError(t, err)
	assert.JSONEq(t, `{"n": 4, "factorial": 24}`, out)

	out, err = run(t, "--config", configFile, "--yaml", "factorial", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "factorial: 6")

	ctrl := writeFile(t, "ctrl.csv", "0,0\n1,1")
	out, err = run(t, "--config", configFile, "bezier", ctrl)
	require.NoError(t, err)
	var outline []model.Point
	require.NoError(t, json.Unmarshal([]byte(out), &outline))
	assert.Len(t, outline, 5)
}

func TestConfigFile_Invalid(t *testing.T) {
	_, err := run(t, "--config", writeFile(t, "bad.yaml", "output: xml\n"), "factorial", "1")
	requireExitCode(t, err, model.ExitConfigError)
}
