package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/tnoshape/internal/model"
)

// printResult writes v to w in the effective output format. text renders
// the plain-text form; it is only called for FormatText.
//
// JSON cannot represent NaN or ±Inf, so results holding them fail to
// render in JSON mode and are reported as ExitGeneralError.
func printResult(w io.Writer, v interface{}, text func(io.Writer)) error {
	switch outputFormat() {
	case model.FormatJSON:
		return writeJSON(w, v)
	case model.FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return model.WrapCLIError(model.ExitGeneralError, "failed to render YAML output", err)
		}
		fmt.Fprint(w, string(data))
	default:
		text(w)
	}
	return nil
}

// writeJSON writes v to w as indented JSON followed by a newline.
func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to render JSON output", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

// formatNumber renders a float with the shortest representation that
// round-trips, so whole numbers print without a decimal point.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// parseFloatArg parses a positional argument as a float64. name is used in
// the error message.
func parseFloatArg(name, value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, model.WrapCLIError(model.ExitInvalidInput,
			fmt.Sprintf("invalid %s %q: expected a number", name, value), err)
	}
	return f, nil
}

// parseIntArg parses a positional argument as an int. name is used in the
// error message.
func parseIntArg(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, model.WrapCLIError(model.ExitInvalidInput,
			fmt.Sprintf("invalid %s %q: expected an integer", name, value), err)
	}
	return n, nil
}
