// Package cli — copy.go implements the "copy" command, which deep-copies a
// JSON or JSONC document and prints the copy.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/tnoshape/internal/deepcopy"
	"github.com/shinji-kodama/tnoshape/internal/model"
)

// NewCopyCommand creates the "copy" cobra command.
func NewCopyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "copy <file>",
		Short: "Deep-copy a JSON/JSONC document",
		Long: `Read a JSON document (comments and trailing commas allowed), clone it
through a JSON round trip, and print the copy.

Text and JSON output print indented JSON; --yaml prints YAML. Use "-" to
read from stdin.

Examples:
  tnoshape copy shape.json
  tnoshape copy --yaml shape.jsonc`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCopy(cmd.InOrStdin(), cmd.OutOrStdout(), args[0])
		},
	}
}

func runCopy(stdin io.Reader, w io.Writer, path string) error {
	data, err := readInput(stdin, path)
	if err != nil {
		return err
	}

	doc, err := deepcopy.FromJSONC(data)
	if err != nil {
		return model.WrapCLIError(model.ExitParseError, fmt.Sprintf("invalid JSON document: %s", path), err)
	}

	clone, err := deepcopy.Value(doc)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to copy document", err)
	}
	VerboseLog("Copied document from %s", path)

	// Text output is the JSON form as well.
	if outputFormat() == model.FormatText {
		return writeJSON(w, clone)
	}
	return printResult(w, clone, nil)
}

// readInput reads the whole of path, or stdin when path is "-".
func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, model.WrapCLIError(model.ExitGeneralError, "failed to read stdin", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(model.ExitInputNotFound, fmt.Sprintf("input file not found: %s", path), err)
		}
		return nil, model.WrapCLIError(model.ExitGeneralError, fmt.Sprintf("failed to read %s", path), err)
	}
	return data, nil
}
