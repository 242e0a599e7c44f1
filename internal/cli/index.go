// Package cli — index.go implements the "index" command, which wraps an
// index into the bounds of a sequence of a given length.
package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/tnoshape/internal/geom"
	"github.com/shinji-kodama/tnoshape/internal/model"
)

// indexResult is the structured output of the index command.
type indexResult struct {
	Length  int `json:"length" yaml:"length"`
	Index   int `json:"index" yaml:"index"`
	Wrapped int `json:"wrapped" yaml:"wrapped"`
}

// NewIndexCommand creates the "index" cobra command.
func NewIndexCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "index <length> <index>",
		Short: "Wrap an index into [0, length) with floored modulo",
		Example: `  tnoshape index 5 7      # 2
  tnoshape index -- 5 -1  # 4`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndex(cmd.OutOrStdout(), args)
		},
	}
}

func runIndex(w io.Writer, args []string) error {
	length, err := parseIntArg("length", args[0])
	if err != nil {
		return err
	}
	idx, err := parseIntArg("index", args[1])
	if err != nil {
		return err
	}

	wrapped, err := geom.CheckedIndex(length, idx)
	if err != nil {
		return model.WrapCLIError(model.ExitInvalidInput, fmt.Sprintf("length must be positive, got %d", length), err)
	}

	result := indexResult{Length: length, Index: idx, Wrapped: wrapped}
	return printResult(w, result, func(w io.Writer) {
		fmt.Fprintln(w, strconv.Itoa(wrapped))
	})
}
