// Package cli — csv.go implements the "csv" command, which loads a CSV file
// through the asynchronous loader and prints the resulting table.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/tnoshape/internal/csvload"
	"github.com/shinji-kodama/tnoshape/internal/model"
)

// csvFlags holds the flag values for the csv command.
type csvFlags struct {
	// encoding overrides csv.encoding from the config file.
	encoding string
}

// NewCSVCommand creates the "csv" cobra command.
func NewCSVCommand() *cobra.Command {
	flags := &csvFlags{}

	cmd := &cobra.Command{
		Use:   "csv <file>",
		Short: "Load a CSV file into rows of cells",
		Long: `Load a CSV file and print its rows.

Lines are split on LF or CRLF and cells on commas. Quoted fields are not
interpreted. Text output prints one row per line with tab separated cells.

Examples:
  tnoshape csv shape.csv
  tnoshape csv --encoding windows-1252 legacy.csv
  tnoshape csv --json shape.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCSV(cmd.Context(), cmd.OutOrStdout(), args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.encoding, "encoding", "", "Text encoding label when the file has no BOM (default: config or UTF-8)")

	return cmd
}

func runCSV(ctx context.Context, w io.Writer, path string, flags *csvFlags) error {
	table, err := loadTable(ctx, path, flags.encoding)
	if err != nil {
		return err
	}
	VerboseLog("Loaded %d row(s), widest row has %d cell(s)", len(table), table.Width())

	return printResult(w, table, func(w io.Writer) {
		for _, row := range table {
			fmt.Fprintln(w, strings.Join(row, "\t"))
		}
	})
}

// loadTable loads path with the given encoding label, falling back to the
// configured encoding. Loader errors that are not already CLIErrors are
// reported as ExitParseError.
func loadTable(ctx context.Context, path, encoding string) (model.Table, error) {
	if encoding == "" {
		encoding = cfg.CSV.Encoding
	}
	VerboseLog("Reading %s (encoding=%q)", path, encoding)

	table, err := csvload.LoadFile(ctx, path, csvload.WithEncoding(encoding))
	if err != nil {
		var cliErr *model.CLIError
		if errors.As(err, &cliErr) {
			return nil, err
		}
		return nil, model.WrapCLIError(model.ExitParseError, fmt.Sprintf("failed to load CSV file: %s", path), err)
	}
	return table, nil
}
