// Package cli — bezier.go implements the "bezier" command, which samples
// a Bezier outline from a CSV file of control points.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/tnoshape/internal/csvload"
	"github.com/shinji-kodama/tnoshape/internal/geom"
	"github.com/shinji-kodama/tnoshape/internal/model"
)

// bezierFlags holds the flag values for the bezier command.
type bezierFlags struct {
	// samples overrides bezier.samples from the config file when > 0.
	samples int

	// closed appends the first control point so the outline closes.
	closed bool

	// encoding overrides csv.encoding from the config file.
	encoding string
}

// NewBezierCommand creates the "bezier" cobra command.
func NewBezierCommand() *cobra.Command {
	flags := &bezierFlags{}

	cmd := &cobra.Command{
		Use:   "bezier <file>",
		Short: "Sample a Bezier outline from CSV control points",
		Long: `Read control points from a CSV file with one "x,y" pair per line (a
header line is allowed) and print points sampled along the Bezier curve
they define.

Examples:
  tnoshape bezier ctrl.csv
  tnoshape bezier --samples 64 --closed ctrl.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBezier(cmd.Context(), cmd.OutOrStdout(), args[0], flags)
		},
	}

	cmd.Flags().IntVar(&flags.samples, "samples", 0, "Number of segments to sample (default: config or 16)")
	cmd.Flags().BoolVar(&flags.closed, "closed", false, "Close the outline by repeating the first control point")
	cmd.Flags().StringVar(&flags.encoding, "encoding", "", "Text encoding label when the file has no BOM")

	return cmd
}

func runBezier(ctx context.Context, w io.Writer, path string, flags *bezierFlags) error {
	table, err := loadTable(ctx, path, flags.encoding)
	if err != nil {
		return err
	}

	ctrl, err := csvload.Points(table)
	if err != nil {
		return model.WrapCLIError(model.ExitParseError, fmt.Sprintf("invalid control points in %s", path), err)
	}
	if len(ctrl) == 0 {
		return model.NewCLIError(model.ExitInvalidInput, fmt.Sprintf("no control points in %s", path))
	}
	if flags.closed {
		ctrl = geom.Closed(ctrl)
	}

	samples := flags.samples
	if samples <= 0 {
		samples = cfg.Bezier.Samples
	}
	VerboseLog("Sampling %d control point(s) into %d segment(s)", len(ctrl), samples)

	outline := geom.Outline(ctrl, samples)
	return printResult(w, outline, func(w io.Writer) {
		for _, p := range outline {
			fmt.Fprintf(w, "%s\t%s\n", formatNumber(p.X), formatNumber(p.Y))
		}
	})
}
