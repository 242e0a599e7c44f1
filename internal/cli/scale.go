// Package cli — scale.go implements the "mul" and "div" commands, which
// scale a point by a scalar.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/tnoshape/internal/geom"
	"github.com/shinji-kodama/tnoshape/internal/model"
)

// NewMulCommand creates the "mul" cobra command.
func NewMulCommand() *cobra.Command {
	return newScaleCommand("mul", "Multiply a point by a scalar", geom.Mul)
}

// NewDivCommand creates the "div" cobra command. Division by zero prints
// ±Inf or NaN coordinates rather than failing.
func NewDivCommand() *cobra.Command {
	return newScaleCommand("div", "Divide a point by a scalar", geom.Div)
}

// newScaleCommand builds the shared shape of mul and div: three numeric
// positional arguments and a point result.
func newScaleCommand(use, short string, op func(model.Point, float64) model.Point) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <x> <y> <scalar>",
		Short: short,
		Example: fmt.Sprintf(`  tnoshape %s 2 3 4
  tnoshape %s --json -- -1.5 2 0.5`, use, use),
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScale(cmd.OutOrStdout(), use, args, op)
		},
	}
}

func runScale(w io.Writer, use string, args []string, op func(model.Point, float64) model.Point) error {
	x, err := parseFloatArg("x", args[0])
	if err != nil {
		return err
	}
	y, err := parseFloatArg("y", args[1])
	if err != nil {
		return err
	}
	scalar, err := parseFloatArg("scalar", args[2])
	if err != nil {
		return err
	}

	result := op(model.Point{X: x, Y: y}, scalar)
	VerboseLog("%s (%s, %s) by %s", use, formatNumber(x), formatNumber(y), formatNumber(scalar))

	return printResult(w, result, func(w io.Writer) {
		fmt.Fprintf(w, "%s %s\n", formatNumber(result.X), formatNumber(result.Y))
	})
}
