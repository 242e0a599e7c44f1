// Package cli — combin.go implements the "factorial" and "combination"
// commands.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/tnoshape/internal/combin"
)

type factorialResult struct {
	N         int     `json:"n" yaml:"n"`
	Factorial float64 `json:"factorial" yaml:"factorial"`
}

type combinationResult struct {
	P           int     `json:"p" yaml:"p"`
	N           int     `json:"n" yaml:"n"`
	Combination float64 `json:"combination" yaml:"combination"`
}

// NewFactorialCommand creates the "factorial" cobra command.
func NewFactorialCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "factorial <n>",
		Short:   "Compute n!",
		Example: `  tnoshape factorial 5   # 120`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseIntArg("n", args[0])
			if err != nil {
				return err
			}
			if n < 0 {
				VerboseLog("factorial of negative %d is undefined; result is 1", n)
			}
			result := factorialResult{N: n, Factorial: combin.Factorial(n)}
			return printResult(cmd.OutOrStdout(), result, func(w io.Writer) {
				fmt.Fprintln(w, formatNumber(result.Factorial))
			})
		},
	}
}

// NewCombinationCommand creates the "combination" cobra command.
// Arguments follow the helper's order: p (chosen) first, then n (total).
func NewCombinationCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "combination <p> <n>",
		Short:   "Compute the binomial coefficient n! / (p! (n-p)!)",
		Example: `  tnoshape combination 2 5   # 10`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseIntArg("p", args[0])
			if err != nil {
				return err
			}
			n, err := parseIntArg("n", args[1])
			if err != nil {
				return err
			}
			result := combinationResult{P: p, N: n, Combination: combin.Combination(p, n)}
			return printResult(cmd.OutOrStdout(), result, func(w io.Writer) {
				fmt.Fprintln(w, formatNumber(result.Combination))
			})
		},
	}
}
