// Package cli implements the cobra-based CLI commands for tnoshape.
//
// Each group of subcommands (scale, index, combinatorics, csv, copy,
// bezier) is defined in its own file within this package. This file defines
// the root command that serves as the parent for all subcommands and
// handles global flags and configuration.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/tnoshape/internal/config"
	"github.com/shinji-kodama/tnoshape/internal/model"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command,
// which makes them available to every subcommand automatically.
var (
	// jsonOutput forces JSON output regardless of the config file.
	jsonOutput bool

	// yamlOutput forces YAML output regardless of the config file.
	// --json wins when both are set.
	yamlOutput bool

	// verbose enables detailed logging output on stderr.
	verbose bool

	// configPath is the --config flag value. Empty means look for
	// .tnoshape.yaml in the working directory.
	configPath string

	// cfg is the configuration loaded by the root command's
	// PersistentPreRunE before any subcommand runs.
	cfg = config.Default()
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
//
// The root command itself does not perform any action. It loads the
// configuration file, provides help text and global flags, and hosts the
// subcommands.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tnoshape",
		Short: "Geometry and data helpers for TNO shape drawing",
		Long: `tnoshape exposes the helpers used to build TNO shape outlines:
point scaling, index wrapping, factorials and combinations, CSV loading,
JSON deep copies and Bezier outline sampling.

Negative numbers must follow "--" so they are not read as flags:
  tnoshape index -- 5 -1`,

		// SilenceUsage prevents cobra from printing usage on every error.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// Execute formats errors itself (text or JSON based on --json).
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		// Load the config once, before any subcommand's RunE.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
			VerboseLog("Loaded config (output=%s, csv.encoding=%q, bezier.samples=%d)",
				cfg.Output, cfg.CSV.Encoding, cfg.Bezier.Samples)
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&yamlOutput, "yaml", false, "Output in YAML format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ./"+config.DefaultFileName+")")

	rootCmd.AddCommand(NewMulCommand())
	rootCmd.AddCommand(NewDivCommand())
	rootCmd.AddCommand(NewIndexCommand())
	rootCmd.AddCommand(NewFactorialCommand())
	rootCmd.AddCommand(NewCombinationCommand())
	rootCmd.AddCommand(NewCSVCommand())
	rootCmd.AddCommand(NewCopyCommand())
	rootCmd.AddCommand(NewBezierCommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// CLIError types carry their own exit codes; other errors default to
// exit code 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		if cliErr, ok := err.(*model.CLIError); ok {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		printError(err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		// Errors go to stderr even in JSON mode; stdout is reserved for
		// successful command output.
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		if underlying != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", message)
		}
	}
}

// VerboseLog prints a message to stderr only when verbose mode is enabled.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}

// outputFormat resolves the effective output format. Flags take
// precedence over the config file, and --json over --yaml.
func outputFormat() model.OutputFormat {
	switch {
	case jsonOutput:
		return model.FormatJSON
	case yamlOutput:
		return model.FormatYAML
	default:
		return cfg.Output
	}
}
