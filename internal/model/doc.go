// Package model defines the value types shared across the tnoshape
// packages and CLI.
//
// This package contains pure data structures with no external dependencies.
// Point and Table are plain values owned by the caller; nothing here keeps
// state between calls.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
