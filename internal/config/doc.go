// Package config loads the optional tnoshape configuration file.
//
// The file is YAML (default name .tnoshape.yaml in the working directory)
// and is decoded with gopkg.in/yaml.v3 in strict mode, so misspelled keys
// are reported instead of silently ignored. Every field has a default, and
// a missing default file is not an error.
package config
