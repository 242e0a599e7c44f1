package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/tnoshape/internal/model"
)

// DefaultFileName is the configuration file looked up in the working
// directory when no explicit path is given.
const DefaultFileName = ".tnoshape.yaml"

// DefaultSamples is the number of Bezier segments sampled per outline.
const DefaultSamples = 16

// Config is the decoded configuration file.
type Config struct {
	// Output is the default rendering for command results.
	// Overridden by the --json and --yaml flags.
	Output model.OutputFormat `yaml:"output"`

	// CSV holds settings for reading CSV input.
	CSV CSVConfig `yaml:"csv"`

	// Bezier holds settings for outline sampling.
	Bezier BezierConfig `yaml:"bezier"`
}

// CSVConfig configures CSV loading.
type CSVConfig struct {
	// Encoding is a WHATWG encoding label used when the file has no BOM.
	// Empty means UTF-8.
	Encoding string `yaml:"encoding"`
}

// BezierConfig configures outline sampling.
type BezierConfig struct {
	// Samples is the number of segments per outline. Must be positive.
	Samples int `yaml:"samples"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Output: model.FormatText,
		Bezier: BezierConfig{Samples: DefaultSamples},
	}
}

// Validate checks field values after decoding.
func (c *Config) Validate() error {
	if !c.Output.IsValid() {
		return fmt.Errorf("invalid output format %q (valid: text, json, yaml)", c.Output)
	}
	if c.Bezier.Samples < 1 {
		return fmt.Errorf("bezier.samples must be positive, got %d", c.Bezier.Samples)
	}
	return nil
}

// Parse decodes YAML configuration on top of the defaults and validates
// the result. Unknown keys are errors. Empty input yields the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads the configuration file at path.
//
// When path is empty, DefaultFileName is tried and its absence yields the
// defaults. An explicitly named file that does not exist is a CLIError with
// ExitConfigError, as is any parse or validation failure.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return nil, model.WrapCLIError(
			model.ExitConfigError,
			fmt.Sprintf("failed to read config file: %s", path),
			err,
		)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitConfigError, fmt.Sprintf("invalid config file: %s", path), err)
	}
	return cfg, nil
}
