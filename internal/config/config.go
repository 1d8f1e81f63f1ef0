// Package config handles objtool configuration loading and management.
package config

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/Faultbox/wavefront/pkg/encoding"
)

// Config holds all objtool settings.
type Config struct {
	Parser  ParserConfig  `yaml:"parser"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// ParserConfig holds OBJ/MTL parsing settings.
type ParserConfig struct {
	Encoding       string   `yaml:"encoding"`        // WHATWG label, empty for UTF-8
	MaterialPaths  []string `yaml:"material_paths"`  // Extra directories searched for mtllib files
	MaterialCommit string   `yaml:"material_commit"` // "compat" or "named"
}

// OutputConfig holds command output settings.
type OutputConfig struct {
	Format string `yaml:"format"` // "text" or "yaml"
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Parser: ParserConfig{
			Encoding:       "",
			MaterialPaths:  nil,
			MaterialCommit: "compat",
		},
		Output: OutputConfig{
			Format: "text",
		},
		Logging: LoggingConfig{
			Level:   "warn",
			LogFile: "",
		},
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error

	if _, encErr := encoding.Lookup(c.Parser.Encoding); encErr != nil {
		err = multierr.Append(err, fmt.Errorf("parser.encoding: %w", encErr))
	}
	switch c.Parser.MaterialCommit {
	case "compat", "named":
	default:
		err = multierr.Append(err, fmt.Errorf("parser.material_commit: unknown policy %q", c.Parser.MaterialCommit))
	}
	switch c.Output.Format {
	case "text", "yaml":
	default:
		err = multierr.Append(err, fmt.Errorf("output.format: unknown format %q", c.Output.Format))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		err = multierr.Append(err, fmt.Errorf("logging.level: unknown level %q", c.Logging.Level))
	}

	return err
}
