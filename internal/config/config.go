// Package config provides configuration for the attack-probe tool.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/mailbox-attack-go/internal/errors"
)

// MaxVerbosity is the highest supported verbosity level.
const MaxVerbosity = 2

// Config holds all program configuration.
type Config struct {
	// 0=nothing, 1=summary, 2=running commentary per position
	Verbosity int `env:"ATTACK_PROBE_VERBOSITY"`

	// Number of probe workers; 0 means one per CPU.
	Workers int `env:"ATTACK_PROBE_WORKERS"`

	// Stop after this many failed positions; 0 means never.
	MaxErrors int `env:"ATTACK_PROBE_MAX_ERRORS"`

	Output OutputConfig
	Query  QueryConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     *NewOutputConfig(),
		Query:      *NewQueryConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > MaxVerbosity {
		return fmt.Errorf("verbosity %d outside 0..%d: %w", c.Verbosity, MaxVerbosity, errors.ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("worker count %d is negative: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.MaxErrors < 0 {
		return fmt.Errorf("error limit %d is negative: %w", c.MaxErrors, errors.ErrInvalidConfig)
	}
	return c.Query.Validate()
}

// Logf writes to the log stream when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...any) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
