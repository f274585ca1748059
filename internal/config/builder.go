package config

import (
	"io"

	"github.com/lgbarn/mailbox-attack-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithWorkers sets the number of probe workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithMaxErrors sets how many failed positions stop a run.
func (b *ConfigBuilder) WithMaxErrors(n int) *ConfigBuilder {
	b.cfg.MaxErrors = n
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithSVGDir sets the directory for attack-map SVGs.
func (b *ConfigBuilder) WithSVGDir(dir string) *ConfigBuilder {
	b.cfg.Output.SVGDir = dir
	return b
}

// WithStats enables table statistics.
func (b *ConfigBuilder) WithStats(enabled bool) *ConfigBuilder {
	b.cfg.Output.Stats = enabled
	return b
}

// WithQuery enables the single-square query.
func (b *ConfigBuilder) WithQuery(sq chess.Square, by chess.Colour) *ConfigBuilder {
	b.cfg.Query = QueryConfig{Enabled: true, Square: sq, By: by}
	return b
}
