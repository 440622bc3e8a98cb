package config

import (
	"io"

	"github.com/lgbarn/fenkit-go/internal/chess"
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

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithColour enables coloured diagrams.
func (b *ConfigBuilder) WithColour(enabled bool) *ConfigBuilder {
	b.cfg.Output.Colour = enabled
	return b
}

// WithLabels controls diagram coordinates.
func (b *ConfigBuilder) WithLabels(enabled bool) *ConfigBuilder {
	b.cfg.Output.Labels = enabled
	return b
}

// WithIndent pretty-prints JSON.
func (b *ConfigBuilder) WithIndent(enabled bool) *ConfigBuilder {
	b.cfg.Output.Indent = enabled
	return b
}

// WithDuplicateSuppression enables duplicate suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
	return b
}

// WithDuplicateFile routes suppressed duplicates to w.
func (b *ConfigBuilder) WithDuplicateFile(w io.Writer) *ConfigBuilder {
	b.cfg.Duplicate.DuplicateFile = w
	return b
}

// WithCrossCheck enables cross-checking against the reference library.
func (b *ConfigBuilder) WithCrossCheck(enabled bool) *ConfigBuilder {
	b.cfg.CrossCheck = enabled
	return b
}

// WithMoves sets the moves applied to every position.
func (b *ConfigBuilder) WithMoves(moves []chess.Move) *ConfigBuilder {
	b.cfg.Moves = moves
	return b
}

// WithWorkers sets the worker count.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithPattern adds a position pattern or full FEN to match.
func (b *ConfigBuilder) WithPattern(pattern string) *ConfigBuilder {
	b.cfg.Filter.Patterns = append(b.cfg.Filter.Patterns, pattern)
	return b
}

// WithMaterial sets the material balance to match.
func (b *ConfigBuilder) WithMaterial(balance string, exact bool) *ConfigBuilder {
	b.cfg.Filter.Material = balance
	b.cfg.Filter.MaterialExact = exact
	return b
}

// WithNegatedFilter keeps only the positions that fail the filter.
func (b *ConfigBuilder) WithNegatedFilter(negate bool) *ConfigBuilder {
	b.cfg.Filter.Negate = negate
	return b
}
