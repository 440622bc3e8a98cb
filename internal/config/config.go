// Package config provides configuration for the fenkit tools.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/lgbarn/fenkit-go/internal/chess"
	"github.com/lgbarn/fenkit-go/internal/errors"
)

// Verbosity levels.
const (
	Quiet   = 0 // errors only
	Normal  = 1 // warnings and a summary
	Verbose = 2 // running commentary
)

// Config holds all program configuration.
type Config struct {
	Verbosity int

	// Workers is the number of parallel record processors; 0 means
	// runtime.NumCPU().
	Workers int

	// CrossCheck verifies every produced FEN against an independent library.
	CrossCheck bool

	// Moves are applied, in order, to every position before output.
	Moves []chess.Move

	Output    *OutputConfig
	Duplicate *DuplicateConfig
	Filter    *FilterConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Normal,
		Output:     NewOutputConfig(),
		Duplicate:  NewDuplicateConfig(),
		Filter:     NewFilterConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// WorkerCount resolves Workers to a concrete count.
func (c *Config) WorkerCount() int {
	if c.Workers <= 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}

// Validate reports the first inconsistent setting.
func (c *Config) Validate() error {
	if c.Verbosity < Quiet || c.Verbosity > Verbose {
		return fmt.Errorf("%w: verbosity %d not in [%d,%d]", errors.ErrInvalidConfig, c.Verbosity, Quiet, Verbose)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: negative worker count %d", errors.ErrInvalidConfig, c.Workers)
	}
	if c.Output == nil || c.Duplicate == nil || c.Filter == nil {
		return fmt.Errorf("%w: missing output, duplicate or filter settings", errors.ErrInvalidConfig)
	}
	if c.Duplicate.MaxCapacity < 0 {
		return fmt.Errorf("%w: negative duplicate capacity %d", errors.ErrInvalidConfig, c.Duplicate.MaxCapacity)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	for i, m := range c.Moves {
		if !m.Valid() {
			return fmt.Errorf("%w: move %d (%s) is off the board", errors.ErrInvalidConfig, i+1, m)
		}
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return fmt.Errorf("%w: nil output or log stream", errors.ErrInvalidConfig)
	}
	return nil
}

// Logger returns a text logger on LogFile whose level follows Verbosity.
func (c *Config) Logger() *slog.Logger {
	level := slog.LevelInfo
	switch {
	case c.Verbosity <= Quiet:
		level = slog.LevelError
	case c.Verbosity >= Verbose:
		level = slog.LevelDebug
	}
	w := c.LogFile
	if w == nil {
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
