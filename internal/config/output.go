package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/fenkit-go/internal/errors"
)

// OutputFormat selects how positions are written.
type OutputFormat int

const (
	FENFormat   OutputFormat = iota // one canonical FEN record per line
	BoardFormat                     // labelled 8x8 diagram
	JSONFormat                      // one JSON object per position
)

var formatNames = map[OutputFormat]string{
	FENFormat:   "fen",
	BoardFormat: "board",
	JSONFormat:  "json",
}

func (f OutputFormat) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("OutputFormat(%d)", int(f))
}

// ParseOutputFormat maps a format name such as "board" to its OutputFormat.
func ParseOutputFormat(name string) (OutputFormat, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for f, n := range formatNames {
		if n == want {
			return f, nil
		}
	}
	return FENFormat, fmt.Errorf("%w: unknown output format %q", errors.ErrInvalidConfig, name)
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies the output notation.
	Format OutputFormat

	// Colour enables ANSI colouring of diagrams.
	Colour bool

	// Labels adds rank and file coordinates around diagrams.
	Labels bool

	// Indent pretty-prints JSON output.
	Indent bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format: FENFormat,
		Labels: true,
	}
}

// Validate checks the output settings.
func (o *OutputConfig) Validate() error {
	if _, ok := formatNames[o.Format]; !ok {
		return fmt.Errorf("%w: unknown output format %s", errors.ErrInvalidConfig, o.Format)
	}
	return nil
}
