// Package output writes positions in the supported output formats.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/fenkit-go/internal/config"
	"github.com/lgbarn/fenkit-go/internal/position"
)

// PositionWriter is the interface for writing positions to output.
// Different implementations handle different output formats (FEN, JSON, etc.).
type PositionWriter interface {
	// WritePosition writes a single position to the output.
	WritePosition(pos *position.Position) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer for cfg.Format.
func NewWriter(w io.Writer, cfg *config.OutputConfig) (PositionWriter, error) {
	switch cfg.Format {
	case config.FENFormat:
		return NewFENWriter(w), nil
	case config.BoardFormat:
		return NewDiagramWriter(w, cfg), nil
	case config.JSONFormat:
		return NewJSONWriterSingle(w, cfg), nil
	default:
		return nil, fmt.Errorf("no writer for output format %s", cfg.Format)
	}
}

// FENWriter writes one FEN record per line.
type FENWriter struct {
	w io.Writer
}

// NewFENWriter creates a new FEN writer.
func NewFENWriter(w io.Writer) *FENWriter {
	return &FENWriter{w: w}
}

// WritePosition writes pos as a FEN line.
func (fw *FENWriter) WritePosition(pos *position.Position) error {
	_, err := fmt.Fprintln(fw.w, pos.FEN())
	return err
}

// Flush is a no-op; FEN lines are written immediately.
func (fw *FENWriter) Flush() error {
	return nil
}

// Close closes the FEN writer.
func (fw *FENWriter) Close() error {
	return nil
}
