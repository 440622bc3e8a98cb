package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/fenkit-go/internal/chess"
	"github.com/lgbarn/fenkit-go/internal/config"
	"github.com/lgbarn/fenkit-go/internal/position"
)

// JSONPosition represents a position in JSON format.
type JSONPosition struct {
	FEN            string            `json:"fen"`
	SideToMove     string            `json:"sideToMove"` // "white" or "black"
	Castling       string            `json:"castling"`
	EnPassant      string            `json:"enPassant,omitempty"`
	HalfmoveClock  int               `json:"halfmoveClock"`
	FullmoveNumber int               `json:"fullmoveNumber"`
	Pieces         map[string]string `json:"pieces"` // occupied square -> FEN symbol
}

// JSONOutput holds multiple positions for array output.
type JSONOutput struct {
	Positions []*JSONPosition `json:"positions"`
}

// PositionToJSON converts a position to JSON format.
func PositionToJSON(pos *position.Position) *JSONPosition {
	jp := &JSONPosition{
		FEN:            pos.FEN(),
		SideToMove:     strings.ToLower(pos.SideToMove().String()),
		Castling:       pos.CastlingRights().String(),
		HalfmoveClock:  pos.HalfmoveClock(),
		FullmoveNumber: pos.FullmoveNumber(),
		Pieces:         make(map[string]string),
	}
	if sq, ok := pos.EnPassantTarget(); ok {
		jp.EnPassant = sq.String()
	}
	for sq, piece := range pos.Squares() {
		if piece.IsNone() {
			continue
		}
		jp.Pieces[chess.Square(sq).String()] = piece.String()
	}
	return jp
}

// JSONWriter writes positions in JSON format.
// It buffers positions and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w         io.Writer
	indent    bool
	positions []*JSONPosition
	single    bool // If true, write each position immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches positions and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.OutputConfig) *JSONWriter {
	return &JSONWriter{
		w:      w,
		indent: cfg.Indent,
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each position
// immediately, one object per line unless indenting.
func NewJSONWriterSingle(w io.Writer, cfg *config.OutputConfig) *JSONWriter {
	return &JSONWriter{
		w:      w,
		indent: cfg.Indent,
		single: true,
	}
}

func (jw *JSONWriter) encoder() *json.Encoder {
	enc := json.NewEncoder(jw.w)
	if jw.indent {
		enc.SetIndent("", "  ")
	}
	return enc
}

// WritePosition buffers a position for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WritePosition(pos *position.Position) error {
	jp := PositionToJSON(pos)
	if jw.single {
		return jw.encoder().Encode(jp)
	}
	jw.positions = append(jw.positions, jp)
	return nil
}

// Flush writes all buffered positions as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.positions) == 0 {
		return nil
	}
	err := jw.encoder().Encode(&JSONOutput{Positions: jw.positions})

	// Clear buffer after writing
	jw.positions = jw.positions[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
