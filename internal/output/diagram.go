package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/fenkit-go/internal/chess"
	"github.com/lgbarn/fenkit-go/internal/config"
	"github.com/lgbarn/fenkit-go/internal/position"
)

// Theme holds the colours used for diagrams.
type Theme struct {
	SquareDark  color.Attribute
	SquareLight color.Attribute
	White       color.Attribute
	Black       color.Attribute
	Rank        color.Attribute
	File        color.Attribute
}

// DefaultTheme is a 16-colour palette that reads on dark and light terminals.
var DefaultTheme = Theme{
	SquareDark:  color.BgGreen,
	SquareLight: color.BgHiWhite,
	White:       color.FgHiYellow,
	Black:       color.FgBlack,
	Rank:        color.FgHiBlack,
	File:        color.FgHiBlack,
}

// DiagramWriter draws positions as 8x8 text diagrams, rank 8 at the top.
type DiagramWriter struct {
	w      io.Writer
	labels bool
	colour bool
	theme  Theme
}

// NewDiagramWriter creates a diagram writer honouring cfg.Labels and cfg.Colour.
func NewDiagramWriter(w io.Writer, cfg *config.OutputConfig) *DiagramWriter {
	return &DiagramWriter{
		w:      w,
		labels: cfg.Labels,
		colour: cfg.Colour,
		theme:  DefaultTheme,
	}
}

// SetTheme replaces the colour theme.
func (dw *DiagramWriter) SetTheme(theme Theme) {
	dw.theme = theme
}

// paint renders text with attrs, or returns it unchanged when colour is off.
func (dw *DiagramWriter) paint(text string, attrs ...color.Attribute) string {
	c := color.New(attrs...)
	if dw.colour {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(text)
}

// Render returns the diagram for pos.
func (dw *DiagramWriter) Render(pos *position.Position) string {
	if !dw.labels && !dw.colour {
		return pos.String()
	}

	squares := pos.Squares()
	var sb strings.Builder
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		if dw.labels {
			sb.WriteString(dw.paint(fmt.Sprintf("%c ", chess.RankBase+rank), dw.theme.Rank))
		}
		for file := 0; file < chess.BoardSize; file++ {
			if file > 0 && !dw.colour {
				sb.WriteByte(' ')
			}
			sb.WriteString(dw.cell(squares[chess.SquareAt(file, rank)], file, rank))
		}
		sb.WriteByte('\n')
	}
	if dw.labels {
		sb.WriteString(dw.fileLabels())
		sb.WriteString(status(pos))
	}
	return sb.String()
}

// cell renders one square. Coloured cells are padded to three columns.
func (dw *DiagramWriter) cell(piece chess.Piece, file, rank int) string {
	sym := string(chess.EmptySymbol)
	if !piece.IsNone() {
		sym = piece.String()
	}
	if !dw.colour {
		return sym
	}
	if piece.IsNone() {
		sym = " "
	}
	bg := dw.theme.SquareDark
	if (file+rank)%2 == 1 {
		bg = dw.theme.SquareLight
	}
	fg := dw.theme.White
	if piece.IsBlack() {
		fg = dw.theme.Black
	}
	return dw.paint(" "+sym+" ", fg, bg, color.Bold)
}

func (dw *DiagramWriter) fileLabels() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for file := 0; file < chess.BoardSize; file++ {
		if dw.colour {
			sb.WriteString(fmt.Sprintf(" %c ", chess.FileBase+file))
		} else {
			sb.WriteString(fmt.Sprintf("%c ", chess.FileBase+file))
		}
	}
	return dw.paint(strings.TrimRight(sb.String(), " "), dw.theme.File) + "\n"
}

// status summarises the auxiliary state below a labelled diagram.
func status(pos *position.Position) string {
	ep := "-"
	if sq, ok := pos.EnPassantTarget(); ok {
		ep = sq.String()
	}
	return fmt.Sprintf("%s to move, castling %s, en passant %s, halfmove %d, fullmove %d\n",
		pos.SideToMove(), pos.CastlingRights(), ep, pos.HalfmoveClock(), pos.FullmoveNumber())
}

// WritePosition writes the diagram followed by a blank line.
func (dw *DiagramWriter) WritePosition(pos *position.Position) error {
	_, err := fmt.Fprintf(dw.w, "%s\n", dw.Render(pos))
	return err
}

// Flush is a no-op; diagrams are written immediately.
func (dw *DiagramWriter) Flush() error {
	return nil
}

// Close closes the diagram writer.
func (dw *DiagramWriter) Close() error {
	return nil
}
