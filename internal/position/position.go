// Package position holds a chess position: the 64-square board and the
// auxiliary FEN state, with FEN import/export and raw move application.
//
// A Position has no internal locking. Callers sharing one across goroutines
// must guard it themselves.
package position

import (
	"strings"

	"github.com/lgbarn/fenkit-go/internal/chess"
)

// Position is a board plus side to move, castling rights, en passant target
// and move counters. The zero value is not meaningful; use New or FromFEN.
type Position struct {
	board          [chess.NumSquares]chess.Piece
	sideToMove     chess.Colour
	castling       chess.CastlingRights
	enPassant      chess.Square
	halfmoveClock  int
	fullmoveNumber int
}

// New returns the standard initial position.
func New() *Position {
	pos, _ := FromFEN(InitialFEN)
	return pos
}

// PieceAt returns the piece on sq.
func (p *Position) PieceAt(sq chess.Square) (chess.Piece, error) {
	if err := chess.CheckSquare(sq); err != nil {
		return chess.NoPiece, err
	}
	return p.board[sq], nil
}

// Squares returns a copy of the board for renderers.
func (p *Position) Squares() [chess.NumSquares]chess.Piece {
	return p.board
}

// SideToMove returns the colour to move.
func (p *Position) SideToMove() chess.Colour {
	return p.sideToMove
}

// CastlingRights returns the castling availability.
func (p *Position) CastlingRights() chess.CastlingRights {
	return p.castling
}

// EnPassantTarget returns the en passant target square, if any.
func (p *Position) EnPassantTarget() (chess.Square, bool) {
	return p.enPassant, p.enPassant != chess.NoSquare
}

// HalfmoveClock returns the number of half-moves since the last pawn advance
// or capture, as read from FEN.
func (p *Position) HalfmoveClock() int {
	return p.halfmoveClock
}

// FullmoveNumber returns the full-move number, as read from FEN.
func (p *Position) FullmoveNumber() int {
	return p.fullmoveNumber
}

// Clone creates a deep copy of the position.
func (p *Position) Clone() *Position {
	c := *p
	return &c
}

// Equal reports whether two positions have identical board and state.
func (p *Position) Equal(other *Position) bool {
	if p == nil || other == nil {
		return p == other
	}
	return *p == *other
}

// String returns an 8-line diagram, rank 8 first, with '.' for empty squares.
func (p *Position) String() string {
	var sb strings.Builder
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < chess.BoardSize; file++ {
			sb.WriteString(p.board[chess.SquareAt(file, rank)].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
