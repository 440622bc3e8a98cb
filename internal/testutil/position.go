package testutil

import (
	"testing"

	"github.com/lgbarn/fenkit-go/internal/chess"
	"github.com/lgbarn/fenkit-go/internal/position"
)

// Well-known FEN records shared across package tests.
const (
	// AfterE4FEN is the position after 1. e4.
	AfterE4FEN = "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	// EmptyBoardFEN has no pieces and no castling rights.
	EmptyBoardFEN = "8/8/8/8/8/8/8/8 w - - 0 1"
	// KingsOnlyFEN has just the two kings on their home squares.
	KingsOnlyFEN = "4k3/8/8/8/8/8/8/4K3 w - - 0 1"
	// MidgameFEN is a middlegame position with partial castling rights.
	MidgameFEN = "r1bqk2r/pppp1ppp/2n2n2/2b1p3/2B1P3/5N2/PPPP1PPP/RNBQ1RK1 b kq - 5 4"
)

// MustPosition parses fen and returns the position.
// It calls t.Fatal if the record is rejected.
func MustPosition(t *testing.T, fen string) *position.Position {
	t.Helper()
	p, err := position.FromFEN(fen)
	if err != nil {
		t.Fatalf("failed to parse FEN %q: %v", fen, err)
	}
	return p
}

// MustMove parses a coordinate move such as "e2e4".
// It calls t.Fatal if the text is not a move.
func MustMove(t *testing.T, text string) chess.Move {
	t.Helper()
	m, err := chess.ParseMove(text)
	if err != nil {
		t.Fatalf("failed to parse move %q: %v", text, err)
	}
	return m
}

// MustSquare parses an algebraic square name such as "e4".
func MustSquare(t *testing.T, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("failed to parse square %q: %v", name, err)
	}
	return sq
}
