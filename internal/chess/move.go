package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/fenkit-go/internal/errors"
)

// Move is an origin and destination square pair. It carries no rules
// knowledge: no piece, capture, promotion or castling information.
type Move struct {
	From Square
	To   Square
}

// NewMove builds a move from two squares.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// Valid reports whether both squares are on the board.
func (m Move) Valid() bool {
	return m.From.Valid() && m.To.Valid()
}

// String returns the long algebraic form of the move ("e2e4").
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ParseMove parses long algebraic text such as "e2e4" or "e2-e4".
// Trailing promotion letters are not accepted.
func ParseMove(text string) (Move, error) {
	s := strings.Replace(text, "-", "", 1)
	if len(s) != 4 {
		return Move{}, fmt.Errorf("move %q: want origin and destination squares: %w", text, errors.ErrInvalidMove)
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w: %w", text, errors.ErrInvalidMove, err)
	}
	to, err := ParseSquare(s[2:])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w: %w", text, errors.ErrInvalidMove, err)
	}
	return Move{From: from, To: to}, nil
}

// ParseMoves parses a list of moves separated by spaces or commas.
// An empty list yields no moves and no error.
func ParseMoves(list string) ([]Move, error) {
	fields := strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	moves := make([]Move, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}
