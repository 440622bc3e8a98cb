package chess

import (
	"fmt"

	"github.com/lgbarn/fenkit-go/internal/errors"
)

// Square is a board index in [0, 63]: rank*8 + file, a1 = 0, h8 = 63.
type Square int

// Board dimensions and coordinate bases.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	FileBase = 'a'
	RankBase = '1'

	// NoSquare marks an absent square, such as no en passant target.
	NoSquare Square = -1
)

// Named squares used by tests and the initial position.
const (
	A1 Square = 0
	E1 Square = 4
	H1 Square = 7
	E2 Square = 12
	E3 Square = 20
	E4 Square = 28
	E7 Square = 52
	A8 Square = 56
	E8 Square = 60
	H8 Square = 63
)

// SquareAt returns the square at file and rank (both 0-7), or NoSquare when
// either coordinate is off the board.
func SquareAt(file, rank int) Square {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return NoSquare
	}
	return Square(rank*BoardSize + file)
}

// Valid reports whether s is on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// File returns the file (0 = a) of the square.
func (s Square) File() int {
	return int(s) % BoardSize
}

// Rank returns the rank (0 = first rank) of the square.
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// FileRank returns both coordinates of the square.
func (s Square) FileRank() (file, rank int) {
	return s.File(), s.Rank()
}

// String returns the algebraic name of the square ("e4"), "-" for NoSquare
// and a bracketed index for anything else off the board.
func (s Square) String() string {
	if s == NoSquare {
		return "-"
	}
	if !s.Valid() {
		return fmt.Sprintf("[%d]", int(s))
	}
	return string([]byte{byte(FileBase + s.File()), byte(RankBase + s.Rank())})
}

// ParseSquare converts an algebraic square name such as "e3" to a Square.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return NoSquare, fmt.Errorf("square %q: %w", name, errors.ErrOutOfRange)
	}
	file := int(name[0]) - FileBase
	rank := int(name[1]) - RankBase
	sq := SquareAt(file, rank)
	if sq == NoSquare {
		return NoSquare, fmt.Errorf("square %q: %w", name, errors.ErrOutOfRange)
	}
	return sq, nil
}

// CheckSquare returns an ErrOutOfRange error when s is off the board.
func CheckSquare(s Square) error {
	if !s.Valid() {
		return fmt.Errorf("square %d: %w", int(s), errors.ErrOutOfRange)
	}
	return nil
}
