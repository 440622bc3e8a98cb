package position

import (
	"fmt"

	"github.com/lgbarn/fenkit-go/internal/chess"
)

// ApplyMove relocates the piece on m.From to m.To, overwriting whatever was
// on m.To, and empties m.From. It is a mechanical primitive: no legality
// check, no turn or clock update, no castling, en passant or promotion side
// effects. Both squares are checked before the board is touched.
func (p *Position) ApplyMove(m chess.Move) error {
	if err := chess.CheckSquare(m.From); err != nil {
		return fmt.Errorf("move origin: %w", err)
	}
	if err := chess.CheckSquare(m.To); err != nil {
		return fmt.Errorf("move destination: %w", err)
	}
	if m.From == m.To {
		return nil
	}
	p.board[m.To] = p.board[m.From]
	p.board[m.From] = chess.NoPiece
	return nil
}

// ApplyMoves applies moves in order. It stops at the first failing move and
// reports its index; earlier moves stay applied.
func (p *Position) ApplyMoves(moves []chess.Move) error {
	for i, m := range moves {
		if err := p.ApplyMove(m); err != nil {
			return fmt.Errorf("move %d (%s): %w", i+1, m, err)
		}
	}
	return nil
}
