package chess

import (
	"fmt"

	"github.com/lgbarn/fenkit-go/internal/errors"
)

// EmptySymbol is the symbol PieceToSymbol returns for NoPiece.
const EmptySymbol byte = '.'

// ConvertFENCharToPieceType converts a FEN character of either case to a piece type.
func ConvertFENCharToPieceType(c byte) PieceType {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'P', 'p':
		return Pawn
	default:
		return NoPieceType
	}
}

// SymbolToPiece maps PNBRQK (white) and pnbrqk (black) to packed pieces.
func SymbolToPiece(c byte) (Piece, error) {
	t := ConvertFENCharToPieceType(c)
	if t == NoPieceType {
		return NoPiece, fmt.Errorf("symbol %q: %w", c, errors.ErrInvalidSymbol)
	}
	if c >= 'a' && c <= 'z' {
		return B(t), nil
	}
	return W(t), nil
}

// PieceToSymbol maps a packed piece to its FEN symbol: uppercase for white,
// lowercase for black, EmptySymbol for NoPiece.
func PieceToSymbol(p Piece) (byte, error) {
	if p == NoPiece {
		return EmptySymbol, nil
	}
	if !p.Valid() {
		return 0, fmt.Errorf("piece 0x%02x: %w", uint8(p), errors.ErrInvalidPiece)
	}
	letter := p.Type().Letter()
	if p.IsBlack() {
		letter += 'a' - 'A'
	}
	return letter, nil
}
