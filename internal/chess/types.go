// Package chess provides core chess types: packed pieces, squares, castling
// rights and moves, plus the codec between packed pieces and FEN symbols.
package chess

// Colour represents the colour of a piece or player.
// Its values are the colour bits of a packed Piece.
type Colour uint8

const (
	NoColour Colour = 0
	White    Colour = 1 << colourShift
	Black    Colour = 2 << colourShift
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "None"
	}
}

// Opposite returns the opposite colour. NoColour has no opposite.
func (c Colour) Opposite() Colour {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoColour
	}
}

// Valid reports whether c is exactly one of White or Black.
func (c Colour) Valid() bool {
	return c == White || c == Black
}

// PieceType represents a chess piece type without colour.
type PieceType uint8

const (
	NoPieceType PieceType = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceTypes
)

// String returns the string representation of a piece type.
func (t PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (t PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(t) < len(letters) {
		return letters[t]
	}
	return '?'
}

// Bit layout of a packed piece: type in bits 0-2, colour in bits 3-4.
const (
	colourShift = 3
	typeMask    = 0x07
	colourMask  = 0x18
)

// Piece is a packed piece: type and colour in disjoint bit ranges.
type Piece uint8

// NoPiece is the empty square. It never carries a colour.
const NoPiece Piece = 0

// Encode packs a piece type and colour. NoPieceType always yields NoPiece;
// so does any pair that does not describe a piece (an unknown type, or a
// real type without exactly one colour).
func Encode(t PieceType, c Colour) Piece {
	if t == NoPieceType || t >= NumPieceTypes || !c.Valid() {
		return NoPiece
	}
	return Piece(uint8(t) | uint8(c))
}

// Decode unpacks a piece into its type and colour.
func Decode(p Piece) (PieceType, Colour) {
	return p.Type(), p.Colour()
}

// W creates a white piece.
func W(t PieceType) Piece {
	return Encode(t, White)
}

// B creates a black piece.
func B(t PieceType) Piece {
	return Encode(t, Black)
}

// Type extracts the piece type.
func (p Piece) Type() PieceType {
	return PieceType(p & typeMask)
}

// Colour extracts the colour bits.
func (p Piece) Colour() Colour {
	return Colour(p & colourMask)
}

// IsWhite reports whether the white bit is set.
func (p Piece) IsWhite() bool {
	return p.Colour()&White == White
}

// IsBlack reports whether the black bit is set.
func (p Piece) IsBlack() bool {
	return p.Colour()&Black == Black
}

// IsNone reports whether p is the empty square.
func (p Piece) IsNone() bool {
	return p == NoPiece
}

// Valid reports whether p is NoPiece or one of the twelve coloured pieces.
func (p Piece) Valid() bool {
	if p == NoPiece {
		return true
	}
	if p&^(typeMask|colourMask) != 0 {
		return false
	}
	t := p.Type()
	return t != NoPieceType && t < NumPieceTypes && p.Colour().Valid()
}

// String returns the FEN symbol of the piece, "." for NoPiece and "?" for
// values outside the codec's vocabulary.
func (p Piece) String() string {
	sym, err := PieceToSymbol(p)
	if err != nil {
		return "?"
	}
	return string(sym)
}
