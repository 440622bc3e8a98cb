package chess

// CastlingRights is the set of the four castling permissions packed in 4 bits.
type CastlingRights uint8

const (
	WhiteKingside  CastlingRights = 0b1000
	WhiteQueenside CastlingRights = 0b0100
	BlackKingside  CastlingRights = 0b0010
	BlackQueenside CastlingRights = 0b0001

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// castlingOrder is the FEN emission order.
var castlingOrder = []struct {
	right  CastlingRights
	letter byte
}{
	{WhiteKingside, 'K'},
	{WhiteQueenside, 'Q'},
	{BlackKingside, 'k'},
	{BlackQueenside, 'q'},
}

// CastlingRightForLetter maps a FEN castling letter to its right.
func CastlingRightForLetter(c byte) (CastlingRights, bool) {
	for _, entry := range castlingOrder {
		if entry.letter == c {
			return entry.right, true
		}
	}
	return NoCastling, false
}

// Precedes reports whether every right in c comes before r in KQkq order,
// that is whether r may follow c in a FEN castling field.
func (c CastlingRights) Precedes(r CastlingRights) bool {
	for _, entry := range castlingOrder {
		if entry.right == r {
			return c == NoCastling
		}
		c = c.Without(entry.right)
	}
	return false
}

// Has reports whether every right in r is present.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r
}

// With returns c with r added.
func (c CastlingRights) With(r CastlingRights) CastlingRights {
	return c | r
}

// Without returns c with r removed.
func (c CastlingRights) Without(r CastlingRights) CastlingRights {
	return c &^ r
}

// String returns the FEN castling field: letters in KQkq order, or "-".
func (c CastlingRights) String() string {
	buf := make([]byte, 0, 4)
	for _, entry := range castlingOrder {
		if c.Has(entry.right) {
			buf = append(buf, entry.letter)
		}
	}
	if len(buf) == 0 {
		return "-"
	}
	return string(buf)
}
