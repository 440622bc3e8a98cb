package matching

import (
	"fmt"
	"strings"

	"github.com/lgbarn/fenkit-go/internal/chess"
	"github.com/lgbarn/fenkit-go/internal/errors"
	"github.com/lgbarn/fenkit-go/internal/position"
)

// materialCounts holds piece counts indexed by PieceType.
type materialCounts [chess.NumPieceTypes]int

// MaterialMatcher matches positions by material balance.
type MaterialMatcher struct {
	// Pattern like "QR:qrr" means white has Q+R, black has Q+2R
	pattern    string
	exactMatch bool
	white      materialCounts
	black      materialCounts
}

// NewMaterialMatcher creates a new material matcher.
// Pattern format: "QRN:qrn" (white pieces : black pieces).
// K=King, Q=Queen, R=Rook, B=Bishop, N=Knight, P=Pawn; letter case on either
// side of the colon is ignored. With exact set, piece types the pattern does
// not list must be absent; otherwise the pattern is a minimum.
func NewMaterialMatcher(pattern string, exact bool) (*MaterialMatcher, error) {
	mm := &MaterialMatcher{
		pattern:    pattern,
		exactMatch: exact,
	}
	if err := mm.parsePattern(pattern); err != nil {
		return nil, err
	}
	return mm, nil
}

// parsePattern parses a material pattern like "QR:qrr".
func (mm *MaterialMatcher) parsePattern(pattern string) error {
	parts := strings.Split(pattern, ":")
	if len(parts) > 2 {
		return fmt.Errorf("material %q: more than one ':': %w", pattern, errors.ErrInvalidPattern)
	}
	if err := parseSide(parts[0], &mm.white); err != nil {
		return fmt.Errorf("material %q: %w", pattern, err)
	}
	if len(parts) == 2 {
		if err := parseSide(parts[1], &mm.black); err != nil {
			return fmt.Errorf("material %q: %w", pattern, err)
		}
	}
	return nil
}

// parseSide counts the piece letters of one side of a material pattern.
func parseSide(s string, counts *materialCounts) error {
	for i := 0; i < len(s); i++ {
		t := chess.ConvertFENCharToPieceType(s[i])
		if t == chess.NoPieceType {
			return fmt.Errorf("character %q: %w", s[i], errors.ErrInvalidPattern)
		}
		counts[t]++
	}
	return nil
}

// Match implements PositionFilter.
func (mm *MaterialMatcher) Match(pos *position.Position) bool {
	var white, black materialCounts
	for _, piece := range pos.Squares() {
		if piece.IsNone() || !piece.Valid() {
			continue
		}
		if piece.IsWhite() {
			white[piece.Type()]++
		} else {
			black[piece.Type()]++
		}
	}

	return mm.sideMatches(mm.white, white) && mm.sideMatches(mm.black, black)
}

// sideMatches compares one side's counts against the pattern.
func (mm *MaterialMatcher) sideMatches(want, got materialCounts) bool {
	for t := chess.Pawn; t < chess.NumPieceTypes; t++ {
		if mm.exactMatch && want[t] != got[t] {
			return false
		}
		if got[t] < want[t] {
			return false
		}
	}
	return true
}

// Name implements PositionFilter.
func (mm *MaterialMatcher) Name() string {
	if mm.exactMatch {
		return fmt.Sprintf("MaterialMatcher(exact %s)", mm.pattern)
	}
	return fmt.Sprintf("MaterialMatcher(%s)", mm.pattern)
}

// HasCriteria returns true if a material pattern is set.
func (mm *MaterialMatcher) HasCriteria() bool {
	return mm.pattern != ""
}
