package matching

import (
	"fmt"
	"strings"

	"github.com/lgbarn/fenkit-go/internal/chess"
	"github.com/lgbarn/fenkit-go/internal/errors"
	"github.com/lgbarn/fenkit-go/internal/hashing"
	"github.com/lgbarn/fenkit-go/internal/position"
)

// emptyChar stands for an empty square in the rank strings patterns are
// matched against.
const emptyChar = '_'

// FENPattern represents a piece placement pattern to match.
// Supports wildcards:
//   - ? matches any square (empty or occupied)
//   - ! matches any non-empty square
//   - * matches zero or more of anything
//   - A matches any white piece
//   - a matches any black piece
//   - _ matches empty square
type FENPattern struct {
	Pattern       string
	Label         string // optional label for matched position
	Hash          uint64 // position hash for exact FEN matches
	IsExact       bool   // true if this is a full FEN (no wildcards)
	IncludeInvert bool   // also match colour-inverted position
	ranks         []string
}

// PositionMatcher selects positions by exact FEN or placement pattern.
type PositionMatcher struct {
	patterns    []*FENPattern
	exactHashes map[uint64]*FENPattern
}

// NewPositionMatcher creates a new position matcher.
func NewPositionMatcher() *PositionMatcher {
	return &PositionMatcher{
		exactHashes: make(map[uint64]*FENPattern),
	}
}

// AddFEN adds an exact position to match. Clocks are not compared.
func (pm *PositionMatcher) AddFEN(fen string, label string) error {
	pos, err := position.FromFEN(fen)
	if err != nil {
		return err
	}

	hash, err := hashing.Key(pos)
	if err != nil {
		return err
	}
	pattern := &FENPattern{
		Pattern: fen,
		Label:   label,
		Hash:    hash,
		IsExact: true,
	}

	pm.patterns = append(pm.patterns, pattern)
	pm.exactHashes[hash] = pattern

	return nil
}

// AddPattern adds a placement pattern with wildcards. Ranks are listed from
// rank 8 down, separated by '/'; a pattern with fewer than eight ranks only
// constrains the top ranks.
func (pm *PositionMatcher) AddPattern(pattern string, label string, includeInvert bool) error {
	ranks, err := splitPattern(pattern)
	if err != nil {
		return err
	}
	if includeInvert && len(ranks) != chess.BoardSize {
		return fmt.Errorf("pattern %q: inversion needs all %d ranks: %w", pattern, chess.BoardSize, errors.ErrInvalidPattern)
	}

	pm.patterns = append(pm.patterns, &FENPattern{
		Pattern:       pattern,
		Label:         label,
		IncludeInvert: includeInvert,
		ranks:         ranks,
	})

	if includeInvert {
		inverted := invertPattern(pattern)
		pm.patterns = append(pm.patterns, &FENPattern{
			Pattern: inverted,
			Label:   label,
			ranks:   strings.Split(inverted, "/"),
		})
	}
	return nil
}

// splitPattern checks a placement pattern and splits it into ranks.
func splitPattern(pattern string) ([]string, error) {
	if pattern == "" {
		return nil, fmt.Errorf("empty pattern: %w", errors.ErrInvalidPattern)
	}
	ranks := strings.Split(pattern, "/")
	if len(ranks) > chess.BoardSize {
		return nil, fmt.Errorf("pattern %q has %d ranks: %w", pattern, len(ranks), errors.ErrInvalidPattern)
	}
	for _, rank := range ranks {
		for i := 0; i < len(rank); i++ {
			if !validPatternChar(rank[i]) {
				return nil, fmt.Errorf("pattern %q: character %q: %w", pattern, rank[i], errors.ErrInvalidPattern)
			}
		}
	}
	return ranks, nil
}

func validPatternChar(c byte) bool {
	switch c {
	case '?', '!', '*', 'A', 'a', emptyChar:
		return true
	}
	if c >= '1' && c <= '8' {
		return true
	}
	_, err := chess.SymbolToPiece(c)
	return err == nil
}

// Find returns the first pattern the position matches, or nil.
func (pm *PositionMatcher) Find(pos *position.Position) *FENPattern {
	if len(pm.patterns) == 0 {
		return nil
	}

	if len(pm.exactHashes) > 0 {
		if hash, err := hashing.Key(pos); err == nil {
			if pattern, ok := pm.exactHashes[hash]; ok {
				return pattern
			}
		}
	}

	boardRanks := boardToRanks(pos)
	for _, pattern := range pm.patterns {
		if !pattern.IsExact && matchPattern(boardRanks, pattern) {
			return pattern
		}
	}

	return nil
}

// Match implements PositionFilter.
func (pm *PositionMatcher) Match(pos *position.Position) bool {
	return pm.Find(pos) != nil
}

// Name implements PositionFilter.
func (pm *PositionMatcher) Name() string {
	return fmt.Sprintf("PositionMatcher(%d patterns)", len(pm.patterns))
}

// matchPattern checks board ranks (rank 1 first) against a pattern (rank 8 first).
func matchPattern(boardRanks [chess.BoardSize]string, pattern *FENPattern) bool {
	if len(pattern.ranks) == 0 {
		return false
	}

	for i, patternRank := range pattern.ranks {
		if i >= chess.BoardSize {
			break
		}
		if !matchRank(boardRanks[chess.BoardSize-1-i], patternRank) {
			return false
		}
	}

	return true
}

// boardToRanks converts a position to rank strings (rank 1 first).
func boardToRanks(pos *position.Position) [chess.BoardSize]string {
	var ranks [chess.BoardSize]string
	squares := pos.Squares()

	for r := 0; r < chess.BoardSize; r++ {
		var sb strings.Builder
		for f := 0; f < chess.BoardSize; f++ {
			sb.WriteByte(pieceToChar(squares[chess.SquareAt(f, r)]))
		}
		ranks[r] = sb.String()
	}

	return ranks
}

// pieceToChar converts a piece to its FEN letter, or '_' for an empty square.
func pieceToChar(piece chess.Piece) byte {
	if piece.IsNone() {
		return emptyChar
	}
	c, err := chess.PieceToSymbol(piece)
	if err != nil {
		return emptyChar
	}
	return c
}

// matchRank matches a board rank string against a pattern rank.
func matchRank(boardRank, patternRank string) bool {
	bi := 0 // board index
	pi := 0 // pattern index

	for pi < len(patternRank) {
		if bi >= len(boardRank) && patternRank[pi] != '*' {
			return false
		}

		c := patternRank[pi]

		switch c {
		case '*':
			pi++
			if pi >= len(patternRank) {
				return true
			}
			for bi <= len(boardRank) {
				if matchRank(boardRank[bi:], patternRank[pi:]) {
					return true
				}
				bi++
			}
			return false

		case '?':
			bi++
			pi++

		case '!':
			if boardRank[bi] == emptyChar {
				return false
			}
			bi++
			pi++

		case 'A':
			if boardRank[bi] < 'A' || boardRank[bi] > 'Z' {
				return false
			}
			bi++
			pi++

		case 'a':
			if boardRank[bi] < 'a' || boardRank[bi] > 'z' {
				return false
			}
			bi++
			pi++

		case emptyChar:
			if boardRank[bi] != emptyChar {
				return false
			}
			bi++
			pi++

		case '1', '2', '3', '4', '5', '6', '7', '8':
			count := int(c - '0')
			for i := 0; i < count; i++ {
				if bi >= len(boardRank) || boardRank[bi] != emptyChar {
					return false
				}
				bi++
			}
			pi++

		default:
			if boardRank[bi] != c {
				return false
			}
			bi++
			pi++
		}
	}

	return bi == len(boardRank)
}

// invertPattern swaps colours and mirrors the rank order of a pattern.
func invertPattern(pattern string) string {
	var result strings.Builder

	for _, c := range pattern {
		switch {
		case c >= 'A' && c <= 'Z':
			result.WriteRune(c + 'a' - 'A')
		case c >= 'a' && c <= 'z':
			result.WriteRune(c - 'a' + 'A')
		default:
			result.WriteRune(c)
		}
	}

	ranks := strings.Split(result.String(), "/")
	for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}

	return strings.Join(ranks, "/")
}

// PatternCount returns the number of patterns.
func (pm *PositionMatcher) PatternCount() int {
	return len(pm.patterns)
}
