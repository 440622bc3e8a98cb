package matching

import (
	"testing"

	"github.com/lgbarn/fenkit-go/internal/chess"
	"github.com/lgbarn/fenkit-go/internal/errors"
	"github.com/lgbarn/fenkit-go/internal/position"
	"github.com/lgbarn/fenkit-go/internal/testutil"
)

func TestNewMaterialMatcher(t *testing.T) {
	tests := []struct {
		name      string
		pattern   string
		wantWhite materialCounts
		wantBlack materialCounts
	}{
		{
			name:      "queen vs queen",
			pattern:   "Q:q",
			wantWhite: materialCounts{chess.Queen: 1},
			wantBlack: materialCounts{chess.Queen: 1},
		},
		{
			name:      "queen and rook vs queen and two rooks",
			pattern:   "QR:qrr",
			wantWhite: materialCounts{chess.Queen: 1, chess.Rook: 1},
			wantBlack: materialCounts{chess.Queen: 1, chess.Rook: 2},
		},
		{
			name:      "case ignored",
			pattern:   "kq:KQ",
			wantWhite: materialCounts{chess.King: 1, chess.Queen: 1},
			wantBlack: materialCounts{chess.King: 1, chess.Queen: 1},
		},
		{
			name:      "white only",
			pattern:   "PP",
			wantWhite: materialCounts{chess.Pawn: 2},
		},
		{
			name:    "empty",
			pattern: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mm, err := NewMaterialMatcher(tt.pattern, false)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, mm.white, tt.wantWhite, "white")
			testutil.AssertEqual(t, mm.black, tt.wantBlack, "black")
			testutil.AssertEqual(t, mm.HasCriteria(), tt.pattern != "")
		})
	}
}

func TestNewMaterialMatcherErrors(t *testing.T) {
	for _, pattern := range []string{"QX:q", "Q:q:q", "Q:1"} {
		t.Run(pattern, func(t *testing.T) {
			_, err := NewMaterialMatcher(pattern, false)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidPattern)
		})
	}
}

func TestMaterialMatcher_Match(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		exact   bool
		fen     string
		want    bool
	}{
		{"minimum in start", "QRR:qrr", false, position.InitialFEN, true},
		{"too many required", "QQ:q", false, position.InitialFEN, false},
		{"kings minimum", "K:k", false, position.InitialFEN, true},
		{"kings exact in start", "K:k", true, position.InitialFEN, false},
		{"kings exact in kings only", "K:k", true, testutil.KingsOnlyFEN, true},
		{"full set exact", "KQRRBBNNPPPPPPPP:kqrrbbnnpppppppp", true, position.InitialFEN, true},
		{"empty pattern matches empty board", "", true, testutil.EmptyBoardFEN, true},
		{"empty pattern exact on kings", "", true, testutil.KingsOnlyFEN, false},
		{"black short", "K:kq", false, testutil.KingsOnlyFEN, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mm, err := NewMaterialMatcher(tt.pattern, tt.exact)
			testutil.AssertNoError(t, err)
			pos := testutil.MustPosition(t, tt.fen)
			testutil.AssertEqual(t, mm.Match(pos), tt.want)
		})
	}
}

func TestCompositeMatcher(t *testing.T) {
	kings, err := NewMaterialMatcher("K:k", false)
	testutil.AssertNoError(t, err)
	queens, err := NewMaterialMatcher("Q:q", false)
	testutil.AssertNoError(t, err)

	start := position.New()
	bare := testutil.MustPosition(t, testutil.KingsOnlyFEN)

	and := NewCompositeMatcher(MatchAll, kings, queens)
	testutil.AssertTrue(t, and.Match(start))
	testutil.AssertFalse(t, and.Match(bare))
	testutil.AssertEqual(t, and.Name(), "CompositeMatcher(AND: MaterialMatcher(K:k), MaterialMatcher(Q:q))")

	or := NewCompositeMatcher(MatchAny, queens)
	testutil.AssertFalse(t, or.Match(bare))
	or.Add(kings)
	testutil.AssertTrue(t, or.Match(bare))
	testutil.AssertEqual(t, or.Len(), 2)
	testutil.AssertEqual(t, or.Mode(), MatchAny)

	testutil.AssertTrue(t, NewCompositeMatcher(MatchAll).Match(bare), "empty AND")
	testutil.AssertFalse(t, NewCompositeMatcher(MatchAny).Match(bare), "empty OR")
	testutil.AssertEqual(t, NewCompositeMatcher(MatchAll).Name(), "CompositeMatcher(empty)")
}
