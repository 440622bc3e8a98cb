package matching

import (
	"testing"

	"github.com/lgbarn/fenkit-go/internal/chess"
	"github.com/lgbarn/fenkit-go/internal/errors"
	"github.com/lgbarn/fenkit-go/internal/position"
	"github.com/lgbarn/fenkit-go/internal/testutil"
)

func TestPieceToChar(t *testing.T) {
	tests := []struct {
		name  string
		piece chess.Piece
		want  byte
	}{
		{"empty", chess.NoPiece, '_'},
		{"white pawn", chess.W(chess.Pawn), 'P'},
		{"white knight", chess.W(chess.Knight), 'N'},
		{"white king", chess.W(chess.King), 'K'},
		{"black pawn", chess.B(chess.Pawn), 'p'},
		{"black queen", chess.B(chess.Queen), 'q'},
		{"black king", chess.B(chess.King), 'k'},
		{"garbage", chess.Piece(0xff), '_'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pieceToChar(tt.piece); got != tt.want {
				t.Errorf("pieceToChar(%v) = %c, want %c", tt.piece, got, tt.want)
			}
		})
	}
}

func TestBoardToRanks_InitialPosition(t *testing.T) {
	ranks := boardToRanks(position.New())

	want := [chess.BoardSize]string{
		"RNBQKBNR",
		"PPPPPPPP",
		"________",
		"________",
		"________",
		"________",
		"pppppppp",
		"rnbqkbnr",
	}
	testutil.AssertEqual(t, ranks, want)
}

func TestMatchRank(t *testing.T) {
	tests := []struct {
		name    string
		board   string
		pattern string
		want    bool
	}{
		{"exact", "RNBQKBNR", "RNBQKBNR", true},
		{"exact mismatch", "RNBQKBNR", "RNBKQBNR", false},
		{"digit empties", "________", "8", true},
		{"digit too short", "________", "7", false},
		{"digit on piece", "____P___", "8", false},
		{"mixed digits", "____P___", "4P3", true},
		{"question any", "____P___", "????????", true},
		{"bang occupied", "____P___", "4!3", true},
		{"bang empty", "________", "4!3", false},
		{"white wildcard", "____P___", "4A3", true},
		{"white wildcard on black", "____p___", "4A3", false},
		{"black wildcard", "____p___", "4a3", true},
		{"underscore", "________", "________", true},
		{"star all", "RNBQKBNR", "*", true},
		{"star prefix", "RNBQKBNR", "*KBNR", true},
		{"star middle", "RNBQKBNR", "R*R", true},
		{"star no match", "RNBQKBNR", "*Q", false},
		{"star empty match", "RNBQKBNR", "RNBQKBNR*", true},
		{"pattern too long", "RNBQKBNR", "RNBQKBNRR", false},
		{"pattern too short", "RNBQKBNR", "RNB", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchRank(tt.board, tt.pattern); got != tt.want {
				t.Errorf("matchRank(%q, %q) = %v, want %v", tt.board, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestInvertPattern(t *testing.T) {
	got := invertPattern("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR")
	testutil.AssertEqual(t, got, "rnbqkbnr/pppp1ppp/8/4p3/8/8/PPPPPPPP/RNBQKBNR")

	testutil.AssertEqual(t, invertPattern("A?a!/*"), "*/a?A!")
}

func TestPositionMatcher_AddFEN(t *testing.T) {
	pm := NewPositionMatcher()
	testutil.AssertNoError(t, pm.AddFEN(testutil.AfterE4FEN, "king's pawn"))
	testutil.AssertEqual(t, pm.PatternCount(), 1)

	t.Run("same position different clocks", func(t *testing.T) {
		pos := testutil.MustPosition(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 3 9")
		match := pm.Find(pos)
		if match == nil {
			t.Fatal("Find() = nil, want the king's pawn pattern")
		}
		testutil.AssertEqual(t, match.Label, "king's pawn")
		testutil.AssertTrue(t, match.IsExact)
	})

	t.Run("different side to move", func(t *testing.T) {
		pos := testutil.MustPosition(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1")
		testutil.AssertFalse(t, pm.Match(pos))
	})

	t.Run("bad FEN", func(t *testing.T) {
		err := NewPositionMatcher().AddFEN("not a fen", "")
		testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
	})
}

func TestPositionMatcher_AddPattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		invert  bool
		fen     string
		want    bool
	}{
		{
			name:    "white pawn on e4",
			pattern: "*/*/*/*/4P3",
			fen:     testutil.AfterE4FEN,
			want:    true,
		},
		{
			name:    "white pawn on e4 not in start",
			pattern: "*/*/*/*/4P3",
			fen:     position.InitialFEN,
			want:    false,
		},
		{
			name:    "kings only",
			pattern: "4k3/8/8/8/8/8/8/4K3",
			fen:     testutil.KingsOnlyFEN,
			want:    true,
		},
		{
			name:    "empty board",
			pattern: "8/8/8/8/8/8/8/8",
			fen:     testutil.EmptyBoardFEN,
			want:    true,
		},
		{
			name:    "inverted match",
			pattern: "rnbqkbnr/pppp1ppp/8/4p3/8/8/PPPPPPPP/RNBQKBNR",
			invert:  true,
			fen:     testutil.AfterE4FEN,
			want:    true,
		},
		{
			name:    "no inversion no match",
			pattern: "rnbqkbnr/pppp1ppp/8/4p3/8/8/PPPPPPPP/RNBQKBNR",
			fen:     testutil.AfterE4FEN,
			want:    false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := NewPositionMatcher()
			testutil.AssertNoError(t, pm.AddPattern(tt.pattern, tt.name, tt.invert))
			pos := testutil.MustPosition(t, tt.fen)
			testutil.AssertEqual(t, pm.Match(pos), tt.want)
		})
	}
}

func TestPositionMatcher_AddPatternErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		invert  bool
	}{
		{"empty", "", false},
		{"nine ranks", "8/8/8/8/8/8/8/8/8", false},
		{"bad character", "8/8/8/8/8/8/8/7x", false},
		{"digit nine", "9", false},
		{"partial inverted", "*/*/4P3", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := NewPositionMatcher()
			err := pm.AddPattern(tt.pattern, "", tt.invert)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidPattern)
			testutil.AssertEqual(t, pm.PatternCount(), 0)
		})
	}
}

func TestPositionMatcher_Empty(t *testing.T) {
	pm := NewPositionMatcher()
	testutil.AssertNil(t, pm.Find(position.New()))
	testutil.AssertFalse(t, pm.Match(position.New()))
	testutil.AssertEqual(t, pm.Name(), "PositionMatcher(0 patterns)")
}
