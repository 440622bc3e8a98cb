package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Are verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrMalformedPlacement", ErrMalformedPlacement, ErrMalformedPlacement},
		{"ErrMalformedSideToMove", ErrMalformedSideToMove, ErrMalformedSideToMove},
		{"ErrMalformedCastling", ErrMalformedCastling, ErrMalformedCastling},
		{"ErrMalformedEnPassant", ErrMalformedEnPassant, ErrMalformedEnPassant},
		{"ErrMalformedMoveCounter", ErrMalformedMoveCounter, ErrMalformedMoveCounter},
		{"ErrInvalidSymbol", ErrInvalidSymbol, ErrInvalidSymbol},
		{"ErrInvalidPiece", ErrInvalidPiece, ErrInvalidPiece},
		{"ErrOutOfRange", ErrOutOfRange, ErrOutOfRange},
		{"ErrInvalidMove", ErrInvalidMove, ErrInvalidMove},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
		{"ErrCrossCheck", ErrCrossCheck, ErrCrossCheck},
		{"ErrInvalidPattern", ErrInvalidPattern, ErrInvalidPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Distinct verifies the FEN field sentinels do not alias each other.
func TestSentinelErrors_Distinct(t *testing.T) {
	fields := []error{
		ErrMalformedPlacement,
		ErrMalformedSideToMove,
		ErrMalformedCastling,
		ErrMalformedEnPassant,
		ErrMalformedMoveCounter,
	}
	for i, a := range fields {
		for j, b := range fields {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}

func TestFENError_Error(t *testing.T) {
	err := &FENError{
		Field:  FieldCastling,
		Value:  "KQx",
		Reason: "unknown castling flag 'x'",
		Err:    ErrMalformedCastling,
	}

	msg := err.Error()
	for _, want := range []string{"castling", `"KQx"`, "unknown castling flag", "malformed castling rights"} {
		if !strings.Contains(msg, want) {
			t.Errorf("FENError.Error() = %q, should contain %q", msg, want)
		}
	}
}

func TestFENError_MissingValue(t *testing.T) {
	err := &FENError{Field: FieldFullmove, Reason: "field missing", Err: ErrMalformedMoveCounter}

	msg := err.Error()
	if strings.Contains(msg, `""`) {
		t.Errorf("FENError.Error() = %q, should not quote an empty value", msg)
	}
	if !strings.Contains(msg, "fullmove number") {
		t.Errorf("FENError.Error() = %q, should name the field", msg)
	}
}

func TestFENError_Is(t *testing.T) {
	err := fmt.Errorf("loading position: %w", &FENError{
		Field: FieldEnPassant,
		Value: "z9",
		Err:   ErrMalformedEnPassant,
	})

	if !errors.Is(err, ErrMalformedEnPassant) {
		t.Error("errors.Is(err, ErrMalformedEnPassant) = false, want true")
	}
	if !errors.Is(err, ErrInvalidFEN) {
		t.Error("errors.Is(err, ErrInvalidFEN) = false, want true")
	}
	if errors.Is(err, ErrMalformedCastling) {
		t.Error("errors.Is(err, ErrMalformedCastling) = true, want false")
	}

	var fenErr *FENError
	if !errors.As(err, &fenErr) {
		t.Fatal("errors.As() could not extract FENError")
	}
	if fenErr.Field != FieldEnPassant {
		t.Errorf("fenErr.Field = %q, want %q", fenErr.Field, FieldEnPassant)
	}
}

// TestParseError_Error verifies ParseError formatting
func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{"bare", &ParseError{}, "parse error"},
		{"only err", &ParseError{Err: ErrInvalidMove}, "invalid move"},
		{"file and line", &ParseError{File: "positions.fen", Line: 100, Err: ErrInvalidFEN}, "positions.fen:100: invalid FEN string"},
		{"file no line", &ParseError{File: "stdin", Err: ErrInvalidMove}, "stdin: invalid move"},
		{"location only", &ParseError{File: "stdin", Line: 2}, "stdin:2: parse error"},
		{"line without file", &ParseError{Line: 7, Err: ErrOutOfRange}, ":7: square index out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestParseError_Unwrap verifies ParseError implements Unwrap
func TestParseError_Unwrap(t *testing.T) {
	parseErr := &ParseError{
		Err: &FENError{
			Field: FieldPlacement,
			Err:   ErrMalformedPlacement,
		},
		File: "positions.fen",
		Line: 1,
	}

	if !errors.Is(parseErr, ErrMalformedPlacement) {
		t.Error("errors.Is(parseErr, ErrMalformedPlacement) = false, want true")
	}
	if !Is(parseErr, ErrInvalidFEN) {
		t.Error("Is(parseErr, ErrInvalidFEN) = false, want true")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	original := ErrInvalidFEN
	wrapped := Wrap(original, "parsing FEN string")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "parsing FEN string") {
		t.Errorf("Wrap should include context, got %q", msg)
	}

	if Wrap(nil, "nothing") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	original := ErrOutOfRange
	wrapped := Wrapf(original, "square %d", 64)

	if !errors.Is(wrapped, ErrOutOfRange) {
		t.Error("Wrapf should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "square 64") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

func TestAs(t *testing.T) {
	err := Wrap(&ParseError{File: "a.fen", Line: 3, Err: ErrInvalidFEN}, "batch")

	var pe *ParseError
	if !As(err, &pe) {
		t.Fatal("As() could not extract ParseError")
	}
	if pe.Line != 3 {
		t.Errorf("pe.Line = %d, want 3", pe.Line)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
