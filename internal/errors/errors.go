// Package errors provides sentinel errors and error types for fenkit.
// It defines common error conditions and structured error types that preserve
// context. Is and As are re-exported from the standard library errors package
// so callers inspect these errors without a second import.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string. Every FENError matches it.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrMalformedPlacement indicates a bad piece placement field.
	ErrMalformedPlacement = errors.New("malformed piece placement")

	// ErrMalformedSideToMove indicates a side to move other than "w" or "b".
	ErrMalformedSideToMove = errors.New("malformed side to move")

	// ErrMalformedCastling indicates a bad castling availability field.
	ErrMalformedCastling = errors.New("malformed castling rights")

	// ErrMalformedEnPassant indicates a bad en passant target field.
	ErrMalformedEnPassant = errors.New("malformed en passant target")

	// ErrMalformedMoveCounter indicates a bad halfmove clock or fullmove number.
	ErrMalformedMoveCounter = errors.New("malformed move counter")

	// ErrInvalidSymbol indicates a character that is not a FEN piece symbol.
	ErrInvalidSymbol = errors.New("invalid piece symbol")

	// ErrInvalidPiece indicates a packed piece value outside the codec's vocabulary.
	ErrInvalidPiece = errors.New("invalid piece value")

	// ErrOutOfRange indicates a square index outside [0, 63].
	ErrOutOfRange = errors.New("square index out of range")

	// ErrInvalidMove indicates move text that is not an origin+destination pair.
	ErrInvalidMove = errors.New("invalid move")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrCrossCheck indicates that the reference chess library disagrees with us.
	ErrCrossCheck = errors.New("cross-check mismatch")

	// ErrInvalidPattern indicates a malformed board or material pattern.
	ErrInvalidPattern = errors.New("invalid pattern")
)

// FEN field names used in FENError.
const (
	FieldPlacement  = "placement"
	FieldSideToMove = "side to move"
	FieldCastling   = "castling"
	FieldEnPassant  = "en passant"
	FieldHalfmove   = "halfmove clock"
	FieldFullmove   = "fullmove number"
)

// FENError reports which field of a FEN string could not be parsed.
// It unwraps to the field sentinel (ErrMalformedPlacement, ...) and also
// matches ErrInvalidFEN, so callers can test at either granularity.
type FENError struct {
	Field  string // One of the Field* constants
	Value  string // The offending field text (may be empty when missing)
	Reason string // Human-readable detail
	Err    error  // The field sentinel
}

// Error returns a formatted error message naming the field and value.
func (e *FENError) Error() string {
	var sb strings.Builder
	sb.WriteString("FEN ")
	sb.WriteString(e.Field)
	if e.Value != "" {
		fmt.Fprintf(&sb, " %q", e.Value)
	}
	if e.Reason != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Reason)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

// Unwrap returns the field sentinel.
func (e *FENError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidFEN.
func (e *FENError) Is(target error) bool {
	return target == ErrInvalidFEN
}

// ParseError locates a failure while reading FEN records from an input.
type ParseError struct {
	Err  error  // The underlying error
	File string // Source name
	Line int    // Line number (1-based); 0 when unknown
}

// Error returns "file:line: cause", dropping whatever is unknown.
func (e *ParseError) Error() string {
	loc := e.File
	if e.Line > 0 {
		loc += fmt.Sprintf(":%d", e.Line)
	}
	switch {
	case loc != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", loc, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case loc != "":
		return loc + ": parse error"
	default:
		return "parse error"
	}
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is is errors.Is from the standard library, re-exported so callers that
// import this package need not alias one of the two.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is errors.As from the standard library.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
