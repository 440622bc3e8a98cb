// Package interop cross-checks positions against an independent chess
// library.
package interop

import (
	"fmt"
	"strings"

	refchess "github.com/corentings/chess/v2"

	"github.com/lgbarn/fenkit-go/internal/errors"
	"github.com/lgbarn/fenkit-go/internal/position"
)

// Fields compared against the reference encoding. Castling and clock
// rendering differ between libraries, so only placement and side to move
// are held to byte equality.
const (
	placementField = 0
	sideField      = 1
)

var comparedFields = []struct {
	index int
	name  string
}{
	{placementField, errors.FieldPlacement},
	{sideField, errors.FieldSideToMove},
}

// Mismatch describes one field on which the two encodings disagree.
type Mismatch struct {
	Field     string
	Ours      string
	Reference string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: ours %q, reference %q", m.Field, m.Ours, m.Reference)
}

// ReferenceFEN loads fen into the reference library and returns its own
// re-encoding of the record.
func ReferenceFEN(fen string) (ref string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: reference library panicked: %v", errors.ErrCrossCheck, r)
		}
	}()
	opt, err := refchess.FEN(fen)
	if err != nil {
		return "", fmt.Errorf("%w: reference rejected %q: %v", errors.ErrCrossCheck, fen, err)
	}
	return refchess.NewGame(opt).FEN(), nil
}

// Compare encodes pos, round-trips the record through the reference
// library and lists the fields on which the two disagree.
func Compare(pos *position.Position) ([]Mismatch, error) {
	ours := pos.FEN()
	ref, err := ReferenceFEN(ours)
	if err != nil {
		return nil, err
	}

	ourFields := strings.Fields(ours)
	refFields := strings.Fields(ref)
	if len(refFields) != len(ourFields) {
		return nil, fmt.Errorf("%w: reference produced %d fields: %q", errors.ErrCrossCheck, len(refFields), ref)
	}

	var mismatches []Mismatch
	for _, f := range comparedFields {
		if ourFields[f.index] != refFields[f.index] {
			mismatches = append(mismatches, Mismatch{
				Field:     f.name,
				Ours:      ourFields[f.index],
				Reference: refFields[f.index],
			})
		}
	}
	return mismatches, nil
}

// Verify returns nil when the reference library agrees with pos, and an
// error wrapping ErrCrossCheck otherwise.
func Verify(pos *position.Position) error {
	mismatches, err := Compare(pos)
	if err != nil {
		return err
	}
	if len(mismatches) == 0 {
		return nil
	}
	parts := make([]string, len(mismatches))
	for i, m := range mismatches {
		parts[i] = m.String()
	}
	return fmt.Errorf("%w: %s", errors.ErrCrossCheck, strings.Join(parts, "; "))
}
