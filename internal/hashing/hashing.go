// Package hashing provides duplicate detection for chess positions.
package hashing

import (
	"fmt"

	refchess "github.com/corentings/chess/v2"

	"github.com/lgbarn/fenkit-go/internal/chess"
	"github.com/lgbarn/fenkit-go/internal/position"
)

// Key returns the Polyglot-compatible Zobrist key of pos. Clocks do not
// contribute, and the en passant file only counts when a pawn could
// actually capture onto the target square.
func Key(pos *position.Position) (uint64, error) {
	// The hasher keeps per-call scratch state, so each call gets its own.
	hex, err := refchess.NewZobristHasher().HashPosition(pos.FEN())
	if err != nil {
		return 0, fmt.Errorf("zobrist hash: %w", err)
	}
	return refchess.ZobristHashToUint64(hex), nil
}

// Signature stores identifying information about a position.
type Signature struct {
	// Hash is the Zobrist key of the position
	Hash uint64
	// Board is the placement, used to confirm a key match
	Board [chess.NumSquares]chess.Piece
	// SideToMove and Castling complete the identity
	SideToMove chess.Colour
	Castling   chess.CastlingRights
}

// NewSignature builds the signature of pos.
func NewSignature(pos *position.Position) (Signature, error) {
	hash, err := Key(pos)
	if err != nil {
		return Signature{}, err
	}
	return Signature{
		Hash:       hash,
		Board:      pos.Squares(),
		SideToMove: pos.SideToMove(),
		Castling:   pos.CastlingRights(),
	}, nil
}

// DuplicateDetector tracks seen positions.
type DuplicateDetector struct {
	// hashTable buckets signatures by Zobrist key
	hashTable map[uint64][]Signature
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity caps the number of stored signatures; 0 means unlimited
	maxCapacity int
	uniqueCount int
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]Signature),
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd reports whether pos was seen before and records it if not.
// Once the detector is full, new positions are reported as unique but not
// stored.
func (d *DuplicateDetector) CheckAndAdd(pos *position.Position) (bool, error) {
	if pos == nil {
		return false, nil
	}
	sig, err := NewSignature(pos)
	if err != nil {
		return false, err
	}
	return d.CheckAndAddSignature(sig), nil
}

// CheckAndAddSignature is CheckAndAdd for a precomputed signature, so
// hashing can happen off the goroutine that decides order.
func (d *DuplicateDetector) CheckAndAddSignature(sig Signature) bool {
	for _, existing := range d.hashTable[sig.Hash] {
		if signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}
	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.uniqueCount++
	return false
}

// signaturesMatch guards against Zobrist collisions.
func signaturesMatch(a, b Signature) bool {
	return a.Hash == b.Hash &&
		a.Board == b.Board &&
		a.SideToMove == b.SideToMove &&
		a.Castling == b.Castling
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions stored.
func (d *DuplicateDetector) UniqueCount() int {
	return d.uniqueCount
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.uniqueCount >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]Signature)
	d.duplicateCount = 0
	d.uniqueCount = 0
}
