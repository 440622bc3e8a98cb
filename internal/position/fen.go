package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/fenkit-go/internal/chess"
	"github.com/lgbarn/fenkit-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenFields is the number of space-separated fields in a FEN string.
const fenFields = 6

// fieldOrder names the FEN fields by position, with their sentinels.
var fieldOrder = [fenFields]struct {
	name string
	err  error
}{
	{errors.FieldPlacement, errors.ErrMalformedPlacement},
	{errors.FieldSideToMove, errors.ErrMalformedSideToMove},
	{errors.FieldCastling, errors.ErrMalformedCastling},
	{errors.FieldEnPassant, errors.ErrMalformedEnPassant},
	{errors.FieldHalfmove, errors.ErrMalformedMoveCounter},
	{errors.FieldFullmove, errors.ErrMalformedMoveCounter},
}

// fieldError builds the FENError for field index i.
func fieldError(i int, value, reason string) error {
	return &errors.FENError{
		Field:  fieldOrder[i].name,
		Value:  value,
		Reason: reason,
		Err:    fieldOrder[i].err,
	}
}

// FromFEN parses a six-field FEN string. Either every field parses and a
// complete Position is returned, or nil and a *errors.FENError.
func FromFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < fenFields {
		// Report the first field that is missing.
		return nil, fieldError(len(parts), "", "field missing")
	}
	if len(parts) > fenFields {
		return nil, fieldError(fenFields-1, strings.Join(parts[fenFields:], " "), "unexpected trailing fields")
	}

	board, err := parsePiecePlacement(parts[0])
	if err != nil {
		return nil, err
	}
	side, err := parseSideToMove(parts[1])
	if err != nil {
		return nil, err
	}
	castling, err := parseCastlingRights(parts[2])
	if err != nil {
		return nil, err
	}
	ep, err := parseEnPassant(parts[3])
	if err != nil {
		return nil, err
	}
	halfmove, err := parseCounter(4, parts[4], 0)
	if err != nil {
		return nil, err
	}
	fullmove, err := parseCounter(5, parts[5], 1)
	if err != nil {
		return nil, err
	}

	return &Position{
		board:          board,
		sideToMove:     side,
		castling:       castling,
		enPassant:      ep,
		halfmoveClock:  halfmove,
		fullmoveNumber: fullmove,
	}, nil
}

// parsePiecePlacement parses the piece placement field of a FEN string.
// Ranks arrive 8 down to 1 and are written back in index order.
func parsePiecePlacement(placement string) ([chess.NumSquares]chess.Piece, error) {
	var board [chess.NumSquares]chess.Piece

	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return board, fieldError(0, placement, fmt.Sprintf("expected 8 ranks, got %d", len(ranks)))
	}

	for i, rankText := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(rankText); j++ {
			c := rankText[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				if file > chess.BoardSize {
					break
				}
				continue
			}
			piece, err := chess.SymbolToPiece(c)
			if err != nil {
				return board, fieldError(0, placement, fmt.Sprintf("invalid character %q on rank %d", c, rank+1))
			}
			if file >= chess.BoardSize {
				file++
				break
			}
			board[chess.SquareAt(file, rank)] = piece
			file++
		}
		if file != chess.BoardSize {
			return board, fieldError(0, placement, fmt.Sprintf("rank %d does not describe 8 squares", rank+1))
		}
	}
	return board, nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(field string) (chess.Colour, error) {
	switch field {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.NoColour, fieldError(1, field, "want w or b")
	}
}

// parseCastlingRights parses the castling availability field.
// Letters must follow KQkq order, each at most once, so the field prints
// back exactly as read.
func parseCastlingRights(field string) (chess.CastlingRights, error) {
	if field == "-" {
		return chess.NoCastling, nil
	}

	rights := chess.NoCastling
	for i := 0; i < len(field); i++ {
		right, ok := chess.CastlingRightForLetter(field[i])
		if !ok {
			return chess.NoCastling, fieldError(2, field, fmt.Sprintf("unknown castling flag %q", field[i]))
		}
		if rights.Has(right) {
			return chess.NoCastling, fieldError(2, field, fmt.Sprintf("repeated castling flag %q", field[i]))
		}
		if !rights.Precedes(right) {
			return chess.NoCastling, fieldError(2, field, fmt.Sprintf("castling flag %q out of KQkq order", field[i]))
		}
		rights = rights.With(right)
	}
	return rights, nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(field string) (chess.Square, error) {
	if field == "-" {
		return chess.NoSquare, nil
	}
	sq, err := chess.ParseSquare(field)
	if err != nil {
		return chess.NoSquare, fieldError(3, field, "want - or a square such as e3")
	}
	return sq, nil
}

// parseCounter parses the halfmove clock (field 4) or fullmove number
// (field 5). Only plain decimal digits without leading zeros are accepted,
// so the value prints back exactly as read.
func parseCounter(i int, field string, minimum int) (int, error) {
	for j := 0; j < len(field); j++ {
		if field[j] < '0' || field[j] > '9' {
			return 0, fieldError(i, field, "not a non-negative integer")
		}
	}
	if len(field) > 1 && field[0] == '0' {
		return 0, fieldError(i, field, "leading zero")
	}
	n, err := strconv.Atoi(field)
	if err != nil {
		return 0, fieldError(i, field, "out of range")
	}
	if n < minimum {
		return 0, fieldError(i, field, fmt.Sprintf("must be at least %d", minimum))
	}
	return n, nil
}

// FEN serializes the position. The output parses back to an equal Position.
func (p *Position) FEN() string {
	var sb strings.Builder

	p.writePiecePlacement(&sb)
	sb.WriteByte(' ')
	p.writeSideToMove(&sb)
	sb.WriteByte(' ')
	sb.WriteString(p.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(p.enPassant.String())
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", p.halfmoveClock, p.fullmoveNumber)

	return sb.String()
}

// writePiecePlacement writes the piece placement to the builder, collapsing
// each run of empty squares into a single digit.
func (p *Position) writePiecePlacement(sb *strings.Builder) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := p.board[chess.SquareAt(file, rank)]
			if piece == chess.NoPiece {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteString(piece.String())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func (p *Position) writeSideToMove(sb *strings.Builder) {
	if p.sideToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// Canonical parses fen and serializes it again. The result differs from a
// valid input only in empty-square run grouping and castling letter order.
func Canonical(fen string) (string, error) {
	pos, err := FromFEN(fen)
	if err != nil {
		return "", err
	}
	return pos.FEN(), nil
}
