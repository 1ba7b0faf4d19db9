package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN of the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string. The half-move clock and full-move number
// fields may be omitted and default to 0 and 1. Malformed input is reported
// as an error and never silently corrected.
func ParseFEN(fen string) (Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return Position{}, fmt.Errorf("invalid FEN %q: need at least 4 fields, got %d", fen, len(parts))
	}

	p := Position{EnPassant: NoSquare, FullMoveNumber: 1}
	for i := range p.Board {
		p.Board[i] = NoPiece
	}

	if err := parsePlacement(&p, parts[0]); err != nil {
		return Position{}, err
	}

	switch parts[1] {
	case "w":
		p.SideToMove = White
	case "b":
		p.SideToMove = Black
	default:
		return Position{}, fmt.Errorf("invalid side to move %q", parts[1])
	}

	if err := parseCastling(&p, parts[2]); err != nil {
		return Position{}, err
	}

	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return Position{}, fmt.Errorf("invalid en passant square %q", parts[3])
		}
		p.EnPassant = sq
	}

	if len(parts) > 4 {
		hmc, err := strconv.Atoi(parts[4])
		if err != nil || hmc < 0 {
			return Position{}, fmt.Errorf("invalid half-move clock %q", parts[4])
		}
		p.HalfMoveClock = hmc
	}
	if len(parts) > 5 {
		fmn, err := strconv.Atoi(parts[5])
		if err != nil || fmn < 1 {
			return Position{}, fmt.Errorf("invalid full-move number %q", parts[5])
		}
		p.FullMoveNumber = fmn
	}

	for c := White; c <= Black; c++ {
		if n := countPiece(&p, NewPiece(King, c)); n != 1 {
			return Position{}, fmt.Errorf("invalid FEN: %d %s kings", n, c)
		}
	}

	return p, nil
}

func countPiece(p *Position, piece Piece) int {
	n := 0
	for sq := A1; sq <= H8; sq++ {
		if p.Board[sq] == piece {
			n++
		}
	}
	return n
}

func parsePlacement(p *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("invalid piece placement: need 8 ranks, got %d", len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if file > 7 {
				return fmt.Errorf("too many squares on rank %d", rank+1)
			}
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece := PieceFromChar(c)
			if piece == NoPiece {
				return fmt.Errorf("invalid piece character %q", c)
			}
			p.Board[SquareAt(file, rank)] = piece
			file++
		}
		if file != 8 {
			return fmt.Errorf("rank %d has %d squares", rank+1, file)
		}
	}
	return nil
}

func parseCastling(p *Position, castling string) error {
	if castling == "-" {
		p.CastlingRights = NoCastling
		return nil
	}
	for i := 0; i < len(castling); i++ {
		switch castling[i] {
		case 'K':
			p.CastlingRights |= WhiteKingSide
		case 'Q':
			p.CastlingRights |= WhiteQueenSide
		case 'k':
			p.CastlingRights |= BlackKingSide
		case 'q':
			p.CastlingRights |= BlackQueenSide
		default:
			return fmt.Errorf("invalid castling character %q", castling[i])
		}
	}
	return nil
}

// FEN returns the position in FEN notation. The conversion is lossless:
// ParseFEN followed by FEN reproduces any well-formed six-field input.
func (p *Position) FEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := p.Board[SquareAt(file, rank)]
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(p.CastlingRights.String())
	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.HalfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullMoveNumber))

	return sb.String()
}
