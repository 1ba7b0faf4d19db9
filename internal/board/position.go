package board

import (
	"errors"
	"fmt"
	"strings"
)

// CastlingRights is a bit set of the four castling options.
type CastlingRights uint8

const (
	WhiteKingSide CastlingRights = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide
	NoCastling  CastlingRights = 0
	AllCastling CastlingRights = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
)

// String returns the FEN castling field, e.g. "KQkq" or "-".
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	var sb strings.Builder
	if cr&WhiteKingSide != 0 {
		sb.WriteByte('K')
	}
	if cr&WhiteQueenSide != 0 {
		sb.WriteByte('Q')
	}
	if cr&BlackKingSide != 0 {
		sb.WriteByte('k')
	}
	if cr&BlackQueenSide != 0 {
		sb.WriteByte('q')
	}
	return sb.String()
}

// ErrIllegalMove is returned by ApplyMoveStrict for moves that are not legal
// in the given position.
var ErrIllegalMove = errors.New("illegal move")

// Position is a complete chess position. It is a value type: ApplyMove
// returns a new Position and the receiver is never modified.
//
// The zero Position is not a valid board; obtain positions from
// NewPosition, ParseFEN or ApplyMove.
type Position struct {
	Board          [64]Piece
	SideToMove     Color
	CastlingRights CastlingRights
	EnPassant      Square // en passant target square, NoSquare if none
	HalfMoveClock  int    // plies since the last pawn move or capture
	FullMoveNumber int    // starts at 1, incremented after black's move
}

// NewPosition returns the starting position.
func NewPosition() Position {
	p, err := ParseFEN(StartFEN)
	if err != nil {
		panic(err)
	}
	return p
}

// PieceAt returns the piece on the given square, or NoPiece.
func (p *Position) PieceAt(sq Square) Piece {
	return p.Board[sq]
}

// IsEmpty reports whether the given square is empty.
func (p *Position) IsEmpty(sq Square) bool {
	return p.Board[sq] == NoPiece
}

// KingSquare returns the square of the given color's king,
// or NoSquare if that king is absent.
func (p *Position) KingSquare(c Color) Square {
	king := NewPiece(King, c)
	for sq := A1; sq <= H8; sq++ {
		if p.Board[sq] == king {
			return sq
		}
	}
	return NoSquare
}

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool {
	king := p.KingSquare(p.SideToMove)
	if king == NoSquare {
		return false
	}
	return p.IsAttacked(king, p.SideToMove.Other())
}

// IsAttacked reports whether the given square is attacked by any piece of
// the given color.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	// Pawns attack diagonally forward, so look one rank back from their
	// direction of travel.
	dr := -1
	if by == Black {
		dr = 1
	}
	pawn := NewPiece(Pawn, by)
	for _, df := range [2]int{-1, 1} {
		if from := sq.Offset(df, dr); from != NoSquare && p.Board[from] == pawn {
			return true
		}
	}

	knight := NewPiece(Knight, by)
	for _, d := range knightOffsets {
		if from := sq.Offset(d[0], d[1]); from != NoSquare && p.Board[from] == knight {
			return true
		}
	}

	king := NewPiece(King, by)
	for _, d := range kingOffsets {
		if from := sq.Offset(d[0], d[1]); from != NoSquare && p.Board[from] == king {
			return true
		}
	}

	bishop := NewPiece(Bishop, by)
	rook := NewPiece(Rook, by)
	queen := NewPiece(Queen, by)
	for _, d := range bishopDirs {
		if hit := p.firstAlongRay(sq, d[0], d[1]); hit == bishop || hit == queen {
			return true
		}
	}
	for _, d := range rookDirs {
		if hit := p.firstAlongRay(sq, d[0], d[1]); hit == rook || hit == queen {
			return true
		}
	}
	return false
}

// firstAlongRay returns the first piece met walking from sq in the given
// direction, or NoPiece if the ray runs off the board empty.
func (p *Position) firstAlongRay(sq Square, df, dr int) Piece {
	for cur := sq.Offset(df, dr); cur != NoSquare; cur = cur.Offset(df, dr) {
		if piece := p.Board[cur]; piece != NoPiece {
			return piece
		}
	}
	return NoPiece
}

// castlingMask[sq] clears the rights lost when a piece moves from or is
// captured on sq (king squares clear both rights, rook corners one).
var castlingMask [64]CastlingRights

func init() {
	for sq := range castlingMask {
		castlingMask[sq] = AllCastling
	}
	castlingMask[E1] = AllCastling &^ (WhiteKingSide | WhiteQueenSide)
	castlingMask[A1] = AllCastling &^ WhiteQueenSide
	castlingMask[H1] = AllCastling &^ WhiteKingSide
	castlingMask[E8] = AllCastling &^ (BlackKingSide | BlackQueenSide)
	castlingMask[A8] = AllCastling &^ BlackQueenSide
	castlingMask[H8] = AllCastling &^ BlackKingSide
}

// ApplyMove plays the move and returns the resulting position. The receiver
// is left untouched. The move is not validated; use ApplyMoveStrict when the
// move comes from outside the move generator.
func (p *Position) ApplyMove(m Move) Position {
	next := *p
	moving := next.Board[m.From()]
	captured := next.Board[m.To()]

	next.Board[m.From()] = NoPiece
	next.Board[m.To()] = moving
	next.EnPassant = NoSquare
	next.HalfMoveClock++

	switch {
	case m.IsEnPassant():
		// The captured pawn sits beside the origin on the destination file.
		next.Board[SquareAt(m.To().File(), m.From().Rank())] = NoPiece
		captured = NewPiece(Pawn, p.SideToMove.Other())
	case m.IsCastle():
		rookFrom, rookTo := rookCastleSquares(m.To())
		next.Board[rookTo] = next.Board[rookFrom]
		next.Board[rookFrom] = NoPiece
	case m.IsPromotion():
		next.Board[m.To()] = NewPiece(m.Promotion(), p.SideToMove)
	}

	if moving.Type() == Pawn {
		next.HalfMoveClock = 0
		if diff := int(m.To()) - int(m.From()); diff == 16 || diff == -16 {
			next.EnPassant = Square((int(m.From()) + int(m.To())) / 2)
		}
	}
	if captured != NoPiece {
		next.HalfMoveClock = 0
	}

	next.CastlingRights &= castlingMask[m.From()] & castlingMask[m.To()]

	if p.SideToMove == Black {
		next.FullMoveNumber++
	}
	next.SideToMove = p.SideToMove.Other()
	return next
}

// ApplyMoveStrict is ApplyMove with validation: the move must be one of
// LegalMoves. Meant for moves arriving from an interaction layer.
func (p *Position) ApplyMoveStrict(m Move) (Position, error) {
	for _, legal := range p.LegalMoves() {
		if legal == m {
			return p.ApplyMove(m), nil
		}
	}
	return Position{}, fmt.Errorf("%w: %s", ErrIllegalMove, m)
}

// rookCastleSquares maps the king's castling destination to the rook's
// origin and destination.
func rookCastleSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case G1:
		return H1, F1
	case C1:
		return A1, D1
	case G8:
		return H8, F8
	default: // C8
		return A8, D8
	}
}

// String renders the board from white's perspective, for logs and tests.
func (p *Position) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			piece := p.Board[SquareAt(file, rank)]
			if piece == NoPiece {
				sb.WriteString(" .")
			} else {
				sb.WriteString(" " + piece.String())
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h\n")
	return sb.String()
}
