package board

// Piece movement tables as (file, rank) deltas.
var (
	knightOffsets = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingOffsets   = [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	bishopDirs    = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	rookDirs      = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
)

// promotionTypes lists the pieces a pawn may promote to, strongest first.
var promotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

// LegalMoves returns every strictly legal move for the side to move:
// pseudo-legal moves filtered so that the mover's king is never left
// attacked. The result is empty exactly on checkmate and stalemate; the
// caller tells them apart with InCheck.
func (p *Position) LegalMoves() []Move {
	return p.legalMoves(NoSquare)
}

// LegalMovesFrom returns the legal moves whose origin is the given square.
// Used by interaction layers to highlight the destinations of one piece.
func (p *Position) LegalMovesFrom(from Square) []Move {
	return p.legalMoves(from)
}

func (p *Position) legalMoves(origin Square) []Move {
	us := p.SideToMove
	pseudo := make([]Move, 0, 48)
	for sq := A1; sq <= H8; sq++ {
		if origin != NoSquare && sq != origin {
			continue
		}
		piece := p.Board[sq]
		if piece == NoPiece || piece.Color() != us {
			continue
		}
		switch piece.Type() {
		case Pawn:
			pseudo = p.pawnMoves(sq, pseudo)
		case Knight:
			pseudo = p.leaperMoves(sq, knightOffsets[:], pseudo)
		case Bishop:
			pseudo = p.sliderMoves(sq, bishopDirs[:], pseudo)
		case Rook:
			pseudo = p.sliderMoves(sq, rookDirs[:], pseudo)
		case Queen:
			pseudo = p.sliderMoves(sq, bishopDirs[:], pseudo)
			pseudo = p.sliderMoves(sq, rookDirs[:], pseudo)
		case King:
			pseudo = p.leaperMoves(sq, kingOffsets[:], pseudo)
			pseudo = p.castleMoves(sq, pseudo)
		}
	}

	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if p.keepsKingSafe(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// keepsKingSafe reports whether the mover's king survives the move.
func (p *Position) keepsKingSafe(m Move) bool {
	us := p.SideToMove
	next := p.ApplyMove(m)
	king := next.KingSquare(us)
	if king == NoSquare {
		return false
	}
	return !next.IsAttacked(king, us.Other())
}

func (p *Position) pawnMoves(from Square, out []Move) []Move {
	us := p.SideToMove
	dir, startRank, promoRank := 1, 1, 7
	if us == Black {
		dir, startRank, promoRank = -1, 6, 0
	}

	appendPawnMove := func(to Square) []Move {
		if to.Rank() == promoRank {
			for _, pt := range promotionTypes {
				out = append(out, NewPromotion(from, to, pt))
			}
			return out
		}
		return append(out, NewMove(from, to))
	}

	if to := from.Offset(0, dir); to != NoSquare && p.IsEmpty(to) {
		out = appendPawnMove(to)
		if from.Rank() == startRank {
			if to2 := from.Offset(0, 2*dir); p.IsEmpty(to2) {
				out = append(out, NewMove(from, to2))
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		to := from.Offset(df, dir)
		if to == NoSquare {
			continue
		}
		if target := p.Board[to]; target != NoPiece && target.Color() == us.Other() {
			out = appendPawnMove(to)
		} else if to == p.EnPassant && p.EnPassant != NoSquare {
			out = append(out, NewEnPassant(from, to))
		}
	}
	return out
}

func (p *Position) leaperMoves(from Square, offsets [][2]int, out []Move) []Move {
	us := p.SideToMove
	for _, d := range offsets {
		to := from.Offset(d[0], d[1])
		if to == NoSquare {
			continue
		}
		if target := p.Board[to]; target == NoPiece || target.Color() != us {
			out = append(out, NewMove(from, to))
		}
	}
	return out
}

func (p *Position) sliderMoves(from Square, dirs [][2]int, out []Move) []Move {
	us := p.SideToMove
	for _, d := range dirs {
		for to := from.Offset(d[0], d[1]); to != NoSquare; to = to.Offset(d[0], d[1]) {
			target := p.Board[to]
			if target == NoPiece {
				out = append(out, NewMove(from, to))
				continue
			}
			if target.Color() != us {
				out = append(out, NewMove(from, to))
			}
			break
		}
	}
	return out
}

// castleMoves generates castling for the king on its home square. The king
// must hold the right, the path must be clear, the rook must still stand on
// its corner and the king may not castle out of or through check. The
// landing square is covered by the legality filter like any other move.
func (p *Position) castleMoves(from Square, out []Move) []Move {
	us := p.SideToMove
	them := us.Other()
	home, kingRight, queenRight := E1, WhiteKingSide, WhiteQueenSide
	if us == Black {
		home, kingRight, queenRight = E8, BlackKingSide, BlackQueenSide
	}
	if from != home || p.IsAttacked(home, them) {
		return out
	}
	rook := NewPiece(Rook, us)

	if p.CastlingRights&kingRight != 0 {
		f, g := home+1, home+2
		if p.IsEmpty(f) && p.IsEmpty(g) && p.Board[home+3] == rook && !p.IsAttacked(f, them) {
			out = append(out, NewCastle(from, g))
		}
	}
	if p.CastlingRights&queenRight != 0 {
		d, c, b := home-1, home-2, home-3
		if p.IsEmpty(d) && p.IsEmpty(c) && p.IsEmpty(b) && p.Board[home-4] == rook && !p.IsAttacked(d, them) {
			out = append(out, NewCastle(from, c))
		}
	}
	return out
}
