// Package engine implements the search core: evaluation, quiescence search,
// alpha-beta search and the budgeted controller that drives them.
package engine

import "github.com/sanj0/chessian/internal/board"

// Piece values in centipawns.
const (
	PawnValue   = 100
	KnightValue = 320
	BishopValue = 333
	RookValue   = 500
	QueenValue  = 900
	KingValue   = 20000
)

var pieceValues = [6]int{PawnValue, KnightValue, BishopValue, RookValue, QueenValue, KingValue}

const (
	doubledPawnPenalty = 45
	// Endgame tables take over when fewer than this many men remain.
	endgameMenLimit = 20
)

// Piece-square tables from white's perspective, indexed A1=0. Black reads
// them through Square.Mirror.
var pieceSquare = [6][64]int{
	{ // pawn
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, -20, -20, 10, 10, 5,
		5, -5, -10, 0, 0, -10, -5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, 5, 10, 25, 25, 10, 5, 5,
		10, 10, 20, 30, 30, 20, 10, 10,
		50, 50, 50, 50, 50, 50, 50, 50,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	{ // knight
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	{ // bishop
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	{ // rook
		0, 0, 0, 10, 10, 0, 0, 0,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		10, 20, 20, 20, 20, 20, 20, 10,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	{ // queen
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-10, 5, 5, 5, 5, 5, 0, -10,
		0, 0, 5, 5, 5, 5, 0, -5,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	{ // king, middlegame
		10, 20, 10, 0, 0, 10, 20, 10,
		10, 10, 0, 0, 0, 0, 10, 10,
		-10, -20, -20, -20, -20, -20, -20, -10,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
	},
}

// endgamePawnBonus rewards advanced pawns once the endgame starts.
var endgamePawnBonus = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	15, 15, 15, 15, 15, 15, 15, 15,
	20, 20, 20, 20, 20, 20, 20, 20,
	25, 25, 25, 25, 25, 25, 25, 25,
	30, 30, 30, 30, 30, 30, 30, 30,
	35, 35, 35, 35, 35, 35, 35, 35,
	40, 40, 40, 40, 40, 40, 40, 40,
}

// endgameKingTable drives the king toward the center in the endgame,
// replacing the middlegame king terms entirely.
var endgameKingTable = [64]int{
	-50, -40, -30, -20, -20, -30, -40, -50,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-50, -30, -30, -30, -30, -30, -30, -50,
}

// Evaluate scores the position for the side to move, in centipawns:
// positive means the mover stands better. It is deterministic and responds
// monotonically to material changes, which is all the search relies on.
func Evaluate(p *board.Position) int {
	score := evaluateForWhite(p)
	if p.SideToMove == board.Black {
		return -score
	}
	return score
}

// evaluateForWhite computes the white-positive score: material plus
// piece-square terms, a doubled-pawn sanction and endgame adjustments.
func evaluateForWhite(p *board.Position) int {
	men := 0
	for sq := board.A1; sq <= board.H8; sq++ {
		if !p.IsEmpty(sq) {
			men++
		}
	}
	endgame := men < endgameMenLimit

	var score int
	var pawnsOnFile [2][8]int

	for sq := board.A1; sq <= board.H8; sq++ {
		piece := p.PieceAt(sq)
		if piece == board.NoPiece {
			continue
		}
		pt, c := piece.Type(), piece.Color()
		idx := sq
		if c == board.Black {
			idx = sq.Mirror()
		}

		term := pieceValues[pt] + pieceSquare[pt][idx]
		switch pt {
		case board.Pawn:
			pawnsOnFile[c][sq.File()]++
			if endgame {
				term += endgamePawnBonus[idx]
			}
		case board.King:
			if endgame {
				term = endgameKingTable[idx]
			}
		}

		if c == board.White {
			score += term
		} else {
			score -= term
		}
	}

	for file := 0; file < 8; file++ {
		if n := pawnsOnFile[board.White][file]; n > 1 {
			score -= (n - 1) * doubledPawnPenalty
		}
		if n := pawnsOnFile[board.Black][file]; n > 1 {
			score += (n - 1) * doubledPawnPenalty
		}
	}

	return score
}
