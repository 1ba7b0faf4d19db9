package engine

import (
	"sort"

	"github.com/sanj0/chessian/internal/board"
)

// noisyMoveBonus lifts captures and promotions above every quiet move.
const noisyMoveBonus = 10000

// orderMoves sorts moves in place, most promising first: promotions and
// captures (valuable victim, cheap attacker) ahead of quiet moves, which are
// ranked by the piece-square gain of their destination. A cheap heuristic is
// all the pruning needs; it is not a history or killer-move scheme.
func orderMoves(p *board.Position, moves []board.Move) {
	type scored struct {
		move  board.Move
		score int
	}
	ranked := make([]scored, len(moves))
	for i, m := range moves {
		ranked[i] = scored{move: m, score: orderScore(p, m)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	for i := range ranked {
		moves[i] = ranked[i].move
	}
}

func orderScore(p *board.Position, m board.Move) int {
	mover := p.PieceAt(m.From())
	var score int
	if m.IsPromotion() {
		score += noisyMoveBonus + pieceValues[m.Promotion()]
	}
	if m.IsCapture(p) {
		score += noisyMoveBonus + 10*victimValue(p, m) - pieceValues[mover.Type()]
	}
	if score == 0 {
		score = pstGain(mover, m)
	}
	return score
}

// victimValue returns the value of the piece a move captures.
func victimValue(p *board.Position, m board.Move) int {
	if m.IsEnPassant() {
		return PawnValue
	}
	victim := p.PieceAt(m.To())
	if victim == board.NoPiece {
		return 0
	}
	return pieceValues[victim.Type()]
}

// pstGain scores a quiet move by the piece-square improvement of its mover.
func pstGain(mover board.Piece, m board.Move) int {
	pt := mover.Type()
	if pt == board.NoPieceType {
		return 0
	}
	from, to := m.From(), m.To()
	if mover.Color() == board.Black {
		from, to = from.Mirror(), to.Mirror()
	}
	return pieceSquare[pt][to] - pieceSquare[pt][from]
}
