package engine

import "github.com/sanj0/chessian/internal/board"

const (
	// MateScore is the magnitude of a checkmate score. Mates found earlier
	// score beyond it by the remaining depth, so the search prefers the
	// shortest mate and delays an unavoidable one.
	MateScore = 30000

	// Infinity bounds the alpha-beta window outside any reachable score.
	Infinity = 2 * MateScore

	// DrawScore is the value of stalemate and repetition.
	DrawScore = 0

	// Captures chains longer than this are cut off at the stand-pat score.
	maxQuiescenceDepth = 16
)

// searcher carries the bookkeeping of one best-move computation. The search
// itself is a pure function of (position, depth, window); the struct only
// accumulates the node count and holds the game history for repetition
// scoring.
type searcher struct {
	nodes   uint64
	history map[uint64]int
}

// negamax runs depth-first alpha-beta search to the given depth and returns
// the score along with the node's best move. The same code path serves both
// sides: each recursion negates the child's score and swaps the window.
func (s *searcher) negamax(p *board.Position, depth, alpha, beta int) (int, board.Move) {
	if depth == 0 {
		return s.quiescence(p, 0, alpha, beta), board.NoMove
	}
	s.nodes++

	// A position the game has already shown twice is a draw if entered again.
	if len(s.history) > 0 && s.history[p.Hash()] >= 2 {
		return DrawScore, board.NoMove
	}

	moves := p.LegalMoves()
	if len(moves) == 0 {
		if p.InCheck() {
			return -(MateScore + depth), board.NoMove
		}
		return DrawScore, board.NoMove
	}
	// At the last full-width ply every child drops straight into
	// quiescence, so ordering buys nothing there.
	if depth > 1 {
		orderMoves(p, moves)
	}

	best := board.NoMove
	for _, m := range moves {
		child := p.ApplyMove(m)
		score, _ := s.negamax(&child, depth-1, -beta, -alpha)
		score = -score
		if score >= beta {
			return beta, board.NoMove
		}
		if score > alpha {
			alpha = score
			best = m
		}
	}
	return alpha, best
}

// quiescence resolves capture chains at the search horizon: only captures
// and promotions are tried, seeded with the stand-pat score as a lower
// bound, until the position is quiet. This is what keeps the engine from
// misjudging a position where the last counted move wins material that is
// recaptured one ply later.
func (s *searcher) quiescence(p *board.Position, qDepth, alpha, beta int) int {
	s.nodes++

	standPat := Evaluate(p)
	if qDepth >= maxQuiescenceDepth {
		return standPat
	}
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	noisy := make([]board.Move, 0, 16)
	for _, m := range p.LegalMoves() {
		if m.IsCapture(p) || m.IsPromotion() {
			noisy = append(noisy, m)
		}
	}
	orderMoves(p, noisy)

	for _, m := range noisy {
		child := p.ApplyMove(m)
		score := -s.quiescence(&child, qDepth+1, -beta, -alpha)
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// rootLine is the outcome of one full-width iteration at the root.
type rootLine struct {
	move  board.Move
	reply board.Move
	score int
}

// searchRoot runs one alpha-beta iteration over the root candidates and
// returns the best move, the reply the search expects to it, and its score.
func (s *searcher) searchRoot(p *board.Position, candidates []board.Move, depth int) rootLine {
	alpha := -Infinity
	line := rootLine{move: candidates[0], score: -Infinity}
	for _, m := range candidates {
		child := p.ApplyMove(m)
		score, reply := s.negamax(&child, depth-1, -Infinity, -alpha)
		score = -score
		if score > alpha {
			alpha = score
			line = rootLine{move: m, reply: reply, score: score}
		}
	}
	return line
}
