package engine

import (
	"testing"

	"github.com/sanj0/chessian/internal/board"
)

// naiveSearch is full-width negamax with no window, the reference the pruned
// search must agree with when started from an open window.
func naiveSearch(s *searcher, p *board.Position, depth int) int {
	if depth == 0 {
		return naiveQuiescence(p, 0)
	}
	moves := p.LegalMoves()
	if len(moves) == 0 {
		if p.InCheck() {
			return -(MateScore + depth)
		}
		return DrawScore
	}
	best := -Infinity
	for _, m := range moves {
		child := p.ApplyMove(m)
		if score := -naiveSearch(s, &child, depth-1); score > best {
			best = score
		}
	}
	return best
}

func naiveQuiescence(p *board.Position, qDepth int) int {
	best := Evaluate(p)
	if qDepth >= maxQuiescenceDepth {
		return best
	}
	for _, m := range p.LegalMoves() {
		if !m.IsCapture(p) && !m.IsPromotion() {
			continue
		}
		child := p.ApplyMove(m)
		if score := -naiveQuiescence(&child, qDepth+1); score > best {
			best = score
		}
	}
	return best
}

// TestPruningPreservesScore checks that alpha-beta cutoffs never change the
// value: from an open window the pruned search and plain negamax agree
// exactly.
func TestPruningPreservesScore(t *testing.T) {
	tests := []struct {
		fen   string
		depth int
	}{
		{board.StartFEN, 3},
		{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3},
		{"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2", 3},
		{"4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1", 2},
	}

	for _, tc := range tests {
		pos, err := board.ParseFEN(tc.fen)
		if err != nil {
			t.Fatal(err)
		}

		pruned := &searcher{}
		line := pruned.searchRoot(&pos, pos.LegalMoves(), tc.depth)

		naive := &searcher{}
		want := naiveSearch(naive, &pos, tc.depth)

		if line.score != want {
			t.Errorf("%s depth %d: pruned score %d, naive score %d",
				tc.fen, tc.depth, line.score, want)
		}
	}
}

func TestSearchFindsMateInOne(t *testing.T) {
	pos, err := board.ParseFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	s := &searcher{}
	line := s.searchRoot(&pos, pos.LegalMoves(), 2)

	if want := board.NewMove(board.A1, board.A8); line.move != want {
		t.Errorf("best move = %s, want a1a8", line.move)
	}
	if line.score < MateScore {
		t.Errorf("score = %d, want a mate score", line.score)
	}
}

// TestMatePreferenceShort: a deeper search must still report the quickest
// mate, because mates found with more depth remaining score higher.
func TestMatePreferenceShort(t *testing.T) {
	pos, err := board.ParseFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	s := &searcher{}
	line := s.searchRoot(&pos, pos.LegalMoves(), 4)

	if want := board.NewMove(board.A1, board.A8); line.move != want {
		t.Errorf("best move at depth 4 = %s, want a1a8", line.move)
	}
}

// TestQuiescenceSeesHangingPiece: at the horizon a hanging queen must be
// cashed in rather than overlooked.
func TestQuiescenceSeesHangingPiece(t *testing.T) {
	pos, err := board.ParseFEN("k7/8/8/3q4/4P3/8/8/K7 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	s := &searcher{}
	standPat := Evaluate(&pos)
	got := s.quiescence(&pos, 0, -Infinity, Infinity)
	if got < standPat+QueenValue/2 {
		t.Errorf("quiescence score = %d, stand pat = %d; capturing the queen should gain at least %d",
			got, standPat, QueenValue/2)
	}

	line := s.searchRoot(&pos, pos.LegalMoves(), 1)
	if want := board.NewMove(board.E4, board.D5); line.move != want {
		t.Errorf("best move = %s, want e4d5", line.move)
	}
}

// TestQuiescenceStandPat: with no captures available the horizon score is
// the static evaluation itself.
func TestQuiescenceStandPat(t *testing.T) {
	pos, err := board.ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	s := &searcher{}
	if got, want := s.quiescence(&pos, 0, -Infinity, Infinity), Evaluate(&pos); got != want {
		t.Errorf("quiet position: quiescence = %d, static eval = %d", got, want)
	}
}

func TestRepetitionScoredAsDraw(t *testing.T) {
	pos, err := board.ParseFEN("4k3/8/8/8/8/8/4R3/4K3 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	s := &searcher{history: map[uint64]int{pos.Hash(): 2}}
	score, _ := s.negamax(&pos, 3, -Infinity, Infinity)
	if score != DrawScore {
		t.Errorf("twice-seen position scored %d, want %d", score, DrawScore)
	}
}

func TestStalemateScoredZero(t *testing.T) {
	// Black to move, no legal moves, not in check.
	pos, err := board.ParseFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if n := len(pos.LegalMoves()); n != 0 {
		t.Fatalf("expected stalemate, found %d legal moves", n)
	}

	s := &searcher{}
	score, _ := s.negamax(&pos, 3, -Infinity, Infinity)
	if score != DrawScore {
		t.Errorf("stalemate scored %d, want %d", score, DrawScore)
	}
}
