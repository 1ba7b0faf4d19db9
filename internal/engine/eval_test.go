package engine

import (
	"testing"

	"github.com/sanj0/chessian/internal/board"
)

func TestEvaluateStartingPosition(t *testing.T) {
	pos := board.NewPosition()
	if got := Evaluate(&pos); got != 0 {
		t.Errorf("starting position evaluates to %d, want 0", got)
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	pos, err := board.ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	first := Evaluate(&pos)
	for i := 0; i < 10; i++ {
		if got := Evaluate(&pos); got != first {
			t.Fatalf("evaluation changed between calls: %d then %d", first, got)
		}
	}
}

// TestEvaluateMaterialMonotonic removes a black piece and expects white's
// assessment to improve by at least that piece's bare value minus any
// positional swing.
func TestEvaluateMaterialMonotonic(t *testing.T) {
	tests := []struct {
		name    string
		full    string
		reduced string
		atLeast int
	}{
		{
			"queen up",
			"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			"rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			QueenValue / 2,
		},
		{
			"rook up",
			"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			"1nbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			RookValue / 2,
		},
		{
			"pawn up",
			"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			"rnbqkbnr/ppppppp1/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			PawnValue / 2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			full, err := board.ParseFEN(tc.full)
			if err != nil {
				t.Fatal(err)
			}
			reduced, err := board.ParseFEN(tc.reduced)
			if err != nil {
				t.Fatal(err)
			}
			gain := Evaluate(&reduced) - Evaluate(&full)
			if gain < tc.atLeast {
				t.Errorf("removing the piece gained %d, want at least %d", gain, tc.atLeast)
			}
		})
	}
}

// TestEvaluateSideToMoveRelative checks the negamax sign convention: the
// same placement scores with opposite sign depending on whose turn it is.
func TestEvaluateSideToMoveRelative(t *testing.T) {
	white, err := board.ParseFEN("rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w kq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	black, err := board.ParseFEN("rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b kq - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	w, b := Evaluate(&white), Evaluate(&black)
	if w != -b {
		t.Errorf("flipping side to move: got %d and %d, want exact negation", w, b)
	}
	if w <= 0 {
		t.Errorf("white a queen up scores %d, want positive", w)
	}
}

func TestEvaluateDoubledPawns(t *testing.T) {
	clean, err := board.ParseFEN("4k3/8/8/8/8/8/PP6/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	doubled, err := board.ParseFEN("4k3/8/8/8/P7/8/P7/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	if Evaluate(&doubled) >= Evaluate(&clean) {
		t.Errorf("doubled pawns (%d) not penalized against clean pawns (%d)",
			Evaluate(&doubled), Evaluate(&clean))
	}
}
