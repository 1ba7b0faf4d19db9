package board

import "testing"

func TestSquareRoundTrip(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		if got := SquareAt(sq.File(), sq.Rank()); got != sq {
			t.Errorf("SquareAt(File, Rank) of %s = %s", sq, got)
		}
		parsed, err := ParseSquare(sq.String())
		if err != nil || parsed != sq {
			t.Errorf("ParseSquare(%q) = %s, %v", sq.String(), parsed, err)
		}
	}
}

func TestSquareMirror(t *testing.T) {
	tests := []struct{ sq, want Square }{
		{A1, A8},
		{H8, H1},
		{E4, E5},
		{D2, D7},
	}
	for _, tc := range tests {
		if got := tc.sq.Mirror(); got != tc.want {
			t.Errorf("%s.Mirror() = %s, want %s", tc.sq, got, tc.want)
		}
		if back := tc.sq.Mirror().Mirror(); back != tc.sq {
			t.Errorf("double mirror of %s = %s", tc.sq, back)
		}
	}
}

func TestSquareOffset(t *testing.T) {
	if got := E4.Offset(1, 1); got != F5 {
		t.Errorf("e4 offset (1,1) = %s, want f5", got)
	}
	if got := E4.Offset(-2, 3); got != C7 {
		t.Errorf("e4 offset (-2,3) = %s, want c7", got)
	}

	// Stepping off the board must not wrap to the next rank.
	offBoard := []struct {
		sq     Square
		df, dr int
	}{
		{A1, -1, 0},
		{H1, 1, 0},
		{A1, 0, -1},
		{H8, 0, 1},
		{A4, -1, 1},
	}
	for _, tc := range offBoard {
		if got := tc.sq.Offset(tc.df, tc.dr); got != NoSquare {
			t.Errorf("%s offset (%d,%d) = %s, want NoSquare", tc.sq, tc.df, tc.dr, got)
		}
	}
}

func TestParseSquareErrors(t *testing.T) {
	for _, in := range []string{"", "e", "e44", "i4", "a0", "a9", "4e"} {
		if _, err := ParseSquare(in); err == nil {
			t.Errorf("ParseSquare(%q) accepted malformed input", in)
		}
	}
}
