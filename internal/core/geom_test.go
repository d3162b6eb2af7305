package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectFits(t *testing.T) {
	screen := ScreenRect(15, 16)

	tests := []struct {
		w, h int
		want bool
	}{
		{15, 16, true}, // exact
		{13, 7, true},
		{16, 7, false},
		{13, 17, false},
	}
	for _, tc := range tests {
		if got := screen.Fits(tc.w, tc.h); got != tc.want {
			t.Errorf("Fits(%d, %d) = %v, expected %v", tc.w, tc.h, got, tc.want)
		}
	}
}

func TestRectCentered(t *testing.T) {
	inner := ScreenRect(80, 24).Centered(13, 7)

	if inner.X != 33 || inner.Y != 8 {
		t.Errorf("Centered() origin = (%d, %d), expected (33, 8)", inner.X, inner.Y)
	}
	if inner.W != 13 || inner.H != 7 {
		t.Errorf("Centered() size = %dx%d, expected 13x7", inner.W, inner.H)
	}

	// Offset parents shift the result
	inner = NewRect(4, 2, 10, 10).Centered(4, 4)
	if inner.X != 7 || inner.Y != 5 {
		t.Errorf("Centered() in offset rect = (%d, %d), expected (7, 5)", inner.X, inner.Y)
	}
}
