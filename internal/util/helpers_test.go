package util

import "testing"

func TestClamp(t *testing.T) {
	cases := []struct{ v, lo, hi, want int }{
		{3, 0, 5, 3},
		{-1, 0, 5, 0},
		{6, 0, 5, 5},
	}
	for _, tc := range cases {
		if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.want {
			t.Fatalf("Clamp(%d, %d, %d) = %d, want %d", tc.v, tc.lo, tc.hi, got, tc.want)
		}
	}
	if got := ClampFloat(1.5, 0, 1); got != 1 {
		t.Fatalf("expected 1, got %v", got)
	}
}
