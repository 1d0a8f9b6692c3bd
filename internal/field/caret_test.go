package field

import (
	"math"
	"testing"
	"time"
)

func TestFadeOut(t *testing.T) {
	cases := []struct{ t, want float64 }{
		{0, 1},
		{0.5, 0.25},
		{1, 0},
		{-1, 1},
		{2, 0},
	}
	for _, tc := range cases {
		if got := FadeOut(tc.t); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("FadeOut(%v) = %v, want %v", tc.t, got, tc.want)
		}
	}
}

func TestOpacityRepeats(t *testing.T) {
	period := time.Second
	first := Opacity(FadeOut, period, 250*time.Millisecond)
	later := Opacity(FadeOut, period, 3*period+250*time.Millisecond)
	if math.Abs(first-later) > 1e-9 {
		t.Fatalf("expected repeating curve, got %v and %v", first, later)
	}
	if got := Opacity(FadeOut, period, 0); got != 1 {
		t.Fatalf("expected opaque start, got %v", got)
	}
	if got := Opacity(FadeOut, 0, time.Hour); got != 1 {
		t.Fatalf("zero period should hold the start value, got %v", got)
	}
}
