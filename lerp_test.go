package morph

import (
	"math"
	"testing"
)

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Errorf("got %v, want 5", got)
	}
	if got := Lerp(0, 10, 0); got != 0 {
		t.Errorf("got %v, want 0", got)
	}
	if got := Lerp(0, 10, 1); got != 10 {
		t.Errorf("got %v, want 10", got)
	}
	// Out-of-range t extrapolates.
	if got := Lerp(0, 10, 1.5); got != 15 {
		t.Errorf("got %v, want 15", got)
	}
}

func TestAngleLerp(t *testing.T) {
	approx := func(want, got float64) {
		t.Helper()
		if math.Abs(want-got) > 1e-9 {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	// Shortest path across the 0/360 seam.
	approx(360, AngleLerp(350, 10, 0.5))
	approx(355, AngleLerp(350, 10, 0.25))
	// No seam crossing.
	approx(50, AngleLerp(0, 100, 0.5))
	// Symmetric the other way round.
	approx(0, AngleLerp(10, 350, 0.5))
	// Inputs normalize first.
	approx(45, AngleLerp(-270, 0, 0.5))
	// NaN treated as zero.
	approx(5, AngleLerp(math.NaN(), 10, 0.5))
	approx(0, AngleLerp(math.NaN(), math.NaN(), 0.5))
}

func TestStep(t *testing.T) {
	if got := Step("a", "b", 0.49); got != "a" {
		t.Errorf("got %q, want a", got)
	}
	if got := Step("a", "b", 0.5); got != "b" {
		t.Errorf("got %q, want b", got)
	}
	if got := Step(1, 2, 0); got != 1 {
		t.Errorf("got %v, want 1", got)
	}
	if got := Step(1, 2, 1); got != 2 {
		t.Errorf("got %v, want 2", got)
	}
}

func TestAngleDistance(t *testing.T) {
	approx := func(want, got float64) {
		t.Helper()
		if math.Abs(want-got) > 1e-12 {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	approx(0, angleDistance(1, 1))
	approx(math.Pi/2, angleDistance(0, math.Pi/2))
	// Always the shorter way round.
	approx(math.Pi/2, angleDistance(0, 3*math.Pi/2))
	approx(math.Pi, angleDistance(0, math.Pi))
}
