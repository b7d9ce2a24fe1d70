package morph

import (
	"testing"
)

func TestParseNorm(t *testing.T) {
	for _, s := range []string{"l1", "l2", "linf"} {
		if _, err := ParseNorm(s); err != nil {
			t.Errorf("%q: %v", s, err)
		}
	}
	if _, err := ParseNorm("l3"); err == nil {
		t.Error("expected error for unknown norm")
	}
}

func TestNormAggregate(t *testing.T) {
	d := []float64{3, 4}
	if got := NormL1.aggregate(d); got != 7 {
		t.Errorf("l1: got %v, want 7", got)
	}
	if got := NormL2.aggregate(d); got != 5 {
		t.Errorf("l2: got %v, want 5", got)
	}
	if got := NormLinf.aggregate(d); got != 4 {
		t.Errorf("linf: got %v, want 4", got)
	}
	// Unknown norms score like the default.
	if got := Norm("").aggregate(d); got != 7 {
		t.Errorf("default: got %v, want 7", got)
	}
}

func TestNormsDisagree(t *testing.T) {
	// One large deviation versus several small ones: L∞ prefers the evenly
	// spread option, L1 is indifferent, showing the norms are really wired
	// through to offset scoring.
	spiky := []float64{0, 0, 0, 6}
	flat := []float64{1.5, 1.5, 1.5, 1.5}
	if NormL1.aggregate(spiky) != NormL1.aggregate(flat) {
		t.Error("l1 should be indifferent")
	}
	if NormLinf.aggregate(spiky) <= NormLinf.aggregate(flat) {
		t.Error("linf should penalize the spike")
	}
	if l2s, l2f := NormL2.aggregate(spiky), NormL2.aggregate(flat); l2s <= l2f {
		t.Errorf("l2 should penalize the spike: %v vs %v", l2s, l2f)
	}
}
