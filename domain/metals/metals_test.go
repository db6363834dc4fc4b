package metals

import (
	"testing"
)

// TestTrackedOrder verifies the canonical column order is fixed
func TestTrackedOrder(t *testing.T) {
	expected := []Metal{Fe, Mn, Cr, Cu, Ni, Co, Pb, Zn}
	got := Tracked()

	if len(got) != len(expected) {
		t.Fatalf("Expected %d tracked metals, got %d", len(expected), len(got))
	}
	for i, m := range expected {
		if got[i] != m {
			t.Errorf("Position %d: expected %s, got %s", i, m, got[i])
		}
	}
}

// TestDefaultReferenceCoversTracked verifies both tables stay consistent in
// key set with the tracked metal columns
func TestDefaultReferenceCoversTracked(t *testing.T) {
	ref := DefaultReference()
	if !ref.Covers() {
		t.Fatal("Default reference tables must cover every tracked metal")
	}

	for _, m := range Tracked() {
		if ref.Background(m) == 0 {
			t.Errorf("Background for %s must be non-zero", m)
		}
		if ref.Toxicity(m) == 0 {
			t.Errorf("Toxicity for %s must be non-zero", m)
		}
	}
}

// TestDefaultReferenceValues pins the reference constants
func TestDefaultReferenceValues(t *testing.T) {
	ref := DefaultReference()

	background := map[Metal]float64{
		Fe: 35000, Mn: 600, Cr: 90, Cu: 45, Ni: 50, Co: 19, Pb: 20, Zn: 95,
	}
	toxicity := map[Metal]float64{
		Fe: 1, Mn: 1, Cr: 5, Cu: 5, Ni: 5, Co: 5, Pb: 10, Zn: 1,
	}

	for m, want := range background {
		if got := ref.Background(m); got != want {
			t.Errorf("Background(%s): expected %v, got %v", m, want, got)
		}
	}
	for m, want := range toxicity {
		if got := ref.Toxicity(m); got != want {
			t.Errorf("Toxicity(%s): expected %v, got %v", m, want, got)
		}
	}
}

// TestToxicitySum verifies the at-background score
func TestToxicitySum(t *testing.T) {
	if sum := DefaultReference().ToxicitySum(); sum != 33 {
		t.Errorf("Expected toxicity-weight sum 33, got %v", sum)
	}
}
