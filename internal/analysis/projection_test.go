package analysis

import (
	"errors"
	"math"
	"testing"

	"watermetal/domain/core"
	"watermetal/domain/risk"
	"watermetal/internal/testkit"
)

// axesMatch reports whether two score columns are equal, allowing the whole
// axis to be negated. Principal directions are only defined up to sign.
func axesMatch(a, b []float64) bool {
	same, flipped := true, true
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-9 {
			same = false
		}
		if math.Abs(a[i]+b[i]) > 1e-9 {
			flipped = false
		}
	}
	return same || flipped
}

func TestProjectDeterministic(t *testing.T) {
	ds, err := testkit.Generate(testkit.Config{Stations: 12, Seed: 5, Hotspots: 2, Boost: 5})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	first, err := Project(ds.Table)
	if err != nil {
		t.Fatalf("First projection failed: %v", err)
	}
	second, err := Project(ds.Table)
	if err != nil {
		t.Fatalf("Second projection failed: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("Projection lengths differ: %d vs %d", len(first), len(second))
	}

	pc1a := make([]float64, len(first))
	pc1b := make([]float64, len(first))
	pc2a := make([]float64, len(first))
	pc2b := make([]float64, len(first))
	for i := range first {
		pc1a[i], pc2a[i] = first[i].PC1, first[i].PC2
		pc1b[i], pc2b[i] = second[i].PC1, second[i].PC2
	}

	if !axesMatch(pc1a, pc1b) {
		t.Errorf("PC1 scores differ between runs beyond a sign flip")
	}
	if !axesMatch(pc2a, pc2b) {
		t.Errorf("PC2 scores differ between runs beyond a sign flip")
	}
}

func TestProjectShape(t *testing.T) {
	ds, err := testkit.Generate(testkit.Config{Stations: 8, Seed: 11, Hotspots: 1, Boost: 4})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	projections, err := Project(ds.Table)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}

	if len(projections) != 8 {
		t.Fatalf("Expected 8 projections, got %d", len(projections))
	}
	for i, p := range projections {
		if p.StationNo != ds.Table.Stations[i].No {
			t.Errorf("Projection %d: station number %d does not match input %d", i, p.StationNo, ds.Table.Stations[i].No)
		}
		if math.IsNaN(p.PC1) || math.IsNaN(p.PC2) {
			t.Errorf("Station %d: projection contains NaN (%v, %v)", p.StationNo, p.PC1, p.PC2)
		}
	}
}

func TestProjectSeparatesOutlier(t *testing.T) {
	// A loose cluster around background plus one station at 10x everything.
	stations := make([]risk.Station, 0, 9)
	for i := 0; i < 8; i++ {
		s := stationAt(i+1, 0.9+0.03*float64(i))
		stations = append(stations, s)
	}
	stations = append(stations, stationAt(9, 10))

	projections, err := Project(risk.Table{Stations: stations})
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}

	outlier := projections[len(projections)-1]
	for _, p := range projections[:len(projections)-1] {
		if math.Abs(p.PC1) >= math.Abs(outlier.PC1) {
			t.Errorf("Station %d |PC1| = %v should not exceed outlier |PC1| = %v", p.StationNo, math.Abs(p.PC1), math.Abs(outlier.PC1))
		}
	}
}

func TestProjectTooFewStations(t *testing.T) {
	table := risk.Table{Stations: []risk.Station{stationAt(1, 1.2)}}

	_, err := Project(table)
	if err == nil {
		t.Fatal("Expected error for single-station table, got nil")
	}
	if !errors.Is(err, core.ErrInsufficientData) {
		t.Errorf("Expected ErrInsufficientData, got %v", err)
	}
}
