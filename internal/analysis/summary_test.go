package analysis

import (
	"math"
	"testing"

	"watermetal/domain/metals"
	"watermetal/domain/risk"
)

func TestSummariesKnownValues(t *testing.T) {
	table := risk.Table{Stations: []risk.Station{
		{No: 1, Concentrations: concEverywhere(1)},
		{No: 2, Concentrations: concEverywhere(3)},
	}}

	summaries := Summaries(table)

	tracked := metals.Tracked()
	if len(summaries) != len(tracked) {
		t.Fatalf("Expected %d summaries, got %d", len(tracked), len(summaries))
	}

	for i, s := range summaries {
		if s.Metal != tracked[i] {
			t.Errorf("Summary %d: metal %s out of canonical order, want %s", i, s.Metal, tracked[i])
		}
		if s.Mean != 2 {
			t.Errorf("Metal %s: mean = %v, want 2", s.Metal, s.Mean)
		}
		if s.Min != 1 || s.Max != 3 {
			t.Errorf("Metal %s: min/max = %v/%v, want 1/3", s.Metal, s.Min, s.Max)
		}
		if s.Median != 2 {
			t.Errorf("Metal %s: median = %v, want 2", s.Metal, s.Median)
		}
		if math.Abs(s.StdDev-math.Sqrt2) > 1e-9 {
			t.Errorf("Metal %s: sample stddev = %v, want sqrt(2)", s.Metal, s.StdDev)
		}
	}
}

func TestSummariesEmptyTable(t *testing.T) {
	if got := Summaries(risk.Table{}); got != nil {
		t.Errorf("Empty table should yield nil summaries, got %v", got)
	}
}

func concEverywhere(v float64) map[metals.Metal]float64 {
	conc := make(map[metals.Metal]float64)
	for _, m := range metals.Tracked() {
		conc[m] = v
	}
	return conc
}
