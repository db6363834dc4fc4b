package analysis

import (
	"testing"

	"watermetal/domain/risk"
)

func risksFrom(peris ...float64) []risk.StationRisk {
	out := make([]risk.StationRisk, len(peris))
	for i, p := range peris {
		out[i] = risk.StationRisk{StationNo: i + 1, PERI: p}
	}
	return out
}

func TestTopHotspotsOrderAndLimit(t *testing.T) {
	risks := risksFrom(12, 88, 34, 150, 9, 61, 45, 200, 3, 77)

	hotspots := TopHotspots(risks)

	if len(hotspots) != HotspotLimit {
		t.Fatalf("Expected %d hotspots, got %d", HotspotLimit, len(hotspots))
	}
	for i := 1; i < len(hotspots); i++ {
		if hotspots[i].PERI > hotspots[i-1].PERI {
			t.Errorf("Hotspots not in descending order at %d: %v after %v", i, hotspots[i].PERI, hotspots[i-1].PERI)
		}
	}

	selected := make(map[int]bool, len(hotspots))
	minSelected := hotspots[len(hotspots)-1].PERI
	for _, h := range hotspots {
		selected[h.StationNo] = true
	}
	for _, r := range risks {
		if !selected[r.StationNo] && r.PERI > minSelected {
			t.Errorf("Station %d (PERI %v) was excluded despite exceeding selected minimum %v", r.StationNo, r.PERI, minSelected)
		}
	}
}

func TestTopHotspotsShorterInput(t *testing.T) {
	risks := risksFrom(10, 30, 20)

	hotspots := TopHotspots(risks)

	if len(hotspots) != 3 {
		t.Fatalf("Expected all 3 stations, got %d", len(hotspots))
	}
	want := []int{2, 3, 1}
	for i, h := range hotspots {
		if h.StationNo != want[i] {
			t.Errorf("Position %d: station %d, want %d", i, h.StationNo, want[i])
		}
	}
}

func TestTopHotspotsTieKeepsInputOrder(t *testing.T) {
	// Stations 2 and 4 tie at 70, stations 1 and 3 tie at 50.
	risks := risksFrom(50, 70, 50, 70, 10, 5)

	hotspots := TopHotspots(risks)

	want := []int{2, 4, 1, 3, 5}
	if len(hotspots) != len(want) {
		t.Fatalf("Expected %d hotspots, got %d", len(want), len(hotspots))
	}
	for i, h := range hotspots {
		if h.StationNo != want[i] {
			t.Errorf("Position %d: station %d, want %d (ties must keep input order)", i, h.StationNo, want[i])
		}
	}
}

func TestTopHotspotsDoesNotMutateInput(t *testing.T) {
	risks := risksFrom(12, 88, 34, 150, 9, 61)
	original := make([]risk.StationRisk, len(risks))
	copy(original, risks)

	TopHotspots(risks)

	for i := range risks {
		if risks[i] != original[i] {
			t.Errorf("Input slice mutated at %d: %+v, want %+v", i, risks[i], original[i])
		}
	}
}
