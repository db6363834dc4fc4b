package analysis

import (
	"sort"

	"watermetal/domain/risk"
)

// HotspotLimit is the number of highest-risk stations flagged for prioritized
// attention.
const HotspotLimit = 5

// TopHotspots returns the min(HotspotLimit, N) highest-PERI stations, ordered
// descending. The sort is stable: stations with equal PERI keep their input
// order. Short inputs are returned whole, fully sorted. The input slice is not
// modified.
func TopHotspots(risks []risk.StationRisk) []risk.StationRisk {
	ranked := make([]risk.StationRisk, len(risks))
	copy(ranked, risks)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PERI > ranked[j].PERI
	})

	if len(ranked) > HotspotLimit {
		ranked = ranked[:HotspotLimit]
	}
	return ranked
}
