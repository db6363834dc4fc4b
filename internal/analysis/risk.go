// Package analysis implements the pure computations of the assessment
// pipeline: the risk index calculator, the hotspot ranker, the pattern
// projector and the concentration summaries. Every function here is a
// stateless transform of the parsed station table.
package analysis

import (
	"watermetal/domain/metals"
	"watermetal/domain/risk"
)

// ComputeStationRisks computes the Potential Ecological Risk Index for every
// station:
//
//	PERI(station) = sum over tracked metals m of toxicity(m) * conc(station, m) / background(m)
//
// Results are returned in input row order, one record per station. Background
// values are non-zero by construction of the reference tables; this is a
// precondition, not a runtime check.
func ComputeStationRisks(table risk.Table, ref metals.Reference) []risk.StationRisk {
	risks := make([]risk.StationRisk, table.Len())
	for i, station := range table.Stations {
		var peri float64
		for _, m := range metals.Tracked() {
			peri += ref.Toxicity(m) * station.Concentration(m) / ref.Background(m)
		}
		risks[i] = risk.StationRisk{StationNo: station.No, PERI: peri}
	}
	return risks
}

// ComputeContributions aggregates, per metal, the risk contributed across all
// stations and its percentage share of the grand total. Records come back in
// canonical metal order. For a non-empty table the percentages sum to 100
// within floating-point tolerance.
func ComputeContributions(table risk.Table, ref metals.Reference) []risk.MetalContribution {
	tracked := metals.Tracked()
	contributions := make([]risk.MetalContribution, len(tracked))

	var grandTotal float64
	for i, m := range tracked {
		var total float64
		for _, station := range table.Stations {
			total += ref.Toxicity(m) * station.Concentration(m) / ref.Background(m)
		}
		contributions[i] = risk.MetalContribution{Metal: m, TotalRisk: total}
		grandTotal += total
	}

	if grandTotal != 0 {
		for i := range contributions {
			contributions[i].Percent = 100 * contributions[i].TotalRisk / grandTotal
		}
	}

	return contributions
}
