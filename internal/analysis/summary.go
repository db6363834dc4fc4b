package analysis

import (
	"github.com/montanaflynn/stats"

	"watermetal/domain/metals"
	"watermetal/domain/risk"
)

// Summaries computes per-metal concentration distribution statistics across
// all stations, in canonical metal order. Returns nil for an empty table.
func Summaries(table risk.Table) []risk.MetalSummary {
	if table.Len() == 0 {
		return nil
	}

	tracked := metals.Tracked()
	summaries := make([]risk.MetalSummary, len(tracked))
	for i, m := range tracked {
		col := table.Column(m)

		mean, _ := stats.Mean(col)
		stdDev, _ := stats.StandardDeviationSample(col)
		min, _ := stats.Min(col)
		median, _ := stats.Median(col)
		max, _ := stats.Max(col)

		summaries[i] = risk.MetalSummary{
			Metal:  m,
			Mean:   mean,
			StdDev: stdDev,
			Min:    min,
			Median: median,
			Max:    max,
		}
	}
	return summaries
}
