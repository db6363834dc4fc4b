// Package risk holds the parsed station table and every record derived from
// it. All derived records are recomputed from scratch per upload and held in
// memory for the session only.
package risk

import (
	"watermetal/domain/metals"
)

// Station is one parsed input row: a station number and one concentration per
// tracked metal. Every tracked metal is present once parsing succeeds.
type Station struct {
	No             int                      `json:"station_no"` // S.No column
	Concentrations map[metals.Metal]float64 `json:"concentrations"`
}

// Concentration returns the measured value for one metal.
func (s Station) Concentration(m metals.Metal) float64 {
	return s.Concentrations[m]
}

// Table is the parsed input dataset in original row order.
type Table struct {
	Stations []Station `json:"stations"`
}

// Len returns the number of stations.
func (t Table) Len() int {
	return len(t.Stations)
}

// Column returns one metal's concentration series in station order.
func (t Table) Column(m metals.Metal) []float64 {
	col := make([]float64, len(t.Stations))
	for i, s := range t.Stations {
		col[i] = s.Concentrations[m]
	}
	return col
}

// StationRisk pairs a station with its Potential Ecological Risk Index.
type StationRisk struct {
	StationNo int     `json:"station_no"`
	PERI      float64 `json:"peri"`
}

// MetalContribution aggregates one metal's risk across all stations. Percent
// values across all metals sum to 100 within floating-point tolerance for any
// non-empty dataset.
type MetalContribution struct {
	Metal     metals.Metal `json:"metal"`
	TotalRisk float64      `json:"total_risk"`
	Percent   float64      `json:"percent"`
}

// Projection places one station in the reduced pollution-pattern space.
// Component sign/orientation is only determined up to an arbitrary flip.
type Projection struct {
	StationNo int     `json:"station_no"`
	PC1       float64 `json:"pc1"`
	PC2       float64 `json:"pc2"`
}

// MetalSummary describes one metal's concentration distribution across all
// stations.
type MetalSummary struct {
	Metal  metals.Metal `json:"metal"`
	Mean   float64      `json:"mean"`
	StdDev float64      `json:"std_dev"` // sample standard deviation (N-1)
	Min    float64      `json:"min"`
	Median float64      `json:"median"`
	Max    float64      `json:"max"`
}

// Bundle is the complete set of derived records for one dataset.
type Bundle struct {
	Risks         []StationRisk       `json:"risks"`         // one per station, input order
	Hotspots      []StationRisk       `json:"hotspots"`      // top min(5, N) by PERI descending
	Contributions []MetalContribution `json:"contributions"` // canonical metal order
	Projections   []Projection        `json:"projections"`   // one per station, input order
	Summaries     []MetalSummary      `json:"summaries"`     // canonical metal order
}
