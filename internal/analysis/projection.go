package analysis

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"watermetal/domain/core"
	"watermetal/domain/metals"
	"watermetal/domain/risk"
)

// Project standardizes the concentration matrix and reduces it to the top two
// principal components, producing a (PC1, PC2) pair per station in input
// order.
//
// Each column is standardized with its mean and sample standard deviation
// (N-1 denominator); constant columns standardize to zero instead of dividing
// by zero. Component sign is arbitrary: projections are deterministic for
// fixed input but only up to a per-axis flip.
func Project(table risk.Table) ([]risk.Projection, error) {
	n := table.Len()
	if n < 2 {
		return nil, fmt.Errorf("%w: projection needs at least 2 stations, got %d", core.ErrInsufficientData, n)
	}

	tracked := metals.Tracked()
	x := mat.NewDense(n, len(tracked), nil)
	for j, m := range tracked {
		col := table.Column(m)
		mean, _ := stats.Mean(col)
		std, _ := stats.StandardDeviationSample(col)
		if std == 0 {
			std = 1
		}
		for i, v := range col {
			x.Set(i, j, (v-mean)/std)
		}
	}

	var pc stat.PC
	if ok := pc.PrincipalComponents(x, nil); !ok {
		return nil, fmt.Errorf("principal component factorization failed")
	}

	var vectors mat.Dense
	pc.VectorsTo(&vectors)

	// Scores are the standardized rows projected onto the first two component
	// directions.
	var scores mat.Dense
	scores.Mul(x, vectors.Slice(0, len(tracked), 0, 2))

	projections := make([]risk.Projection, n)
	for i, station := range table.Stations {
		projections[i] = risk.Projection{
			StationNo: station.No,
			PC1:       scores.At(i, 0),
			PC2:       scores.At(i, 1),
		}
	}
	return projections, nil
}
