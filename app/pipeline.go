// Package app coordinates the assessment pipeline that turns an ingested
// station table into everything the dashboard shows.
package app

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"watermetal/domain/core"
	"watermetal/domain/metals"
	"watermetal/domain/risk"
	"watermetal/internal"
	"watermetal/internal/analysis"
)

// Pipeline computes the full assessment bundle for one uploaded table.
type Pipeline struct {
	ref    metals.Reference
	logger *internal.Logger
}

// NewPipeline creates a pipeline against the default reference tables.
func NewPipeline(logger *internal.Logger) *Pipeline {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Pipeline{
		ref:    metals.DefaultReference(),
		logger: logger,
	}
}

// Run computes station risks, metal contributions, hotspots, projections and
// concentration summaries for the table. The risk and projection stages are
// independent and run concurrently.
//
// A table too small to project is not an error: the bundle simply carries no
// projections and the dashboard omits the scatter plot.
func (p *Pipeline) Run(ctx context.Context, table risk.Table) (*risk.Bundle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if table.Len() == 0 {
		return nil, core.ErrEmptyDataset
	}

	start := time.Now()

	var (
		risks         []risk.StationRisk
		contributions []risk.MetalContribution
		projections   []risk.Projection
	)

	var g errgroup.Group
	g.Go(func() error {
		risks = analysis.ComputeStationRisks(table, p.ref)
		contributions = analysis.ComputeContributions(table, p.ref)
		return nil
	})
	g.Go(func() error {
		proj, err := analysis.Project(table)
		if err != nil {
			if errors.Is(err, core.ErrInsufficientData) {
				p.logger.Warn("Skipping projection: %v", err)
				return nil
			}
			return err
		}
		projections = proj
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	bundle := &risk.Bundle{
		Risks:         risks,
		Hotspots:      analysis.TopHotspots(risks),
		Contributions: contributions,
		Projections:   projections,
		Summaries:     analysis.Summaries(table),
	}

	p.logger.Info("Assessed %d stations in %dms", table.Len(), time.Since(start).Milliseconds())
	return bundle, nil
}
