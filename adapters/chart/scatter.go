// Package chart renders the PCA scatter plot served by the dashboard.
package chart

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"watermetal/domain/risk"
)

// WriteScatterPNG renders PC1 against PC2 for every projected station.
func WriteScatterPNG(w io.Writer, projections []risk.Projection) error {
	if len(projections) == 0 {
		return fmt.Errorf("no projections to plot")
	}

	p := plot.New()
	p.Title.Text = "PCA Pollution Pattern"
	p.X.Label.Text = "PC1"
	p.Y.Label.Text = "PC2"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(projections))
	for i, proj := range projections {
		pts[i].X = proj.PC1
		pts[i].Y = proj.PC2
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("build scatter: %w", err)
	}
	scatter.GlyphStyle.Radius = vg.Points(3)
	scatter.GlyphStyle.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	p.Add(scatter)

	wt, err := p.WriterTo(6*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("render scatter: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}
