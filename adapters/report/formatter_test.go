package report

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"watermetal/app"
	"watermetal/domain/metals"
	"watermetal/domain/risk"
	"watermetal/internal/analysis"
	"watermetal/internal/testkit"
)

func TestBuildBodyMatchesCalculator(t *testing.T) {
	ds, err := testkit.Generate(testkit.Config{Stations: 10, Seed: 31, Hotspots: 2, Boost: 6})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	bundle, err := app.NewPipeline(nil).Run(context.Background(), ds.Table)
	if err != nil {
		t.Fatalf("Pipeline failed: %v", err)
	}

	body := BuildBody(bundle)

	if body.Title != "WaterMetal Analyzer – Heavy Metal Risk Report" {
		t.Errorf("Title = %q", body.Title)
	}
	if len(body.Sections) != 2 {
		t.Fatalf("Expected 2 sections, got %d", len(body.Sections))
	}
	if body.Sections[0].Heading != "Top 5 High-Risk Stations:" {
		t.Errorf("Hotspot heading = %q", body.Sections[0].Heading)
	}
	if body.Sections[1].Heading != "Metal Risk Contribution:" {
		t.Errorf("Contribution heading = %q", body.Sections[1].Heading)
	}

	// The printed lines must match an independent recomputation exactly.
	ref := metals.DefaultReference()
	risks := analysis.ComputeStationRisks(ds.Table, ref)
	hotspots := analysis.TopHotspots(risks)
	if len(body.Sections[0].Lines) != len(hotspots) {
		t.Fatalf("Hotspot section has %d lines, want %d", len(body.Sections[0].Lines), len(hotspots))
	}
	for i, h := range hotspots {
		want := fmt.Sprintf("Station %d : PERI = %.2f", h.StationNo, h.PERI)
		if body.Sections[0].Lines[i] != want {
			t.Errorf("Hotspot line %d = %q, want %q", i, body.Sections[0].Lines[i], want)
		}
	}

	contributions := analysis.ComputeContributions(ds.Table, ref)
	if len(body.Sections[1].Lines) != len(contributions) {
		t.Fatalf("Contribution section has %d lines, want %d", len(body.Sections[1].Lines), len(contributions))
	}
	for i, c := range contributions {
		want := fmt.Sprintf("%s : %.2f%%", c.Metal, c.Percent)
		if body.Sections[1].Lines[i] != want {
			t.Errorf("Contribution line %d = %q, want %q", i, body.Sections[1].Lines[i], want)
		}
	}
}

func TestWriteDocxProducesDocument(t *testing.T) {
	bundle := smallBundle(t)

	var buf bytes.Buffer
	if err := WriteDocx(&buf, bundle); err != nil {
		t.Fatalf("WriteDocx failed: %v", err)
	}

	// A .docx file is a zip archive.
	if buf.Len() == 0 || !bytes.HasPrefix(buf.Bytes(), []byte("PK")) {
		t.Errorf("Output does not look like a docx archive (%d bytes)", buf.Len())
	}
}

func TestWritePDFProducesDocument(t *testing.T) {
	bundle := smallBundle(t)

	var buf bytes.Buffer
	if err := WritePDF(&buf, bundle); err != nil {
		t.Fatalf("WritePDF failed: %v", err)
	}

	if !strings.HasPrefix(buf.String(), "%PDF") {
		t.Errorf("Output does not look like a PDF (%d bytes)", buf.Len())
	}
}

func smallBundle(t *testing.T) *risk.Bundle {
	t.Helper()
	ds, err := testkit.Generate(testkit.Config{Stations: 6, Seed: 2, Hotspots: 1, Boost: 4})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	bundle, err := app.NewPipeline(nil).Run(context.Background(), ds.Table)
	if err != nil {
		t.Fatalf("Pipeline failed: %v", err)
	}
	return bundle
}
