// Package report renders the downloadable report artifacts. Every format
// prints the same body, built once here, so the documents can never drift
// from the computed results.
package report

import (
	"fmt"

	"watermetal/domain/risk"
)

// Strings shared by every artifact format.
const (
	Title               = "WaterMetal Analyzer – Heavy Metal Risk Report"
	HotspotHeading      = "Top 5 High-Risk Stations:"
	ContributionHeading = "Metal Risk Contribution:"
)

// Section is one heading plus its printed lines.
type Section struct {
	Heading string
	Lines   []string
}

// Body is the format-independent report content.
type Body struct {
	Title    string
	Sections []Section
}

// BuildBody renders the bundle into the shared report body.
func BuildBody(bundle *risk.Bundle) Body {
	hotspotLines := make([]string, 0, len(bundle.Hotspots))
	for _, h := range bundle.Hotspots {
		hotspotLines = append(hotspotLines, FormatHotspotLine(h))
	}

	contributionLines := make([]string, 0, len(bundle.Contributions))
	for _, c := range bundle.Contributions {
		contributionLines = append(contributionLines, FormatContributionLine(c))
	}

	return Body{
		Title: Title,
		Sections: []Section{
			{Heading: HotspotHeading, Lines: hotspotLines},
			{Heading: ContributionHeading, Lines: contributionLines},
		},
	}
}

// FormatHotspotLine prints one ranked station.
func FormatHotspotLine(h risk.StationRisk) string {
	return fmt.Sprintf("Station %d : PERI = %.2f", h.StationNo, h.PERI)
}

// FormatContributionLine prints one metal share.
func FormatContributionLine(c risk.MetalContribution) string {
	return fmt.Sprintf("%s : %.2f%%", c.Metal, c.Percent)
}
