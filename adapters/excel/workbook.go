package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"watermetal/domain/metals"
	"watermetal/domain/risk"
)

// Sheet names of the downloadable workbook.
const (
	SheetFullData  = "Full Data"
	SheetMetalRisk = "Metal Risk"
	SheetHotspots  = "Hotspots"
)

// BuildWorkbook assembles the three-sheet result workbook: every station with
// its computed scores, the per-metal risk shares, and the hotspot rows.
// Hotspot rows carry no projection columns, matching the point in the
// pipeline where they are selected.
func BuildWorkbook(table risk.Table, bundle *risk.Bundle) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetFullData); err != nil {
		return nil, fmt.Errorf("rename default sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetMetalRisk); err != nil {
		return nil, fmt.Errorf("create sheet %s: %w", SheetMetalRisk, err)
	}
	if _, err := f.NewSheet(SheetHotspots); err != nil {
		return nil, fmt.Errorf("create sheet %s: %w", SheetHotspots, err)
	}

	if err := writeFullData(f, table, bundle); err != nil {
		return nil, err
	}
	if err := writeMetalRisk(f, bundle.Contributions); err != nil {
		return nil, err
	}
	if err := writeHotspots(f, table, bundle); err != nil {
		return nil, err
	}

	if idx, err := f.GetSheetIndex(SheetFullData); err == nil {
		f.SetActiveSheet(idx)
	}
	return f, nil
}

func writeFullData(f *excelize.File, table risk.Table, bundle *risk.Bundle) error {
	periByStation := periIndex(bundle.Risks)
	projByStation := make(map[int]risk.Projection, len(bundle.Projections))
	for _, p := range bundle.Projections {
		projByStation[p.StationNo] = p
	}
	withProjections := len(bundle.Projections) > 0

	headers := stationHeaders()
	headers = append(headers, "PERI")
	if withProjections {
		headers = append(headers, "PC1", "PC2")
	}
	if err := writeRow(f, SheetFullData, 1, toCells(headers)); err != nil {
		return err
	}

	for i, station := range table.Stations {
		row := stationCells(station)
		row = append(row, periByStation[station.No])
		if withProjections {
			p := projByStation[station.No]
			row = append(row, p.PC1, p.PC2)
		}
		if err := writeRow(f, SheetFullData, i+2, row); err != nil {
			return err
		}
	}

	return f.SetColWidth(SheetFullData, "A", "L", 12)
}

func writeMetalRisk(f *excelize.File, contributions []risk.MetalContribution) error {
	if err := writeRow(f, SheetMetalRisk, 1, []interface{}{"Metal", "Total Risk", "Percent"}); err != nil {
		return err
	}
	for i, c := range contributions {
		row := []interface{}{c.Metal.String(), c.TotalRisk, c.Percent}
		if err := writeRow(f, SheetMetalRisk, i+2, row); err != nil {
			return err
		}
	}
	return f.SetColWidth(SheetMetalRisk, "A", "C", 12)
}

func writeHotspots(f *excelize.File, table risk.Table, bundle *risk.Bundle) error {
	stationByNo := make(map[int]risk.Station, table.Len())
	for _, s := range table.Stations {
		stationByNo[s.No] = s
	}

	headers := stationHeaders()
	headers = append(headers, "PERI")
	if err := writeRow(f, SheetHotspots, 1, toCells(headers)); err != nil {
		return err
	}

	for i, h := range bundle.Hotspots {
		row := stationCells(stationByNo[h.StationNo])
		row = append(row, h.PERI)
		if err := writeRow(f, SheetHotspots, i+2, row); err != nil {
			return err
		}
	}
	return f.SetColWidth(SheetHotspots, "A", "J", 12)
}

func stationHeaders() []string {
	headers := []string{StationColumn}
	for _, m := range metals.Tracked() {
		headers = append(headers, m.String())
	}
	return headers
}

func stationCells(station risk.Station) []interface{} {
	row := []interface{}{station.No}
	for _, m := range metals.Tracked() {
		row = append(row, station.Concentrations[m])
	}
	return row
}

func periIndex(risks []risk.StationRisk) map[int]float64 {
	byStation := make(map[int]float64, len(risks))
	for _, r := range risks {
		byStation[r.StationNo] = r.PERI
	}
	return byStation
}

func toCells(headers []string) []interface{} {
	cells := make([]interface{}, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	return cells
}

func writeRow(f *excelize.File, sheet string, rowIdx int, values []interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, rowIdx)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
