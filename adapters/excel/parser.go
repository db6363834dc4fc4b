package excel

import (
	"strconv"
	"strings"

	"watermetal/domain/core"
	"watermetal/domain/metals"
	"watermetal/domain/risk"
)

// StationColumn is the identifier column every dataset must carry.
const StationColumn = "S.No"

// ParseTable validates the decoded upload and coerces it into the numeric
// station table. The station column and all eight tracked metals must be
// present, and every concentration cell must parse as a number.
func ParseTable(data *TableData) (risk.Table, error) {
	if data == nil || len(data.Rows) == 0 {
		return risk.Table{}, core.ErrEmptyDataset
	}

	headerSet := make(map[string]bool, len(data.Headers))
	for _, h := range data.Headers {
		headerSet[h] = true
	}

	if !headerSet[StationColumn] {
		return risk.Table{}, core.NewMissingColumnError(StationColumn)
	}
	for _, m := range metals.Tracked() {
		if !headerSet[m.String()] {
			return risk.Table{}, core.NewMissingColumnError(m.String())
		}
	}

	stations := make([]risk.Station, 0, len(data.Rows))
	for i, row := range data.Rows {
		rowNum := i + 2 // spreadsheet row, 1-based with header

		no, err := parseStationNo(row[StationColumn])
		if err != nil {
			return risk.Table{}, core.NewNotNumericError(StationColumn, rowNum, row[StationColumn])
		}

		conc := make(map[metals.Metal]float64, len(metals.Tracked()))
		for _, m := range metals.Tracked() {
			raw := row[m.String()]
			v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				return risk.Table{}, core.NewNotNumericError(m.String(), rowNum, raw)
			}
			conc[m] = v
		}

		stations = append(stations, risk.Station{No: no, Concentrations: conc})
	}

	return risk.Table{Stations: stations}, nil
}

// parseStationNo accepts plain integers plus the "3.0" form Excel produces
// for numeric cells.
func parseStationNo(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}
