// Package testkit generates deterministic synthetic station datasets for
// tests, demos and the sampledata CLI.
package testkit

import (
	"encoding/csv"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"

	"watermetal/domain/metals"
	"watermetal/domain/risk"
)

// Dataset is an in-memory synthetic measurement set, carried both as
// formatted rows (for the file writers) and as the parsed numeric table (for
// direct use in tests).
type Dataset struct {
	Headers []string
	Rows    [][]string // already formatted/rounded strings
	Table   risk.Table
}

type Config struct {
	Stations int
	Seed     int64

	// Hotspots is the number of trailing stations whose heavy-weighted metals
	// (Pb, Cr, Cu) are boosted well above background.
	Hotspots int
	Boost    float64
}

func DefaultConfig() Config {
	return Config{
		Stations: 24,
		Seed:     42,
		Hotspots: 3,
		Boost:    6,
	}
}

// Generate builds a synthetic dataset: concentrations scatter uniformly
// around the background levels, and the configured hotspot stations carry
// boosted Pb/Cr/Cu so risk ranking has something to find. Same config, same
// dataset.
func Generate(cfg Config) (*Dataset, error) {
	if cfg.Stations <= 0 {
		return nil, fmt.Errorf("stations must be > 0")
	}
	if cfg.Hotspots < 0 || cfg.Hotspots > cfg.Stations {
		return nil, fmt.Errorf("hotspots must be in [0, stations]")
	}
	if cfg.Boost <= 0 {
		cfg.Boost = DefaultConfig().Boost
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	ref := metals.DefaultReference()
	tracked := metals.Tracked()

	boosted := map[metals.Metal]bool{metals.Pb: true, metals.Cr: true, metals.Cu: true}

	stations := make([]risk.Station, cfg.Stations)
	for i := 0; i < cfg.Stations; i++ {
		conc := make(map[metals.Metal]float64, len(tracked))
		hotspot := i >= cfg.Stations-cfg.Hotspots

		for _, m := range tracked {
			// 0.4x to 1.6x of background
			v := ref.Background(m) * (0.4 + rng.Float64()*1.2)
			if hotspot && boosted[m] {
				v *= cfg.Boost
			}
			conc[m] = v
		}
		stations[i] = risk.Station{No: i + 1, Concentrations: conc}
	}

	headers := []string{"S.No"}
	for _, m := range tracked {
		headers = append(headers, m.String())
	}

	rows := make([][]string, cfg.Stations)
	for i, station := range stations {
		r := make([]string, 0, len(headers))
		r = append(r, strconv.Itoa(station.No))
		for _, m := range tracked {
			r = append(r, fToStr(station.Concentrations[m], 2))
		}
		rows[i] = r
	}

	return &Dataset{
		Headers: headers,
		Rows:    rows,
		Table:   risk.Table{Stations: stations},
	}, nil
}

func WriteCSV(path string, ds *Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(ds.Headers); err != nil {
		return err
	}
	for _, row := range ds.Rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func WriteXLSX(path string, ds *Dataset) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	// Header row
	for i, h := range ds.Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	// Data rows
	for r := 0; r < len(ds.Rows); r++ {
		rowIdx := r + 2
		for c, v := range ds.Rows[r] {
			cell, _ := excelize.CoordinatesToCellName(c+1, rowIdx)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}

func fToStr(x float64, decimals int) string {
	p := math.Pow10(decimals)
	x = math.Round(x*p) / p
	return strconv.FormatFloat(x, 'f', decimals, 64)
}
