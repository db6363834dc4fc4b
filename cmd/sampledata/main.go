package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"watermetal/internal/testkit"
)

func main() {
	out := flag.String("out", "stations.csv", "output file path")
	stations := flag.Int("stations", 24, "number of monitoring stations")
	hotspots := flag.Int("hotspots", 3, "number of contaminated stations")
	boost := flag.Float64("boost", 6, "contamination multiplier for hotspot stations")
	format := flag.String("format", "", "output format: xlsx or csv (default inferred from -out)")
	seed := flag.Int64("seed", 42, "RNG seed (deterministic)")
	flag.Parse()

	if *stations <= 0 {
		fmt.Fprintln(os.Stderr, "stations must be > 0")
		os.Exit(2)
	}
	if *hotspots < 0 || *hotspots > *stations {
		fmt.Fprintln(os.Stderr, "hotspots must be in [0, stations]")
		os.Exit(2)
	}

	fmtName := strings.ToLower(strings.TrimSpace(*format))
	if fmtName == "" {
		ext := strings.ToLower(filepath.Ext(*out))
		switch ext {
		case ".xlsx":
			fmtName = "xlsx"
		case ".csv":
			fmtName = "csv"
		default:
			fmtName = "csv"
		}
	}

	cfg := testkit.Config{
		Stations: *stations,
		Hotspots: *hotspots,
		Boost:    *boost,
		Seed:     *seed,
	}

	ds, err := testkit.Generate(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error generating dataset:", err)
		os.Exit(1)
	}

	switch fmtName {
	case "csv":
		if err := testkit.WriteCSV(*out, ds); err != nil {
			fmt.Fprintln(os.Stderr, "error writing csv:", err)
			os.Exit(1)
		}
	case "xlsx":
		if err := testkit.WriteXLSX(*out, ds); err != nil {
			fmt.Fprintln(os.Stderr, "error writing xlsx:", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "unsupported format:", fmtName)
		os.Exit(2)
	}

	fmt.Printf("Sample dataset created: %s\n", *out)
	fmt.Printf("Stations: %d | Hotspots: %d\n", len(ds.Rows), *hotspots)
}
