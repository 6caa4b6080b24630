package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/generator"
)

func main() {
	cfg := generator.DefaultConfig()
	var (
		rows           = flag.Int("rows", cfg.Rows, "number of junction rows in the lattice")
		cols           = flag.Int("cols", cfg.Cols, "number of junction columns in the lattice")
		spacing        = flag.Float64("spacing", cfg.SpacingMeters, "distance in meters between adjacent junctions")
		diagonalChance = flag.Float64("diagonal-chance", cfg.DiagonalChance, "probability of adding a diagonal shortcut per cell")
		originLat      = flag.Float64("origin-lat", cfg.OriginLat, "latitude of the lattice origin")
		originLon      = flag.Float64("origin-lon", cfg.OriginLon, "longitude of the lattice origin")
		seed           = flag.Int64("seed", cfg.Seed, "random seed for deterministic generation")
		outputDir      = flag.String("output-dir", "data", "directory to write network.json")
		writeStdout    = flag.Bool("stdout", false, "write the snapshot to stdout instead of a file")
	)
	flag.Parse()

	genCfg := generator.Config{
		Rows:           *rows,
		Cols:           *cols,
		SpacingMeters:  *spacing,
		DiagonalChance: clampProbability(*diagonalChance),
		OriginLat:      *originLat,
		OriginLon:      *originLon,
		Seed:           *seed,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	gen := generator.New(genCfg)
	snap, err := gen.Generate(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
		os.Exit(1)
	}

	if *writeStdout {
		if err := json.NewEncoder(os.Stdout).Encode(snap); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write snapshot to stdout: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := generator.WriteSnapshot(snap, *outputDir); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write snapshot: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stdout, "Generated %d junctions and %d roads into %s\n", len(snap.Junctions), len(snap.Roads), *outputDir)
}

func clampProbability(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
