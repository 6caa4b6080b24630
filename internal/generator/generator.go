package generator

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/domain"
	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/roadnet"
)

// metersPerDegreeLat converts lattice spacing to coordinate deltas.
const metersPerDegreeLat = 111320.0

// Generator produces synthetic road networks shaped like a city grid.
type Generator struct {
	cfg  Config
	rand *rand.Rand
}

// New returns a configured Generator instance.
func New(cfg Config) *Generator {
	if cfg.Rows <= 0 {
		cfg.Rows = DefaultConfig().Rows
	}
	if cfg.Cols <= 0 {
		cfg.Cols = DefaultConfig().Cols
	}
	if cfg.SpacingMeters <= 0 {
		cfg.SpacingMeters = DefaultConfig().SpacingMeters
	}
	if cfg.DiagonalChance < 0 {
		cfg.DiagonalChance = 0
	}
	if cfg.OriginLat == 0 && cfg.OriginLon == 0 {
		cfg.OriginLat = DefaultConfig().OriginLat
		cfg.OriginLon = DefaultConfig().OriginLon
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return &Generator{
		cfg:  cfg,
		rand: rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Generate synthesises a road-network snapshot. It respects context
// cancellation between rows. Junction ids start at 1 and run
// row-major across the lattice.
func (g *Generator) Generate(ctx context.Context) (roadnet.Snapshot, error) {
	var snap roadnet.Snapshot

	latStep := g.cfg.SpacingMeters / metersPerDegreeLat
	lonStep := g.cfg.SpacingMeters / (metersPerDegreeLat * math.Cos(g.cfg.OriginLat*math.Pi/180))
	diagonal := g.cfg.SpacingMeters * math.Sqrt2

	for row := 0; row < g.cfg.Rows; row++ {
		if err := ctx.Err(); err != nil {
			return roadnet.Snapshot{}, err
		}
		for col := 0; col < g.cfg.Cols; col++ {
			id := g.junctionID(row, col)
			snap.Junctions = append(snap.Junctions, domain.Junction{
				ID:   id,
				Name: fmt.Sprintf("Junction %d", id),
				Lat:  g.cfg.OriginLat + float64(row)*latStep,
				Lon:  g.cfg.OriginLon + float64(col)*lonStep,
			})

			if col+1 < g.cfg.Cols {
				snap.Roads = append(snap.Roads, domain.Road{
					From:         id,
					To:           g.junctionID(row, col+1),
					LengthMeters: g.cfg.SpacingMeters,
				})
			}
			if row+1 < g.cfg.Rows {
				snap.Roads = append(snap.Roads, domain.Road{
					From:         id,
					To:           g.junctionID(row+1, col),
					LengthMeters: g.cfg.SpacingMeters,
				})
			}
			if row+1 < g.cfg.Rows && col+1 < g.cfg.Cols && g.rand.Float64() < g.cfg.DiagonalChance {
				snap.Roads = append(snap.Roads, domain.Road{
					From:         id,
					To:           g.junctionID(row+1, col+1),
					LengthMeters: diagonal,
				})
			}
		}
	}

	return snap, nil
}

func (g *Generator) junctionID(row, col int) int64 {
	return int64(row*g.cfg.Cols + col + 1)
}
