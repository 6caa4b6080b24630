package generator

// Config drives the synthetic road-network generator.
type Config struct {
	// Rows and Cols size the junction lattice.
	Rows int
	Cols int
	// SpacingMeters is the edge length between adjacent junctions.
	// Uniform spacing guarantees tied shortest paths exist between
	// off-axis junction pairs, which is what route queries exercise.
	SpacingMeters float64
	// DiagonalChance adds occasional shortcut edges so the network is
	// not a pure grid.
	DiagonalChance float64
	// OriginLat and OriginLon anchor the lattice geographically.
	OriginLat float64
	OriginLon float64
	Seed      int64
}

// DefaultConfig returns a lattice centered on Meskel Square that is
// small enough for tests yet has plenty of tied shortest paths.
func DefaultConfig() Config {
	return Config{
		Rows:           12,
		Cols:           12,
		SpacingMeters:  250,
		DiagonalChance: 0.15,
		OriginLat:      9.0105,
		OriginLon:      38.7866,
		Seed:           42,
	}
}
