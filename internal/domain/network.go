package domain

// Junction is a node of the road network: an intersection or a named
// point of interest with geographic coordinates.
type Junction struct {
	ID   int64   `json:"id"`
	Name string  `json:"name,omitempty"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// Road is a weighted segment connecting two junctions. A road with
// OneWay set contributes a single directed edge; otherwise both
// directions are traversable.
type Road struct {
	From         int64   `json:"from"`
	To           int64   `json:"to"`
	LengthMeters float64 `json:"lengthMeters"`
	Name         string  `json:"name,omitempty"`
	OneWay       bool    `json:"oneWay,omitempty"`
}

// NetworkStats summarises the size of a stored road network.
type NetworkStats struct {
	Junctions int64
	Roads     int64
}
