package domain

// Place is a named location that the resolver can map onto the road
// network via its coordinates.
type Place struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}
