package places

import "github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/domain"

// DefaultPlaces returns the built-in Addis Ababa landmarks available
// without any external place data.
func DefaultPlaces() []domain.Place {
	return []domain.Place{
		{Name: "Bole International Airport", Lat: 8.9806, Lon: 38.7997},
		{Name: "Meskel Square", Lat: 9.0105, Lon: 38.7866},
		{Name: "Piassa", Lat: 9.0276, Lon: 38.7469},
		{Name: "Kazanchis", Lat: 9.0227, Lon: 38.7612},
		{Name: "Arat Kilo", Lat: 9.0438, Lon: 38.7600},
		{Name: "Mexico Square", Lat: 9.0431, Lon: 38.7782},
		{Name: "Sarbet", Lat: 9.0281, Lon: 38.7812},
		{Name: "Bole Medhanealem", Lat: 8.9922, Lon: 38.7978},
		{Name: "Gotera", Lat: 9.0027, Lon: 38.8128},
		{Name: "Megenagna", Lat: 9.0497, Lon: 38.8014},
	}
}
