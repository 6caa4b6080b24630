package render

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/domain"
	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/roadnet"
)

// PlanGeoJSON renders a route plan as a GeoJSON feature collection for
// map frontends. The first route is ranked 0 and marked primary, the
// rest are alternatives; junctions missing coordinates are skipped
// rather than rendered at the origin.
func PlanGeoJSON(net *roadnet.Network, plan domain.RoutePlan) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for rank, route := range plan.Routes {
		line := make(orb.LineString, 0, len(route.Nodes))
		for _, id := range route.Nodes {
			point, ok := net.NodePoint(id)
			if !ok {
				continue
			}
			line = append(line, point)
		}
		if len(line) == 0 {
			continue
		}

		var geometry orb.Geometry = line
		if len(line) == 1 {
			// Same-location plans collapse to a single point.
			geometry = line[0]
		}

		feature := geojson.NewFeature(geometry)
		feature.Properties["rank"] = rank
		feature.Properties["primary"] = rank == 0
		feature.Properties["distanceMeters"] = route.DistanceMeters
		feature.Properties["steps"] = route.Steps
		fc.Append(feature)
	}

	return fc
}
