package render

import (
	"encoding/json"
	"testing"

	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/domain"
	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/roadnet"
)

func renderNetwork(t *testing.T) *roadnet.Network {
	t.Helper()
	b := roadnet.NewBuilder()
	b.AddNode(1, "A", 38.760, 9.010)
	b.AddNode(2, "B", 38.761, 9.011)
	b.AddNode(3, "C", 38.762, 9.010)
	if err := b.AddRoad(1, 2, 100, false); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := b.AddRoad(2, 3, 100, false); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	return b.Build()
}

func TestPlanGeoJSON(t *testing.T) {
	net := renderNetwork(t)
	plan := domain.RoutePlan{
		Routes: []domain.Route{
			{Nodes: []int64{1, 2, 3}, DistanceMeters: 200, Steps: 2},
			{Nodes: []int64{1, 3}, DistanceMeters: 350, Steps: 1},
		},
	}

	fc := PlanGeoJSON(net, plan)
	if len(fc.Features) != 2 {
		t.Fatalf("expected 2 features, got %d", len(fc.Features))
	}

	first := fc.Features[0]
	if first.Properties["rank"] != 0 {
		t.Errorf("expected rank 0, got %v", first.Properties["rank"])
	}
	if first.Properties["primary"] != true {
		t.Errorf("expected the first route to be primary")
	}
	if first.Properties["distanceMeters"] != 200.0 {
		t.Errorf("expected 200m, got %v", first.Properties["distanceMeters"])
	}
	if fc.Features[1].Properties["primary"] != false {
		t.Errorf("expected alternatives not to be primary")
	}

	data, err := json.Marshal(fc)
	if err != nil {
		t.Fatalf("expected the collection to serialize, got %v", err)
	}

	var decoded struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Type        string      `json:"type"`
				Coordinates [][]float64 `json:"coordinates"`
			} `json:"geometry"`
		} `json:"features"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to decode emitted geojson: %v", err)
	}
	if decoded.Type != "FeatureCollection" {
		t.Errorf("expected FeatureCollection, got %q", decoded.Type)
	}
	if got := decoded.Features[0].Geometry.Type; got != "LineString" {
		t.Errorf("expected LineString, got %q", got)
	}
	if got := len(decoded.Features[0].Geometry.Coordinates); got != 3 {
		t.Errorf("expected 3 coordinates along the first route, got %d", got)
	}
}

func TestPlanGeoJSON_SingleNodeRoute(t *testing.T) {
	net := renderNetwork(t)
	plan := domain.RoutePlan{Routes: []domain.Route{{Nodes: []int64{2}}}}

	fc := PlanGeoJSON(net, plan)
	if len(fc.Features) != 1 {
		t.Fatalf("expected 1 feature, got %d", len(fc.Features))
	}
	if got := fc.Features[0].Geometry.GeoJSONType(); got != "Point" {
		t.Errorf("expected a Point for a same-location route, got %q", got)
	}
}

func TestPlanGeoJSON_SkipsUnknownNodes(t *testing.T) {
	net := renderNetwork(t)
	plan := domain.RoutePlan{Routes: []domain.Route{{Nodes: []int64{1, 99, 3}}}}

	fc := PlanGeoJSON(net, plan)
	if len(fc.Features) != 1 {
		t.Fatalf("expected 1 feature, got %d", len(fc.Features))
	}
}

func TestPlanGeoJSON_EmptyPlan(t *testing.T) {
	fc := PlanGeoJSON(renderNetwork(t), domain.RoutePlan{})
	if len(fc.Features) != 0 {
		t.Fatalf("expected no features, got %d", len(fc.Features))
	}
}
