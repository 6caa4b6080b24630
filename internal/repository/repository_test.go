package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/domain"
	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/graphstore"
	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/roadnet"
)

func TestRepository_UpsertJunction(t *testing.T) {
	mem := graphstore.NewMemoryClient()
	repo := New(mem)

	junction := domain.Junction{ID: 42, Name: "Meskel Square", Lat: 9.0105, Lon: 38.7866}
	if err := repo.UpsertJunction(context.Background(), junction); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	calls := mem.WriteCalls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 write query, got %d", len(calls))
	}
	if !strings.Contains(calls[0].Query, "MERGE (j:Junction {id: $id})") {
		t.Errorf("unexpected cypher: %s", calls[0].Query)
	}
	if calls[0].Params["id"] != int64(42) {
		t.Errorf("expected id param 42, got %v", calls[0].Params["id"])
	}
	if calls[0].Params["name"] != "Meskel Square" {
		t.Errorf("expected name param, got %v", calls[0].Params["name"])
	}
}

func TestRepository_UpsertJunction_RequiresID(t *testing.T) {
	repo := New(graphstore.NewMemoryClient())

	if err := repo.UpsertJunction(context.Background(), domain.Junction{Name: "Nowhere"}); err == nil {
		t.Fatalf("expected an error for a zero junction id")
	}
}

func TestRepository_UpsertRoad(t *testing.T) {
	mem := graphstore.NewMemoryClient()
	repo := New(mem)

	road := domain.Road{From: 1, To: 2, LengthMeters: 420, Name: "Ras Mekonen Ave"}
	if err := repo.UpsertRoad(context.Background(), road); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	calls := mem.WriteCalls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 write query, got %d", len(calls))
	}
	if !strings.Contains(calls[0].Query, "MERGE (a)-[r:ROAD {name: $name}]->(b)") {
		t.Errorf("unexpected cypher: %s", calls[0].Query)
	}
	if calls[0].Params["lengthMeters"] != 420.0 {
		t.Errorf("expected length param 420, got %v", calls[0].Params["lengthMeters"])
	}
}

func TestRepository_UpsertRoad_Validation(t *testing.T) {
	repo := New(graphstore.NewMemoryClient())

	if err := repo.UpsertRoad(context.Background(), domain.Road{From: 1}); err == nil {
		t.Fatalf("expected an error for a missing junction id")
	}
	err := repo.UpsertRoad(context.Background(), domain.Road{From: 1, To: 2, LengthMeters: -1})
	if !errors.Is(err, roadnet.ErrNegativeLength) {
		t.Fatalf("expected ErrNegativeLength, got %v", err)
	}
}

func TestRepository_FetchNetwork(t *testing.T) {
	mem := graphstore.NewMemoryClient()
	mem.PushReadResult(graphstore.Result{Records: []graphstore.Record{
		{"id": int64(1), "name": "Meskel Square", "lat": 9.0105, "lon": 38.7866},
		{"id": int64(2), "name": "Stadium", "lat": 9.0089, "lon": 38.7896},
	}})
	mem.PushReadResult(graphstore.Result{Records: []graphstore.Record{
		{"fromId": int64(1), "toId": int64(2), "lengthMeters": 420.0, "name": "Ras Mekonen Ave", "oneWay": false},
	}})

	repo := New(mem)
	net, err := repo.FetchNetwork(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if net.NodeCount() != 2 {
		t.Errorf("expected 2 junctions, got %d", net.NodeCount())
	}
	if length, ok := net.EdgeLength(1, 2); !ok || length != 420 {
		t.Errorf("expected 420m from 1 to 2, got %f (%v)", length, ok)
	}
	if _, ok := net.EdgeLength(2, 1); !ok {
		t.Errorf("expected the undirected road to materialize both directions")
	}

	reads := mem.ReadCalls()
	if len(reads) != 2 {
		t.Fatalf("expected 2 read queries, got %d", len(reads))
	}
	if !strings.Contains(reads[0].Query, "MATCH (j:Junction)") {
		t.Errorf("unexpected junction query: %s", reads[0].Query)
	}
	if !strings.Contains(reads[1].Query, "[r:ROAD]") {
		t.Errorf("unexpected road query: %s", reads[1].Query)
	}
}

func TestRepository_FetchNetwork_OneWay(t *testing.T) {
	mem := graphstore.NewMemoryClient()
	mem.PushReadResult(graphstore.Result{Records: []graphstore.Record{
		{"id": int64(1), "name": "A", "lat": 9.0, "lon": 38.7},
		{"id": int64(2), "name": "B", "lat": 9.001, "lon": 38.701},
	}})
	mem.PushReadResult(graphstore.Result{Records: []graphstore.Record{
		{"fromId": int64(1), "toId": int64(2), "lengthMeters": 100.0, "oneWay": true},
	}})

	net, err := New(mem).FetchNetwork(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, ok := net.EdgeLength(2, 1); ok {
		t.Errorf("expected no reverse edge for a one-way road")
	}
}

func TestRepository_FetchNetwork_ClientError(t *testing.T) {
	wantErr := errors.New("connection reset")
	mem := graphstore.NewMemoryClient().WithError(wantErr)

	if _, err := New(mem).FetchNetwork(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("expected the client error to propagate, got %v", err)
	}
}

func TestRepository_NetworkStats(t *testing.T) {
	mem := graphstore.NewMemoryClient()
	mem.PushReadResult(graphstore.Result{Records: []graphstore.Record{
		{"junctions": int64(144), "roads": int64(300)},
	}})

	stats, err := New(mem).NetworkStats(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stats.Junctions != 144 || stats.Roads != 300 {
		t.Errorf("expected 144 junctions and 300 roads, got %+v", stats)
	}
}

func TestRepository_NetworkStats_Empty(t *testing.T) {
	stats, err := New(graphstore.NewMemoryClient()).NetworkStats(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stats.Junctions != 0 || stats.Roads != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}
