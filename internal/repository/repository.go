package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/domain"
	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/graphstore"
	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/roadnet"
)

const upsertJunctionCypher = `
MERGE (j:Junction {id: $id})
SET j.name = $name,
    j.lat = $lat,
    j.lon = $lon
`

const upsertRoadCypher = `
MATCH (a:Junction {id: $fromId})
MATCH (b:Junction {id: $toId})
MERGE (a)-[r:ROAD {name: $name}]->(b)
SET r.lengthMeters = $lengthMeters,
    r.oneWay = $oneWay
`

const fetchJunctionsCypher = `
MATCH (j:Junction)
RETURN j.id AS id, j.name AS name, j.lat AS lat, j.lon AS lon
ORDER BY id
`

const fetchRoadsCypher = `
MATCH (a:Junction)-[r:ROAD]->(b:Junction)
RETURN a.id AS fromId, b.id AS toId, r.lengthMeters AS lengthMeters,
       r.name AS name, r.oneWay AS oneWay
ORDER BY fromId, toId
`

const networkStatsCypher = `
MATCH (j:Junction)
OPTIONAL MATCH (:Junction)-[r:ROAD]->(:Junction)
RETURN count(DISTINCT j) AS junctions, count(DISTINCT r) AS roads
`

// Repository persists and loads road networks through a graph client.
type Repository struct {
	client graphstore.Client
}

// New instantiates a Repository backed by the supplied graph client.
func New(client graphstore.Client) *Repository {
	return &Repository{client: client}
}

// UpsertJunction ensures a junction node exists with current metadata.
func (r *Repository) UpsertJunction(ctx context.Context, j domain.Junction) error {
	if j.ID == 0 {
		return errors.New("junction id is required")
	}

	params := map[string]any{
		"id":   j.ID,
		"name": j.Name,
		"lat":  j.Lat,
		"lon":  j.Lon,
	}
	if _, err := r.client.ExecuteWrite(ctx, upsertJunctionCypher, params); err != nil {
		return fmt.Errorf("upsert junction %d: %w", j.ID, err)
	}
	return nil
}

// UpsertRoad ensures a road relationship exists between two junctions.
// Undirected roads are stored once with oneWay unset; FetchNetwork
// materializes both directions.
func (r *Repository) UpsertRoad(ctx context.Context, road domain.Road) error {
	if road.From == 0 || road.To == 0 {
		return errors.New("road requires both junction ids")
	}
	if road.LengthMeters < 0 {
		return fmt.Errorf("road %d->%d: %w", road.From, road.To, roadnet.ErrNegativeLength)
	}

	params := map[string]any{
		"fromId":       road.From,
		"toId":         road.To,
		"lengthMeters": road.LengthMeters,
		"name":         road.Name,
		"oneWay":       road.OneWay,
	}
	if _, err := r.client.ExecuteWrite(ctx, upsertRoadCypher, params); err != nil {
		return fmt.Errorf("upsert road %d->%d: %w", road.From, road.To, err)
	}
	return nil
}

// FetchNetwork loads every junction and road from the store and builds
// the in-memory network the search engine traverses.
func (r *Repository) FetchNetwork(ctx context.Context) (*roadnet.Network, error) {
	junctions, err := r.client.ExecuteRead(ctx, fetchJunctionsCypher, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch junctions: %w", err)
	}

	builder := roadnet.NewBuilder()
	for _, rec := range junctions.Records {
		id, ok := asInt64(rec["id"])
		if !ok {
			continue
		}
		builder.AddNode(id, asString(rec["name"]), asFloat(rec["lon"]), asFloat(rec["lat"]))
	}

	roads, err := r.client.ExecuteRead(ctx, fetchRoadsCypher, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch roads: %w", err)
	}
	for _, rec := range roads.Records {
		from, okFrom := asInt64(rec["fromId"])
		to, okTo := asInt64(rec["toId"])
		if !okFrom || !okTo {
			continue
		}
		oneWay, _ := rec["oneWay"].(bool)
		if err := builder.AddRoad(from, to, asFloat(rec["lengthMeters"]), oneWay); err != nil {
			return nil, fmt.Errorf("build network: %w", err)
		}
	}

	return builder.Build(), nil
}

// NetworkStats reports how many junctions and roads the store holds.
func (r *Repository) NetworkStats(ctx context.Context) (domain.NetworkStats, error) {
	res, err := r.client.ExecuteRead(ctx, networkStatsCypher, nil)
	if err != nil {
		return domain.NetworkStats{}, fmt.Errorf("fetch network stats: %w", err)
	}
	if len(res.Records) == 0 {
		return domain.NetworkStats{}, nil
	}

	rec := res.Records[0]
	junctions, _ := asInt64(rec["junctions"])
	roads, _ := asInt64(rec["roads"])
	return domain.NetworkStats{Junctions: junctions, Roads: roads}, nil
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	default:
		return 0
	}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
