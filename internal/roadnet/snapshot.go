package roadnet

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/domain"
)

// Snapshot is the on-disk representation of a road network, used by
// the generator, the ingest command and snapshot-backed servers.
type Snapshot struct {
	Junctions []domain.Junction `json:"junctions"`
	Roads     []domain.Road     `json:"roads"`
}

// Build assembles a Network from the snapshot contents.
func (s Snapshot) Build() (*Network, error) {
	b := NewBuilder()
	for _, j := range s.Junctions {
		b.AddNode(j.ID, j.Name, j.Lon, j.Lat)
	}
	for _, r := range s.Roads {
		if err := b.AddRoad(r.From, r.To, r.LengthMeters, r.OneWay); err != nil {
			return nil, fmt.Errorf("road %d->%d: %w", r.From, r.To, err)
		}
	}
	return b.Build(), nil
}

// LoadSnapshot decodes a snapshot from the reader and builds the
// network it describes.
func LoadSnapshot(r io.Reader) (*Network, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode network snapshot: %w", err)
	}
	return snap.Build()
}

// ReadSnapshot decodes a snapshot file without building the network,
// for callers that forward the raw records elsewhere.
func ReadSnapshot(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read network snapshot %s: %w", path, err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode network snapshot %s: %w", path, err)
	}
	return snap, nil
}

// ReadSnapshotFile loads a network from a snapshot file on disk.
func ReadSnapshotFile(path string) (*Network, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open network snapshot %s: %w", path, err)
	}
	defer file.Close()
	return LoadSnapshot(file)
}
