package generator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/roadnet"
)

// WriteSnapshot serializes the snapshot as network.json under the
// provided directory.
func WriteSnapshot(snap roadnet.Snapshot, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return writeJSON(filepath.Join(dir, "network.json"), snap)
}

func writeJSON(path string, data any) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encode json for %s: %w", path, err)
	}
	return nil
}
