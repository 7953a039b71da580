package db

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"go-atollmap/types"
)

// Source yields the raw dataset document for the initial load and for
// periodic reloads.
type Source interface {
	Load() (*types.RawDataset, error)
}

// FileSource reads the dataset from a local JSON file, the same document the
// CSV ingest produces.
type FileSource struct {
	Path string
}

func (s FileSource) Load() (*types.RawDataset, error) {
	return LoadDataset(s.Path)
}

// LoadDataset reads and parses the nested dataset document. An unreadable or
// unparseable document is fatal to initialization and reported to the
// caller; it never yields partial data.
func LoadDataset(path string) (*types.RawDataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}

	var ds types.RawDataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}

	log.Printf("Loaded %d raw island records from %s", len(ds.Islands), path)
	return &ds, nil
}
