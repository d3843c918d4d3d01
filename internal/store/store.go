// Package store reads and writes the per-sport JSON documents. Files
// are read in full, mutated in memory and rewritten in full; each run
// owns its files exclusively for its duration.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mtlusa01/mattev-sports/pkg/models"
)

// Store is a directory of projection and results files
type Store struct {
	dir string
}

// New creates a store rooted at dir
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the store's root directory
func (s *Store) Dir() string {
	return s.dir
}

// LoadProjections reads a sport's projection file. A missing file is
// not an error; it returns (nil, nil) and the sport is skipped.
func (s *Store) LoadProjections(name string) (*models.Projections, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	var proj models.Projections
	if err := json.Unmarshal(data, &proj); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	return &proj, nil
}

// SaveProjections rewrites a sport's projection file
func (s *Store) SaveProjections(name string, proj *models.Projections) error {
	return s.write(name, proj)
}

// LoadResults reads a sport's results file. A missing file is treated
// as an empty starting document.
func (s *Store) LoadResults(name string) (*models.Results, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return models.NewResults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	var results models.Results
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	if results.Days == nil {
		results.Days = []models.DayStats{}
	}
	return &results, nil
}

// SaveResults rewrites a sport's results file
func (s *Store) SaveResults(name string, results *models.Results) error {
	return s.write(name, results)
}

func (s *Store) write(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
