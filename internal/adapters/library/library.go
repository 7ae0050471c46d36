// Package library loads a collection of candidate score reports from a
// YAML file and serves exact song/artist lookups against it. It is a pure
// search surface over caller-provided data; the query pipeline never reads
// from or writes to it.
package library

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dabeerhasan15/sounds/internal/core/domain"
)

// Library is an in-memory collection of candidate reports.
type Library struct {
	reports []domain.Report
}

// Load reads a report collection from a YAML file.
func Load(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("library: read %s: %w", path, err)
	}

	var reports []domain.Report
	if err := yaml.Unmarshal(data, &reports); err != nil {
		return nil, fmt.Errorf("library: parse %s: %w", path, err)
	}

	return &Library{reports: reports}, nil
}

// Find returns the first report matching song and artist, ignoring case
// and surrounding whitespace.
func (l *Library) Find(song, artist string) (domain.Report, bool) {
	return domain.FindReport(l.reports, song, artist)
}

// Len reports how many candidate reports are loaded.
func (l *Library) Len() int {
	return len(l.reports)
}

// Reports exposes the loaded collection in file order.
func (l *Library) Reports() []domain.Report {
	return l.reports
}
