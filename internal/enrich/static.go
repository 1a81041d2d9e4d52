package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/nycpoi/poiconcierge/internal/models"
)

// StaticSource serves corrections from a fixture file keyed by POI id.
// It stands in for a live web lookup in demos and tests.
type StaticSource struct {
	updates map[string]Update
}

var _ Source = (*StaticSource)(nil)

// NewStaticSource loads a JSON object mapping POI id to update.
func NewStaticSource(path string) (*StaticSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read enrichment fixture: %w", err)
	}
	var updates map[string]Update
	if err := json.Unmarshal(data, &updates); err != nil {
		return nil, fmt.Errorf("failed to parse enrichment fixture: %w", err)
	}
	return &StaticSource{updates: updates}, nil
}

// NewStaticSourceFromMap builds a source directly from updates, mainly for
// tests.
func NewStaticSourceFromMap(updates map[string]Update) *StaticSource {
	return &StaticSource{updates: updates}
}

func (s *StaticSource) Lookup(ctx context.Context, poi models.PointOfInterest) (*Update, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	update, ok := s.updates[poi.ID]
	if !ok {
		return nil, nil
	}
	return &update, nil
}

// NewSource picks an implementation from configuration.
func NewSource(config models.EnrichmentConfig) (Source, error) {
	switch config.Source {
	case "", "noop":
		return NoopSource{}, nil
	case "static":
		return NewStaticSource(config.FixtureFile)
	default:
		return nil, fmt.Errorf("unsupported enrichment source: %s", config.Source)
	}
}
