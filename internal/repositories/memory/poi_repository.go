package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"
	"sync"

	"github.com/nycpoi/poiconcierge/internal/models"
	"github.com/nycpoi/poiconcierge/internal/repositories"
)

var _ repositories.POIRepository = (*POIRepository)(nil)

// POIRepository keeps the whole dataset in memory. It backs demo mode and the
// test suite. Candidate lookup is a linear haversine scan, which is plenty for
// the few hundred venues in the NYC dataset.
type POIRepository struct {
	mu   sync.RWMutex
	pois []models.PointOfInterest // insertion order, keeps retrieval reproducible
	byID map[string]int
}

func NewPOIRepository() *POIRepository {
	return &POIRepository{byID: make(map[string]int)}
}

// NewFromFile loads a JSON array of POI records, skipping invalid ones.
func NewFromFile(path string) (*POIRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}
	var pois []*models.PointOfInterest
	if err := json.Unmarshal(data, &pois); err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}

	repo := NewPOIRepository()
	for _, poi := range pois {
		if err := repo.Upsert(context.Background(), poi); err != nil {
			log.Printf("skipping invalid poi in %s: %v", path, err)
		}
	}
	return repo, nil
}

func (r *POIRepository) FindNearby(ctx context.Context, origin models.Location, radiusMeters float64, filter models.CandidateFilter) ([]models.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var candidates []models.Candidate
	for _, poi := range r.pois {
		if !matchesFilter(&poi, filter) {
			continue
		}
		if distance := origin.DistanceTo(poi.Location); distance <= radiusMeters {
			candidates = append(candidates, models.Candidate{POI: poi, DistanceMeters: distance})
		}
	}

	// same ordering contract as the postgres store
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].DistanceMeters < candidates[j].DistanceMeters
	})
	return candidates, nil
}

func (r *POIRepository) GetByID(ctx context.Context, id string) (*models.PointOfInterest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	poi := r.pois[idx]
	return &poi, nil
}

// List returns every stored POI in insertion order.
func (r *POIRepository) List(ctx context.Context) ([]models.PointOfInterest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.PointOfInterest, len(r.pois))
	copy(out, r.pois)
	return out, nil
}

func (r *POIRepository) Upsert(ctx context.Context, poi *models.PointOfInterest) error {
	if err := poi.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if idx, ok := r.byID[poi.ID]; ok {
		r.pois[idx] = *poi
		return nil
	}
	r.byID[poi.ID] = len(r.pois)
	r.pois = append(r.pois, *poi)
	return nil
}

func (r *POIRepository) BulkUpsert(ctx context.Context, pois []*models.PointOfInterest) error {
	for _, poi := range pois {
		if err := r.Upsert(ctx, poi); err != nil {
			log.Printf("skipping invalid poi in bulk upsert: %v", err)
		}
	}
	return nil
}

func (r *POIRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.pois), nil
}

func (r *POIRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pois = nil
	r.byID = make(map[string]int)
	return nil
}

func (r *POIRepository) Close() {}

func matchesFilter(poi *models.PointOfInterest, filter models.CandidateFilter) bool {
	if len(filter.Categories) > 0 && !containsString(filter.Categories, poi.Category) {
		return false
	}
	if filter.Subcategory != "" && !containsString(poi.Subcategories, filter.Subcategory) {
		return false
	}
	if filter.MinPrestige > 0 && poi.Prestige.Score < filter.MinPrestige {
		return false
	}
	if len(filter.MichelinStars) > 0 && !containsInt(filter.MichelinStars, poi.Prestige.MichelinStars) {
		return false
	}
	return true
}

func containsString(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

func containsInt(slice []int, item int) bool {
	for _, n := range slice {
		if n == item {
			return true
		}
	}
	return false
}
