package repositories

import (
	"context"
	"errors"

	"github.com/nycpoi/poiconcierge/internal/models"
)

// ErrNotFound is returned when a POI id does not exist in the store.
var ErrNotFound = errors.New("poi not found")

// POIRepository is the geospatial store behind the concierge. FindNearby
// returns candidates ordered by ascending distance; a failure of the store
// itself is an error, never an empty slice, so callers can tell outages from
// legitimately empty results.
type POIRepository interface {
	FindNearby(ctx context.Context, origin models.Location, radiusMeters float64, filter models.CandidateFilter) ([]models.Candidate, error)
	GetByID(ctx context.Context, id string) (*models.PointOfInterest, error)
	List(ctx context.Context) ([]models.PointOfInterest, error)
	Upsert(ctx context.Context, poi *models.PointOfInterest) error
	BulkUpsert(ctx context.Context, pois []*models.PointOfInterest) error
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
	Close()
}
