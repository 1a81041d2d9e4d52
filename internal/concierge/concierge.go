package concierge

import (
	"context"
	"fmt"

	"github.com/nycpoi/poiconcierge/internal/models"
	"github.com/nycpoi/poiconcierge/internal/repositories"
)

// Concierge ranks nearby venues. It is stateless between requests: every call
// retrieves candidates from the store, scores them in memory and returns an
// ordered, capped list. Scoring itself never blocks; the only blocking step is
// the store retrieval, bounded by the caller's context.
type Concierge struct {
	repo   repositories.POIRepository
	config models.RankerConfig
}

func New(repo repositories.POIRepository, config models.RankerConfig) *Concierge {
	return &Concierge{repo: repo, config: config}
}

// Search runs the plain mode: radius retrieval with optional filters, ordered
// by prestige descending then distance ascending. No contextual scoring.
func (c *Concierge) Search(ctx context.Context, query models.SearchQuery) (*models.SearchResult, error) {
	query = c.normaliseSearch(query)
	if err := c.validateSearch(query); err != nil {
		return nil, err
	}

	filter := models.CandidateFilter{
		Categories:    query.Categories,
		Subcategory:   query.Subcategory,
		MinPrestige:   query.MinPrestige,
		MichelinStars: query.MichelinStars,
	}
	candidates, err := c.repo.FindNearby(ctx, query.Origin, query.RadiusMeters, filter)
	if err != nil {
		return nil, fmt.Errorf("retrieving candidates: %w", err)
	}

	total := len(candidates)
	sortByPrestige(candidates)
	if len(candidates) > query.Limit {
		candidates = candidates[:query.Limit]
	}

	items := make([]models.ScoredPOI, 0, len(candidates))
	for _, cand := range candidates {
		items = append(items, models.ScoredPOI{
			POI:            cand.POI,
			DistanceMeters: cand.DistanceMeters,
		})
	}
	return &models.SearchResult{
		Items:           items,
		TotalCandidates: total,
		RadiusMeters:    query.RadiusMeters,
	}, nil
}

// Recommend runs the contextual mode: hard situational filters, then a
// composite relevance score per survivor, then reason strings for the top
// results.
func (c *Concierge) Recommend(ctx context.Context, query models.RecommendationQuery) (*models.RecommendationResult, error) {
	query = c.normaliseRecommendation(query)
	if err := c.validateRecommendation(query); err != nil {
		return nil, err
	}
	bucket := BucketForHour(query.When.Hour(), c.config)

	filter := models.CandidateFilter{Categories: query.Categories}
	candidates, err := c.repo.FindNearby(ctx, query.Origin, query.RadiusMeters, filter)
	if err != nil {
		return nil, fmt.Errorf("retrieving candidates: %w", err)
	}

	scored := make([]models.ScoredPOI, 0, len(candidates))
	for _, cand := range candidates {
		if !c.matchesContext(&cand.POI, query, bucket) {
			continue
		}
		scored = append(scored, models.ScoredPOI{
			POI:            cand.POI,
			DistanceMeters: cand.DistanceMeters,
			RelevanceScore: c.scoreCandidate(cand, query),
		})
	}

	total := len(scored)
	sortByRelevance(scored)
	if len(scored) > query.Limit {
		scored = scored[:query.Limit]
	}
	for i := range scored {
		scored[i].Reason = c.reasonFor(scored[i], query)
	}

	return &models.RecommendationResult{
		Items:           scored,
		TotalCandidates: total,
		RadiusMeters:    query.RadiusMeters,
		TimeOfDay:       bucket,
	}, nil
}

func (c *Concierge) normaliseSearch(query models.SearchQuery) models.SearchQuery {
	if query.RadiusMeters == 0 {
		query.RadiusMeters = c.config.SearchRadiusMeters
	}
	if query.Limit == 0 {
		query.Limit = c.config.SearchLimit
	}
	return query
}

func (c *Concierge) normaliseRecommendation(query models.RecommendationQuery) models.RecommendationQuery {
	if query.RadiusMeters == 0 {
		query.RadiusMeters = c.config.RecommendRadiusMeters
	}
	if query.Limit == 0 {
		query.Limit = c.config.RecommendLimit
	}
	if query.GroupSize == 0 {
		query.GroupSize = c.config.DefaultGroupSize
	}
	if query.Weather == "" {
		query.Weather = models.WeatherAny
	}
	return query
}

func (c *Concierge) validateSearch(query models.SearchQuery) error {
	if err := validateOrigin(query.Origin); err != nil {
		return err
	}
	if query.RadiusMeters < 0 {
		return invalidField("radius_meters", "must be positive, got %f", query.RadiusMeters)
	}
	if query.Limit < 0 {
		return invalidField("limit", "must be a positive integer, got %d", query.Limit)
	}
	if query.MinPrestige < 0 {
		return invalidField("min_prestige", "must be non-negative, got %f", query.MinPrestige)
	}
	for _, stars := range query.MichelinStars {
		if stars < 0 || stars > 3 {
			return invalidField("michelin_stars", "stars must be between 0 and 3, got %d", stars)
		}
	}
	return nil
}

func (c *Concierge) validateRecommendation(query models.RecommendationQuery) error {
	if err := validateOrigin(query.Origin); err != nil {
		return err
	}
	if query.When.IsZero() {
		return invalidField("when", "a target datetime is required")
	}
	if query.RadiusMeters < 0 {
		return invalidField("radius_meters", "must be positive, got %f", query.RadiusMeters)
	}
	if query.Limit < 0 {
		return invalidField("limit", "must be a positive integer, got %d", query.Limit)
	}
	if query.GroupSize < 0 {
		return invalidField("group_size", "must be positive, got %d", query.GroupSize)
	}
	if query.Occasion != "" && !query.Occasion.Valid() {
		return invalidField("occasion", "unknown occasion %q", query.Occasion)
	}
	if !query.Weather.Valid() {
		return invalidField("weather", "unknown weather condition %q", query.Weather)
	}
	for _, tier := range query.Budgets {
		if !tier.Valid() {
			return invalidField("budgets", "unknown price tier %q", tier)
		}
	}
	return nil
}

func validateOrigin(origin models.Location) error {
	if !origin.Valid() {
		return invalidField("origin", "coordinates (%f, %f) are outside WGS84 bounds", origin.Lat, origin.Lon)
	}
	return nil
}
