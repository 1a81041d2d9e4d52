package api

import (
	"time"

	"github.com/nycpoi/poiconcierge/internal/models"
)

// originBody uses pointer fields so a missing coordinate is told apart from
// a legitimate zero. Binding rejects absent fields before the engine runs.
type originBody struct {
	Lat *float64 `json:"lat" binding:"required"`
	Lon *float64 `json:"lon" binding:"required"`
}

func (o *originBody) toLocation() models.Location {
	return models.Location{Lat: *o.Lat, Lon: *o.Lon}
}

type searchRequest struct {
	Origin        *originBody `json:"origin" binding:"required"`
	RadiusMeters  float64     `json:"radius_meters"`
	Categories    []string    `json:"categories"`
	Subcategory   string      `json:"subcategory"`
	MinPrestige   float64     `json:"min_prestige"`
	MichelinStars []int       `json:"michelin_stars"`
	Limit         int         `json:"limit"`
}

func (r *searchRequest) toQuery(now time.Time) models.SearchQuery {
	return models.SearchQuery{
		Origin:        r.Origin.toLocation(),
		RadiusMeters:  r.RadiusMeters,
		Categories:    r.Categories,
		Subcategory:   r.Subcategory,
		MinPrestige:   r.MinPrestige,
		MichelinStars: r.MichelinStars,
		Limit:         r.Limit,
		RequestedAt:   now,
	}
}

// recommendRequest leaves "when" unbound on purpose: the engine reports a
// missing datetime as a field-level validation error, which beats gin's
// generic binding message.
type recommendRequest struct {
	Origin       *originBody `json:"origin" binding:"required"`
	RadiusMeters float64     `json:"radius_meters"`
	When         time.Time   `json:"when"`
	Weather      string      `json:"weather"`
	Occasion     string      `json:"occasion"`
	GroupSize    int         `json:"group_size"`
	Budgets      []string    `json:"budgets"`
	Categories   []string    `json:"categories"`
	Limit        int         `json:"limit"`
}

func (r *recommendRequest) toQuery() models.RecommendationQuery {
	budgets := make([]models.PriceTier, len(r.Budgets))
	for i, b := range r.Budgets {
		budgets[i] = models.PriceTier(b)
	}
	return models.RecommendationQuery{
		Origin:       r.Origin.toLocation(),
		RadiusMeters: r.RadiusMeters,
		When:         r.When,
		Weather:      models.WeatherCondition(r.Weather),
		Occasion:     models.Occasion(r.Occasion),
		GroupSize:    r.GroupSize,
		Budgets:      budgets,
		Categories:   r.Categories,
		Limit:        r.Limit,
	}
}
