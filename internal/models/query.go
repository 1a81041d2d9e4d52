package models

import "time"

// SearchQuery is the plain search request: prestige-then-distance ordering,
// no contextual scoring. Created per request, never persisted.
type SearchQuery struct {
	Origin        Location  `json:"origin"`
	RadiusMeters  float64   `json:"radius_meters,omitempty"`
	Categories    []string  `json:"categories,omitempty"`
	Subcategory   string    `json:"subcategory,omitempty"`
	MinPrestige   float64   `json:"min_prestige,omitempty"`
	MichelinStars []int     `json:"michelin_stars,omitempty"`
	Limit         int       `json:"limit,omitempty"`
	RequestedAt   time.Time `json:"-"`
}

// RecommendationQuery is the contextual request: situational filters plus
// composite relevance scoring.
type RecommendationQuery struct {
	Origin       Location         `json:"origin"`
	RadiusMeters float64          `json:"radius_meters,omitempty"`
	When         time.Time        `json:"when"`
	Weather      WeatherCondition `json:"weather,omitempty"`
	Occasion     Occasion         `json:"occasion,omitempty"`
	GroupSize    int              `json:"group_size,omitempty"`
	Budgets      []PriceTier      `json:"budgets,omitempty"`
	Categories   []string         `json:"categories,omitempty"`
	Limit        int              `json:"limit,omitempty"`
}

// ScoredPOI is one ranked result row.
type ScoredPOI struct {
	POI            PointOfInterest `json:"poi"`
	DistanceMeters float64         `json:"distance_meters"`
	RelevanceScore float64         `json:"relevance_score,omitempty"`
	Reason         string          `json:"reason,omitempty"`
}

type SearchResult struct {
	Items           []ScoredPOI `json:"items"`
	TotalCandidates int         `json:"total_candidates"`
	RadiusMeters    float64     `json:"radius_meters"`
}

type RecommendationResult struct {
	Items           []ScoredPOI `json:"items"`
	TotalCandidates int         `json:"total_candidates"`
	RadiusMeters    float64     `json:"radius_meters"`
	TimeOfDay       TimeOfDay   `json:"time_of_day"`
}

// CandidateFilter narrows retrieval before ranking. All fields optional.
type CandidateFilter struct {
	Categories    []string
	Subcategory   string
	MinPrestige   float64
	MichelinStars []int
}
