package models

import (
	"fmt"
	"time"
)

// PrestigeMarkers holds the recognition signals behind a POI's prestige
// score. The aggregate Score is computed by the curation pipeline and stored;
// ranking reads it as-is.
type PrestigeMarkers struct {
	Score            float64  `json:"score"`
	MichelinStars    int      `json:"michelin_stars"`
	BibGourmand      bool     `json:"bib_gourmand,omitempty"`
	JamesBeardAwards []string `json:"james_beard_awards,omitempty"`
	NYTStars         int      `json:"nyt_stars,omitempty"`
	BestOfLists      []string `json:"best_of_lists,omitempty"`
}

// Fitness declares the situations a POI suits. Empty lists mean no declared
// preference and never exclude the POI; "any" is an explicit wildcard.
type Fitness struct {
	Occasions []Occasion         `json:"occasions,omitempty"`
	TimeOfDay []TimeOfDay        `json:"time_of_day,omitempty"`
	Weather   []WeatherCondition `json:"weather,omitempty"`
}

type Contact struct {
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`
}

type PointOfInterest struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Slug            string            `json:"slug"`
	Category        string            `json:"category"`
	Subcategories   []string          `json:"subcategories,omitempty"`
	Location        Location          `json:"location"`
	Address         Address           `json:"address"`
	Contact         Contact           `json:"contact"`
	PriceTier       PriceTier         `json:"price_tier"`
	SignatureDishes []string          `json:"signature_dishes,omitempty"`
	Ambiance        []string          `json:"ambiance,omitempty"`
	Prestige        PrestigeMarkers   `json:"prestige"`
	BestFor         Fitness           `json:"best_for"`
	MaxPartySize    int               `json:"max_party_size,omitempty"` // 0 = undeclared
	Hours           map[string]string `json:"hours,omitempty"`
	LastValidated   time.Time         `json:"last_validated,omitempty"`
	CreatedAt       time.Time         `json:"created_at,omitempty"`
	UpdatedAt       time.Time         `json:"updated_at,omitempty"`
}

// Validate checks the record at the store boundary so downstream ranking
// never has to probe for missing fields.
func (p *PointOfInterest) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("poi missing id")
	}
	if p.Name == "" {
		return fmt.Errorf("poi %s missing name", p.ID)
	}
	if p.Category == "" {
		return fmt.Errorf("poi %s missing category", p.ID)
	}
	if !p.Location.Valid() {
		return fmt.Errorf("poi %s has invalid coordinates (%f, %f)", p.ID, p.Location.Lat, p.Location.Lon)
	}
	if p.Prestige.Score < 0 {
		return fmt.Errorf("poi %s has negative prestige score %f", p.ID, p.Prestige.Score)
	}
	if p.PriceTier != "" && !p.PriceTier.Valid() {
		return fmt.Errorf("poi %s has invalid price tier %q", p.ID, p.PriceTier)
	}
	return nil
}

// Candidate is a POI annotated with its distance from a query origin.
type Candidate struct {
	POI            PointOfInterest `json:"poi"`
	DistanceMeters float64         `json:"distance_meters"`
}
