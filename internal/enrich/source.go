package enrich

import (
	"context"
	"time"

	"github.com/nycpoi/poiconcierge/internal/models"
)

// Update carries the fields a live re-validation can correct on a stored
// point of interest. Zero values mean "no change"; only non-empty fields
// are applied.
type Update struct {
	Phone   string            `json:"phone,omitempty"`
	Website string            `json:"website,omitempty"`
	Hours   map[string]string `json:"hours,omitempty"`
}

// Source answers "is this place still as described?" by looking a POI up
// against fresher data. Implementations may call external services; the
// caller owns timeouts via ctx.
type Source interface {
	Lookup(ctx context.Context, poi models.PointOfInterest) (*Update, error)
}

// Apply patches poi with the non-empty fields of update and stamps the
// validation time. A nil update still counts as a successful validation.
func Apply(poi *models.PointOfInterest, update *Update, now time.Time) {
	if update != nil {
		if update.Phone != "" {
			poi.Contact.Phone = update.Phone
		}
		if update.Website != "" {
			poi.Contact.Website = update.Website
		}
		for day, hours := range update.Hours {
			if poi.Hours == nil {
				poi.Hours = make(map[string]string)
			}
			poi.Hours[day] = hours
		}
	}
	poi.LastValidated = now
	poi.UpdatedAt = now
}

// Status reports how fresh a POI's stored data is relative to the
// configured validation window.
type Status struct {
	PoiID         string    `json:"poi_id"`
	LastValidated time.Time `json:"last_validated"`
	AgeHours      float64   `json:"age_hours"`
	Stale         bool      `json:"stale"`
}

// CheckFreshness computes staleness at time now. A POI that has never been
// validated is always stale.
func CheckFreshness(poi models.PointOfInterest, window time.Duration, now time.Time) Status {
	status := Status{PoiID: poi.ID, LastValidated: poi.LastValidated}
	if poi.LastValidated.IsZero() {
		status.Stale = true
		return status
	}
	age := now.Sub(poi.LastValidated)
	status.AgeHours = age.Hours()
	status.Stale = age > window
	return status
}
