package concierge

import "github.com/nycpoi/poiconcierge/internal/models"

// matchesContext applies the hard situational filters. A failing candidate is
// dropped before scoring, never merely scored lower. Empty fitness lists are
// permissive: a venue with no declared occasions fits every occasion.
func (c *Concierge) matchesContext(poi *models.PointOfInterest, query models.RecommendationQuery, bucket models.TimeOfDay) bool {
	if query.Occasion != "" && query.Occasion != models.OccasionAny &&
		!occasionFits(poi.BestFor.Occasions, query.Occasion) {
		return false
	}
	if query.Weather != "" && query.Weather != models.WeatherAny &&
		!weatherFits(poi.BestFor.Weather, query.Weather) {
		return false
	}
	if bucket != "" && bucket != models.TimeAny &&
		!timeFits(poi.BestFor.TimeOfDay, bucket) {
		return false
	}
	// capacity is a hard cut: a declared max party size below the group size
	// excludes the venue outright
	if query.GroupSize > 0 && poi.MaxPartySize > 0 && poi.MaxPartySize < query.GroupSize {
		return false
	}
	if len(query.Budgets) > 0 && !budgetFits(query.Budgets, poi.PriceTier) {
		return false
	}
	return true
}

func occasionFits(declared []models.Occasion, want models.Occasion) bool {
	if len(declared) == 0 {
		return true
	}
	for _, o := range declared {
		if o == want || o == models.OccasionAny {
			return true
		}
	}
	return false
}

func weatherFits(declared []models.WeatherCondition, want models.WeatherCondition) bool {
	if len(declared) == 0 {
		return true
	}
	for _, w := range declared {
		if w == want || w == models.WeatherAny {
			return true
		}
	}
	return false
}

func timeFits(declared []models.TimeOfDay, want models.TimeOfDay) bool {
	if len(declared) == 0 {
		return true
	}
	for _, t := range declared {
		if t == want || t == models.TimeAny {
			return true
		}
	}
	return false
}

func budgetFits(wanted []models.PriceTier, tier models.PriceTier) bool {
	for _, w := range wanted {
		if w == tier {
			return true
		}
	}
	return false
}

// declaresOccasion reports an explicit declaration; unlike occasionFits it is
// not satisfied by an empty list or the wildcard. The occasion bonus and the
// occasion reason phrase both key off this.
func declaresOccasion(declared []models.Occasion, want models.Occasion) bool {
	for _, o := range declared {
		if o == want {
			return true
		}
	}
	return false
}
