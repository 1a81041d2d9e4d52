package concierge

import (
	"math"
	"sort"

	"github.com/nycpoi/poiconcierge/internal/models"
)

// scoreCandidate combines prestige, proximity and context fit into one
// relevance score. Bonuses combine additively.
func (c *Concierge) scoreCandidate(cand models.Candidate, query models.RecommendationQuery) float64 {
	cfg := c.config

	score := cand.POI.Prestige.Score * cfg.PrestigeWeight

	// inverse-distance proximity: a candidate at the radius boundary
	// contributes exactly ProximityWeight
	distance := math.Max(cand.DistanceMeters, cfg.DistanceEpsilon)
	score += (query.RadiusMeters / distance) * cfg.ProximityWeight

	if query.Occasion != "" && query.Occasion != models.OccasionAny &&
		declaresOccasion(cand.POI.BestFor.Occasions, query.Occasion) {
		score += cfg.OccasionBonus
	}

	// reward a room that fits the party without dwarfing it
	if size := query.GroupSize; size > 0 && cand.POI.MaxPartySize >= size &&
		cand.POI.MaxPartySize <= size+cfg.GroupSlack {
		score += cfg.GroupBonus
	}

	return score
}

// sortByPrestige orders plain search results: prestige descending, distance
// ascending on ties, retrieval order on exact ties (stable).
func sortByPrestige(candidates []models.Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].POI.Prestige.Score != candidates[j].POI.Prestige.Score {
			return candidates[i].POI.Prestige.Score > candidates[j].POI.Prestige.Score
		}
		return candidates[i].DistanceMeters < candidates[j].DistanceMeters
	})
}

// sortByRelevance orders contextual results: score descending, distance
// ascending on ties, retrieval order on exact ties (stable).
func sortByRelevance(items []models.ScoredPOI) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].RelevanceScore != items[j].RelevanceScore {
			return items[i].RelevanceScore > items[j].RelevanceScore
		}
		return items[i].DistanceMeters < items[j].DistanceMeters
	})
}
