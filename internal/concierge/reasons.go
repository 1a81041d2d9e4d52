package concierge

import (
	"fmt"
	"math"
	"strings"

	"github.com/nycpoi/poiconcierge/internal/models"
)

const reasonSeparator = " · "

var occasionPhrases = map[models.Occasion]string{
	models.OccasionDateNight:      "Perfect for date night",
	models.OccasionBusinessDinner: "Ideal for business dinners",
	models.OccasionBusinessLunch:  "Great for a working lunch",
	models.OccasionCasualMeal:     "Relaxed spot for a casual meal",
	models.OccasionCelebration:    "Made for celebrations",
	models.OccasionFamilyDinner:   "Welcoming for family dinners",
	models.OccasionQuickBite:      "Quick bite done right",
	models.OccasionAfterWork:      "Popular after-work pick",
}

// reasonFor builds the human-readable justification for one result, from
// fields already computed. Phrase priority: Michelin stars, occasion match,
// proximity, first signature dish. Pure and total: never empty.
func (c *Concierge) reasonFor(item models.ScoredPOI, query models.RecommendationQuery) string {
	var phrases []string

	if stars := item.POI.Prestige.MichelinStars; stars > 0 {
		if stars == 1 {
			phrases = append(phrases, "1 Michelin star")
		} else {
			phrases = append(phrases, fmt.Sprintf("%d Michelin stars", stars))
		}
	}

	if query.Occasion != "" && query.Occasion != models.OccasionAny &&
		declaresOccasion(item.POI.BestFor.Occasions, query.Occasion) {
		phrase, ok := occasionPhrases[query.Occasion]
		if !ok {
			phrase = fmt.Sprintf("Great for %s", query.Occasion)
		}
		phrases = append(phrases, phrase)
	}

	if item.DistanceMeters < c.config.VeryCloseMeters {
		phrases = append(phrases, fmt.Sprintf("Just %d m away", roundedMeters(item.DistanceMeters)))
	}

	if len(item.POI.SignatureDishes) > 0 {
		phrases = append(phrases, fmt.Sprintf("Known for %s", item.POI.SignatureDishes[0]))
	}

	if len(phrases) == 0 {
		return "Highly rated"
	}
	return strings.Join(phrases, reasonSeparator)
}

// roundedMeters rounds to the nearest 10 m, never below 10.
func roundedMeters(meters float64) int {
	rounded := int(math.Round(meters/10) * 10)
	if rounded < 10 {
		return 10
	}
	return rounded
}
