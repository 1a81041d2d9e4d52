package models

// Prestige increments applied by the curation pipeline. Three Michelin stars
// alone put a venue at the top of the nominal 0-150 range.
const (
	prestigeMichelinThree = 100.0
	prestigeMichelinTwo   = 75.0
	prestigeMichelinOne   = 50.0
	prestigeBibGourmand   = 30.0
	prestigeJamesBeard    = 40.0
	prestigeNYTFourStars  = 40.0
	prestigeNYTThreeStars = 30.0
	prestigePerBestOfList = 5.0
)

// MinCurationScore is the quality floor below which curation drops a venue.
const MinCurationScore = 20.0

// prestigeCeiling caps stacked markers at the top of the nominal range.
const prestigeCeiling = 150.0

// Compute derives the aggregate prestige score from the individual markers.
// Used when seeding or importing records that carry markers but no
// precomputed score; served records keep their stored score untouched.
func (p PrestigeMarkers) Compute() float64 {
	score := 0.0

	switch p.MichelinStars {
	case 3:
		score += prestigeMichelinThree
	case 2:
		score += prestigeMichelinTwo
	case 1:
		score += prestigeMichelinOne
	}
	if p.BibGourmand {
		score += prestigeBibGourmand
	}
	if len(p.JamesBeardAwards) > 0 {
		score += prestigeJamesBeard
	}
	switch {
	case p.NYTStars >= 4:
		score += prestigeNYTFourStars
	case p.NYTStars == 3:
		score += prestigeNYTThreeStars
	}
	score += float64(len(p.BestOfLists)) * prestigePerBestOfList

	if score > prestigeCeiling {
		score = prestigeCeiling
	}
	return score
}
