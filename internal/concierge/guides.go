package concierge

import "github.com/nycpoi/poiconcierge/internal/models"

// NeighborhoodGuide is a curated context card for an area the dataset covers.
type NeighborhoodGuide struct {
	Slug          string   `json:"slug"`
	Name          string   `json:"name"`
	Vibe          string   `json:"vibe"`
	BestFor       []string `json:"best_for"`
	SignaturePOIs []string `json:"signature_pois"`
	MustTry       []string `json:"must_try"`
}

// CategoryGuide describes one primary category and its prestige band.
type CategoryGuide struct {
	Category       string            `json:"category"`
	Description    string            `json:"description"`
	PrestigeRange  string            `json:"prestige_range"`
	IdealOccasions []models.Occasion `json:"ideal_occasions"`
	Hallmarks      []string          `json:"hallmarks"`
}

// NeighborhoodGuides returns the curated playbook cards, in editorial order.
func NeighborhoodGuides() []NeighborhoodGuide {
	return []NeighborhoodGuide{
		{
			Slug:    "west-village",
			Name:    "West Village",
			Vibe:    "Candle-lit brownstones, intimate dining rooms, and late-night jazz hideaways.",
			BestFor: []string{"date-night", "celebration", "after-work"},
			SignaturePOIs: []string{
				"Employees Only",
				"L'Artusi",
				"Via Carota",
			},
			MustTry: []string{
				"9th Street pasta crawl (L'Artusi → I Sodi)",
				"Speakeasy crawl down Hudson Street",
			},
		},
		{
			Slug:    "flatiron-nomad",
			Name:    "Flatiron & NoMad",
			Vibe:    "Design-forward dining rooms, chef counter energy, and power lunches that stretch into dinner.",
			BestFor: []string{"business-dinner", "business-lunch", "celebration"},
			SignaturePOIs: []string{
				"Eleven Madison Park",
				"The NoMad Bar",
				"Koloman",
			},
			MustTry: []string{
				"Chef's tasting at EMP followed by digestifs at The NoMad Bar",
				"Midday strategy session at Koloman's front café",
			},
		},
		{
			Slug:    "brooklyn-bridge-corridor",
			Name:    "Brooklyn Heights & DUMBO",
			Vibe:    "Skyline views, riverfront promenades, and inventive tasting menus tucked into restored warehouses.",
			BestFor: []string{"family-dinner", "sunset-stroll", "special-occasion"},
			SignaturePOIs: []string{
				"The River Café",
				"Vinegar Hill House",
				"Celestine",
			},
			MustTry: []string{
				"Golden hour cocktails underneath the Brooklyn Bridge",
				"Wood-fired brunch in Vinegar Hill",
			},
		},
		{
			Slug:    "midtown-power",
			Name:    "Midtown Power Corridor",
			Vibe:    "Marble lobbies, legacy steakhouses, and Michelin-grade temples built for decisive dinners.",
			BestFor: []string{"business-dinner", "pre-theatre", "client-win"},
			SignaturePOIs: []string{
				"Le Bernardin",
				"The Modern",
				"Keens Steakhouse",
			},
			MustTry: []string{
				"Pre-show tasting menu at The Modern",
				"Closing toast with a 100-year-old brandy at Keens",
			},
		},
	}
}

// CategoryGuides returns the category taxonomy with prestige bands.
func CategoryGuides() []CategoryGuide {
	return []CategoryGuide{
		{
			Category:       models.CategoryFineDining,
			Description:    "Michelin-caliber rooms, extended tasting menus, chef tables, and white-glove service.",
			PrestigeRange:  "110-150",
			IdealOccasions: []models.Occasion{models.OccasionCelebration, models.OccasionDateNight, models.OccasionBusinessDinner},
			Hallmarks: []string{
				"Multi-course tasting menus with optional wine pairings",
				"Dedicated reservations desk and jacket-friendly dress code",
				"Signature dish lineage (e.g., EMP's plant-based tasting)",
			},
		},
		{
			Category:       models.CategoryCasualDining,
			Description:    "Neighborhood staples with James Beard nods, power lunches, and cult favorite pizzas.",
			PrestigeRange:  "70-109",
			IdealOccasions: []models.Occasion{models.OccasionFamilyDinner, models.OccasionAfterWork, models.OccasionCasualMeal},
			Hallmarks: []string{
				"Walk-in friendly counters or bar seating",
				"Chef-driven menus with seasonal specials",
				"Comfortable price points without sacrificing sourcing",
			},
		},
		{
			Category:       models.CategoryBarsCocktails,
			Description:    "Award-winning bar programs, low-lit speakeasies, and zero-proof tasting flights.",
			PrestigeRange:  "60-95",
			IdealOccasions: []models.Occasion{models.OccasionAfterWork, models.OccasionDateNight},
			Hallmarks: []string{
				"House clarified milk punches and reserve spirit programs",
				"Snack menus curated with local purveyors",
				"Standing room vibes with impeccable playlists",
			},
		},
	}
}
