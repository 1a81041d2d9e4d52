package factories

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
	"github.com/nycpoi/poiconcierge/internal/models"
)

type POIFactory struct {
	slugCache sync.Map // to track used slugs
	rng       *rand.Rand
	fake      faker.Faker
}

// NewPOIFactory builds a factory with its own seeded random stream so the
// seed command can reproduce a dataset shape run to run.
func NewPOIFactory(seed int64) *POIFactory {
	return &POIFactory{
		rng:  rand.New(rand.NewSource(seed)),
		fake: faker.NewWithSeed(rand.NewSource(seed)),
	}
}

// CreatePOI generates a synthetic venue scattered around the configured city
// center. Anchor venues come from AnchorPOIs; these fill out the long tail.
func (pf *POIFactory) CreatePOI(config models.SeedConfig) models.PointOfInterest {
	spreadKm := config.SpreadRadiusMeters / 1000.0
	latRange := spreadKm / 111.0
	lonRange := latRange / math.Cos(config.CityLat*math.Pi/180.0)

	latOffset := (pf.rng.Float64()*2 - 1) * latRange
	lonOffset := (pf.rng.Float64()*2 - 1) * lonRange

	lat := config.CityLat + latOffset
	lon := config.CityLon + lonOffset

	category := pf.pickCategory()
	subcategory := pf.pickSubcategory(category)
	name := pf.generateName(subcategory)
	neighborhood, borough := pf.pickNeighborhood()
	markers := pf.generateMarkers()
	now := time.Now()

	return models.PointOfInterest{
		ID:            cuid.New(),
		Name:          name,
		Slug:          pf.createUniqueSlug(name),
		Category:      category,
		Subcategories: []string{subcategory},
		Location: models.Location{
			Lat: lat,
			Lon: lon,
		},
		Address: models.Address{
			Street:       pf.fake.Address().StreetAddress(),
			City:         "New York",
			State:        "NY",
			Zip:          pf.fake.Address().PostCode(),
			Neighborhood: neighborhood,
			Borough:      borough,
		},
		Contact: models.Contact{
			Phone:   pf.fake.Phone().Number(),
			Website: pf.fake.Internet().URL(),
		},
		PriceTier:       pf.pickPriceTier(category),
		SignatureDishes: pf.pickDishes(subcategory),
		Ambiance:        pf.pickAmbiance(),
		Prestige:        markers,
		BestFor:         pf.generateFitness(category),
		MaxPartySize:    pf.pickMaxPartySize(category),
		Hours:           pf.generateHours(category),
		LastValidated:   now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (pf *POIFactory) createUniqueSlug(name string) string {
	base := strings.ToLower(strings.ReplaceAll(name, " ", "-"))
	base = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return -1
	}, base)

	slug := base
	counter := 1

	for {
		if _, exists := pf.slugCache.LoadOrStore(slug, true); !exists {
			return slug
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
		counter++
	}
}

func (pf *POIFactory) pickCategory() string {
	r := pf.rng.Float64()
	switch {
	case r < 0.55:
		return models.CategoryCasualDining
	case r < 0.80:
		return models.CategoryFineDining
	default:
		return models.CategoryBarsCocktails
	}
}

func (pf *POIFactory) pickSubcategory(category string) string {
	subcategories := map[string][]string{
		models.CategoryFineDining:    {"french", "japanese", "korean", "new-american", "italian", "seafood", "steakhouse", "tasting-menu"},
		models.CategoryCasualDining:  {"italian", "bistro", "brasserie", "deli", "pizza", "mediterranean", "mexican", "ramen", "thai", "american"},
		models.CategoryBarsCocktails: {"cocktail-bar", "wine-bar", "speakeasy", "rooftop", "dive-bar"},
	}
	options := subcategories[category]
	if len(options) == 0 {
		return "american"
	}
	return options[pf.rng.Intn(len(options))]
}

func (pf *POIFactory) generateName(subcategory string) string {
	first := []string{"Gilded", "Velvet", "Iron", "Copper", "Hudson", "Bowery", "Mercer", "Crosby", "Juniper", "Saffron", "Marble", "Ember", "Wren", "Laurel", "Clover"}
	second := []string{"Fig", "Oak", "Lantern", "Anchor", "Table", "Room", "Garden", "Larder", "Hearth", "Swan", "Finch", "Grove", "Parlor", "Cellar", "Harbor"}

	patterns := []string{"The %s %s", "%s & %s", "%s %s"}
	name := fmt.Sprintf(patterns[pf.rng.Intn(len(patterns))],
		first[pf.rng.Intn(len(first))], second[pf.rng.Intn(len(second))])

	switch subcategory {
	case "bistro", "brasserie":
		if pf.rng.Float64() < 0.4 {
			name = "Café " + first[pf.rng.Intn(len(first))]
		}
	case "cocktail-bar", "speakeasy":
		if pf.rng.Float64() < 0.4 {
			name = name + " Bar"
		}
	}
	return name
}

func (pf *POIFactory) pickNeighborhood() (string, string) {
	neighborhoods := []struct {
		name    string
		borough string
	}{
		{"West Village", "Manhattan"},
		{"Greenwich Village", "Manhattan"},
		{"SoHo", "Manhattan"},
		{"NoHo", "Manhattan"},
		{"East Village", "Manhattan"},
		{"Lower East Side", "Manhattan"},
		{"Flatiron", "Manhattan"},
		{"NoMad", "Manhattan"},
		{"Chelsea", "Manhattan"},
		{"Midtown", "Manhattan"},
		{"Hell's Kitchen", "Manhattan"},
		{"Tribeca", "Manhattan"},
		{"Upper East Side", "Manhattan"},
		{"Upper West Side", "Manhattan"},
		{"Williamsburg", "Brooklyn"},
		{"DUMBO", "Brooklyn"},
		{"Brooklyn Heights", "Brooklyn"},
		{"Greenpoint", "Brooklyn"},
		{"Long Island City", "Queens"},
		{"Astoria", "Queens"},
	}
	pick := neighborhoods[pf.rng.Intn(len(neighborhoods))]
	return pick.name, pick.borough
}

func (pf *POIFactory) pickPriceTier(category string) models.PriceTier {
	r := pf.rng.Float64()
	switch category {
	case models.CategoryFineDining:
		if r < 0.5 {
			return models.PriceLuxury
		}
		return models.PriceUpscale
	case models.CategoryBarsCocktails:
		if r < 0.6 {
			return models.PriceUpscale
		}
		return models.PriceModerate
	default:
		switch {
		case r < 0.15:
			return models.PriceBudget
		case r < 0.75:
			return models.PriceModerate
		default:
			return models.PriceUpscale
		}
	}
}

func (pf *POIFactory) pickDishes(subcategory string) []string {
	dishes := map[string][]string{
		"french":       {"Duck à l'orange", "Sole meunière", "Soufflé au chocolat", "Escargots"},
		"japanese":     {"Omakase nigiri", "Chawanmushi", "A5 wagyu", "Uni toast"},
		"korean":       {"Galbi", "Dry-aged ribeye ssam", "Kimchi jjigae", "Bossam"},
		"new-american": {"Dry-aged duck for two", "Honey-lavender roast chicken", "Sea urchin pasta"},
		"italian":      {"Cacio e pepe", "Veal parmesan", "Tagliatelle al ragù", "Burrata"},
		"seafood":      {"Crudo tasting", "Lobster thermidor", "Whole branzino", "Oysters on the half shell"},
		"steakhouse":   {"Porterhouse for two", "Mutton chop", "Prime rib", "Creamed spinach"},
		"tasting-menu": {"Seasonal tasting menu", "Chef's counter omakase"},
		"bistro":       {"Steak frites", "Duck confit", "Croque monsieur"},
		"brasserie":    {"Raw bar plateau", "Roast chicken for two", "Onion soup gratinée"},
		"deli":         {"Pastrami on rye", "Matzo ball soup", "Potato knish"},
		"pizza":        {"Margherita slice", "Vodka square", "White clam pie"},
		"mediterranean": {"Whole grilled octopus", "Lamb kofta", "Hummus with pine nuts"},
		"mexican":      {"Al pastor tacos", "Mole poblano", "Queso fundido"},
		"ramen":        {"Tonkotsu ramen", "Spicy miso ramen", "Pork buns"},
		"thai":         {"Khao soi", "Pad see ew", "Crispy pork belly basil"},
		"american":     {"Smash burger", "Buttermilk fried chicken", "Mac and cheese"},
		"cocktail-bar": {"House martini", "Seasonal spritz"},
		"wine-bar":     {"Natural wine flight", "Cheese board"},
		"speakeasy":    {"Bartender's choice", "Penicillin"},
		"rooftop":      {"Frozen negroni", "Tuna tartare"},
		"dive-bar":     {"Shot and a beer", "Pickleback"},
	}
	options, ok := dishes[subcategory]
	if !ok {
		return []string{"Chef's special"}
	}
	count := pf.rng.Intn(2) + 1 // 1 to 2 dishes
	picked := make([]string, 0, count)
	for _, i := range pf.rng.Perm(len(options))[:count] {
		picked = append(picked, options[i])
	}
	return picked
}

func (pf *POIFactory) pickAmbiance() []string {
	all := []string{"romantic", "intimate", "lively", "buzzy", "elegant", "cozy", "classic", "modern", "casual", "refined", "moody", "bright"}
	count := pf.rng.Intn(3) + 1 // 1 to 3 descriptors
	ambiance := make([]string, 0, count)
	for _, i := range pf.rng.Perm(len(all))[:count] {
		ambiance = append(ambiance, all[i])
	}
	return ambiance
}

// generateFitness leaves some lists empty on purpose: venues that never
// declared a preference should keep matching every context.
func (pf *POIFactory) generateFitness(category string) models.Fitness {
	occasionsByCategory := map[string][]models.Occasion{
		models.CategoryFineDining:    {models.OccasionDateNight, models.OccasionBusinessDinner, models.OccasionCelebration},
		models.CategoryCasualDining:  {models.OccasionCasualMeal, models.OccasionFamilyDinner, models.OccasionQuickBite, models.OccasionDateNight, models.OccasionBusinessLunch},
		models.CategoryBarsCocktails: {models.OccasionAfterWork, models.OccasionDateNight, models.OccasionCelebration},
	}
	timesByCategory := map[string][]models.TimeOfDay{
		models.CategoryFineDining:    {models.TimeEvening, models.TimeNight},
		models.CategoryCasualDining:  {models.TimeMorning, models.TimeLunch, models.TimeAfternoon, models.TimeEvening},
		models.CategoryBarsCocktails: {models.TimeEvening, models.TimeNight},
	}

	fitness := models.Fitness{}

	switch r := pf.rng.Float64(); {
	case r < 0.10:
		fitness.Occasions = []models.Occasion{models.OccasionAny}
	case r < 0.20:
		// undeclared
	default:
		options := occasionsByCategory[category]
		count := pf.rng.Intn(len(options)) + 1
		for _, i := range pf.rng.Perm(len(options))[:count] {
			fitness.Occasions = append(fitness.Occasions, options[i])
		}
	}

	if pf.rng.Float64() < 0.75 {
		options := timesByCategory[category]
		count := pf.rng.Intn(len(options)) + 1
		for _, i := range pf.rng.Perm(len(options))[:count] {
			fitness.TimeOfDay = append(fitness.TimeOfDay, options[i])
		}
	}

	switch r := pf.rng.Float64(); {
	case r < 0.40:
		fitness.Weather = []models.WeatherCondition{models.WeatherAny}
	case r < 0.55:
		fitness.Weather = []models.WeatherCondition{models.WeatherRain, models.WeatherCold, models.WeatherSnow}
	case r < 0.65:
		fitness.Weather = []models.WeatherCondition{models.WeatherSunny}
	default:
		// undeclared
	}

	return fitness
}

func (pf *POIFactory) pickMaxPartySize(category string) int {
	if pf.rng.Float64() < 0.25 {
		return 0 // undeclared
	}
	switch category {
	case models.CategoryFineDining:
		return pf.rng.Intn(7) + 2 // 2 to 8
	case models.CategoryBarsCocktails:
		return pf.rng.Intn(9) + 2 // 2 to 10
	default:
		return pf.rng.Intn(9) + 4 // 4 to 12
	}
}

func (pf *POIFactory) generateMarkers() models.PrestigeMarkers {
	markers := models.PrestigeMarkers{}

	markers.BestOfLists = pf.pickBestOfLists()
	if pf.rng.Float64() < 0.15 {
		markers.BibGourmand = true
	}
	if pf.rng.Float64() < 0.10 {
		markers.NYTStars = 3
	}
	if pf.rng.Float64() < 0.03 {
		markers.MichelinStars = 1
	}

	markers.Score = markers.Compute()
	if markers.Score < models.MinCurationScore {
		// curation floor: anything admitted scores at least this much
		markers.Score = models.MinCurationScore
	}
	return markers
}

func (pf *POIFactory) pickBestOfLists() []string {
	all := []string{
		"Eater 38",
		"NYT Top 100",
		"Infatuation Greatest Hits",
		"Michelin Guide Selection",
		"Time Out 50 Best",
		"Resy Hit List",
		"Grub Street Favorites",
		"Wine Enthusiast Top Bars",
	}
	count := pf.rng.Intn(5) // 0 to 4 lists
	if count == 0 {
		return nil
	}
	lists := make([]string, 0, count)
	for _, i := range pf.rng.Perm(len(all))[:count] {
		lists = append(lists, all[i])
	}
	return lists
}

func (pf *POIFactory) generateHours(category string) map[string]string {
	switch category {
	case models.CategoryFineDining:
		hours := weekHours("17:00-22:00")
		hours["monday"] = "Closed"
		if pf.rng.Float64() < 0.5 {
			hours["sunday"] = "Closed"
		}
		return hours
	case models.CategoryBarsCocktails:
		hours := weekHours("17:00-02:00")
		if pf.rng.Float64() < 0.3 {
			hours["monday"] = "Closed"
		}
		return hours
	default:
		return weekHours("11:00-23:00")
	}
}

func weekHours(span string) map[string]string {
	days := []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
	hours := make(map[string]string, len(days))
	for _, day := range days {
		hours[day] = span
	}
	return hours
}
