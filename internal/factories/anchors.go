package factories

import (
	"time"

	"github.com/nycpoi/poiconcierge/internal/models"
)

// AnchorPOIs returns the hand-curated venues every seeded dataset starts
// from: the Michelin heavyweights, the neighborhood icons, and the bars the
// guides keep sending people to. Scores follow the curation ledger rather
// than a fresh marker computation, so they stay stable across reseeds.
func (pf *POIFactory) AnchorPOIs() []models.PointOfInterest {
	now := time.Now()
	anchors := []models.PointOfInterest{
		{
			Name:          "Le Bernardin",
			Category:      models.CategoryFineDining,
			Subcategories: []string{"french", "seafood"},
			Location:      models.Location{Lat: 40.7616, Lon: -73.9818},
			Address:       models.Address{Street: "155 W 51st St", Neighborhood: "Midtown", Borough: "Manhattan", Zip: "10019"},
			Contact:       models.Contact{Phone: "+1 212 555 0151", Website: "https://www.le-bernardin.com"},
			PriceTier:     models.PriceLuxury,
			SignatureDishes: []string{
				"Lacquered wild salmon",
				"Langoustine with truffle",
			},
			Ambiance: []string{"elegant", "refined", "hushed"},
			Prestige: models.PrestigeMarkers{
				Score:            150,
				MichelinStars:    3,
				JamesBeardAwards: []string{"Outstanding Restaurant"},
				NYTStars:         4,
				BestOfLists:      []string{"World's 50 Best"},
			},
			BestFor: models.Fitness{
				Occasions: []models.Occasion{models.OccasionBusinessDinner, models.OccasionCelebration, models.OccasionDateNight},
				TimeOfDay: []models.TimeOfDay{models.TimeEvening},
				Weather:   []models.WeatherCondition{models.WeatherAny},
			},
			MaxPartySize: 6,
			Hours:        closedOn(weekHours("17:00-22:30"), "sunday"),
		},
		{
			Name:          "Per Se",
			Category:      models.CategoryFineDining,
			Subcategories: []string{"french", "tasting-menu"},
			Location:      models.Location{Lat: 40.7685, Lon: -73.9830},
			Address:       models.Address{Street: "10 Columbus Cir", Neighborhood: "Columbus Circle", Borough: "Manhattan", Zip: "10019"},
			Contact:       models.Contact{Phone: "+1 212 555 0164", Website: "https://www.thomaskeller.com/perseny"},
			PriceTier:     models.PriceLuxury,
			SignatureDishes: []string{
				"Oysters and pearls",
				"Nine-course tasting menu",
			},
			Ambiance: []string{"elegant", "formal", "park views"},
			Prestige: models.PrestigeMarkers{
				Score:            150,
				MichelinStars:    3,
				JamesBeardAwards: []string{"Outstanding Service"},
				NYTStars:         4,
			},
			BestFor: models.Fitness{
				Occasions: []models.Occasion{models.OccasionCelebration, models.OccasionBusinessDinner},
				TimeOfDay: []models.TimeOfDay{models.TimeEvening},
				Weather:   []models.WeatherCondition{models.WeatherAny},
			},
			MaxPartySize: 8,
			Hours:        weekHours("17:30-22:00"),
		},
		{
			Name:          "Eleven Madison Park",
			Category:      models.CategoryFineDining,
			Subcategories: []string{"new-american", "tasting-menu"},
			Location:      models.Location{Lat: 40.7417, Lon: -73.9872},
			Address:       models.Address{Street: "11 Madison Ave", Neighborhood: "Flatiron", Borough: "Manhattan", Zip: "10010"},
			Contact:       models.Contact{Phone: "+1 212 555 0111", Website: "https://www.elevenmadisonpark.com"},
			PriceTier:     models.PriceLuxury,
			SignatureDishes: []string{
				"Plant-based tasting menu",
				"Tonburi and sunflower",
			},
			Ambiance: []string{"grand", "modern", "art deco"},
			Prestige: models.PrestigeMarkers{
				Score:            150,
				MichelinStars:    3,
				JamesBeardAwards: []string{"Outstanding Restaurant"},
				BestOfLists:      []string{"World's 50 Best"},
			},
			BestFor: models.Fitness{
				Occasions: []models.Occasion{models.OccasionCelebration, models.OccasionBusinessDinner, models.OccasionDateNight},
				TimeOfDay: []models.TimeOfDay{models.TimeEvening},
				Weather:   []models.WeatherCondition{models.WeatherAny},
			},
			MaxPartySize: 6,
			Hours:        closedOn(weekHours("17:30-22:00"), "monday", "tuesday"),
		},
		{
			Name:          "The Modern",
			Category:      models.CategoryFineDining,
			Subcategories: []string{"new-american", "french"},
			Location:      models.Location{Lat: 40.7612, Lon: -73.9776},
			Address:       models.Address{Street: "9 W 53rd St", Neighborhood: "Midtown", Borough: "Manhattan", Zip: "10019"},
			Contact:       models.Contact{Phone: "+1 212 555 0133", Website: "https://www.themodernnyc.com"},
			PriceTier:     models.PriceLuxury,
			SignatureDishes: []string{
				"Roasted lobster with saffron",
				"Chocolate dacquoise",
			},
			Ambiance: []string{"modern", "sculpture garden views", "buzzy"},
			Prestige: models.PrestigeMarkers{
				Score:         100,
				MichelinStars: 2,
				NYTStars:      3,
			},
			BestFor: models.Fitness{
				Occasions: []models.Occasion{models.OccasionBusinessDinner, models.OccasionBusinessLunch, models.OccasionCelebration},
				TimeOfDay: []models.TimeOfDay{models.TimeLunch, models.TimeEvening},
				Weather:   []models.WeatherCondition{models.WeatherAny},
			},
			MaxPartySize: 8,
			Hours:        closedOn(weekHours("11:30-22:00"), "sunday"),
		},
		{
			Name:          "Aquavit",
			Category:      models.CategoryFineDining,
			Subcategories: []string{"scandinavian", "tasting-menu"},
			Location:      models.Location{Lat: 40.7617, Lon: -73.9727},
			Address:       models.Address{Street: "65 E 55th St", Neighborhood: "Midtown", Borough: "Manhattan", Zip: "10022"},
			Contact:       models.Contact{Phone: "+1 212 555 0187", Website: "https://www.aquavit.org"},
			PriceTier:     models.PriceLuxury,
			SignatureDishes: []string{
				"Herring plate",
				"Arctic bird's nest",
			},
			Ambiance: []string{"minimalist", "serene", "refined"},
			Prestige: models.PrestigeMarkers{
				Score:         100,
				MichelinStars: 2,
			},
			BestFor: models.Fitness{
				Occasions: []models.Occasion{models.OccasionBusinessDinner, models.OccasionDateNight},
				TimeOfDay: []models.TimeOfDay{models.TimeLunch, models.TimeEvening},
				Weather:   []models.WeatherCondition{models.WeatherAny},
			},
			MaxPartySize: 6,
			Hours:        closedOn(weekHours("17:00-22:00"), "sunday"),
		},
		{
			Name:          "Atomix",
			Category:      models.CategoryFineDining,
			Subcategories: []string{"korean", "tasting-menu"},
			Location:      models.Location{Lat: 40.7447, Lon: -73.9827},
			Address:       models.Address{Street: "104 E 30th St", Neighborhood: "NoMad", Borough: "Manhattan", Zip: "10016"},
			Contact:       models.Contact{Phone: "+1 212 555 0172", Website: "https://www.atomixnyc.com"},
			PriceTier:     models.PriceLuxury,
			SignatureDishes: []string{
				"Ten-course Korean tasting",
				"Jang trilogy course",
			},
			Ambiance: []string{"intimate", "modern", "chef's counter"},
			Prestige: models.PrestigeMarkers{
				Score:         110,
				MichelinStars: 2,
				BestOfLists:   []string{"World's 50 Best", "NYT Top 100"},
			},
			BestFor: models.Fitness{
				Occasions: []models.Occasion{models.OccasionCelebration, models.OccasionDateNight},
				TimeOfDay: []models.TimeOfDay{models.TimeEvening, models.TimeNight},
				Weather:   []models.WeatherCondition{models.WeatherAny},
			},
			MaxPartySize: 4,
			Hours:        closedOn(weekHours("17:30-23:00"), "sunday", "monday"),
		},
		{
			Name:          "Gramercy Tavern",
			Category:      models.CategoryFineDining,
			Subcategories: []string{"new-american"},
			Location:      models.Location{Lat: 40.7386, Lon: -73.9884},
			Address:       models.Address{Street: "42 E 20th St", Neighborhood: "Flatiron", Borough: "Manhattan", Zip: "10003"},
			Contact:       models.Contact{Phone: "+1 212 555 0120", Website: "https://www.gramercytavern.com"},
			PriceTier:     models.PriceUpscale,
			SignatureDishes: []string{
				"Roasted chicken with truffle jus",
				"Seasonal vegetable tasting",
			},
			Ambiance: []string{"warm", "classic", "tavern room"},
			Prestige: models.PrestigeMarkers{
				Score:            80,
				MichelinStars:    1,
				JamesBeardAwards: []string{"Outstanding Restaurant"},
				NYTStars:         3,
			},
			BestFor: models.Fitness{
				Occasions: []models.Occasion{models.OccasionBusinessDinner, models.OccasionDateNight, models.OccasionFamilyDinner},
				TimeOfDay: []models.TimeOfDay{models.TimeLunch, models.TimeEvening},
				Weather:   []models.WeatherCondition{models.WeatherAny},
			},
			MaxPartySize: 8,
			Hours:        weekHours("11:30-22:00"),
		},
		{
			Name:          "Cote",
			Category:      models.CategoryFineDining,
			Subcategories: []string{"korean", "steakhouse"},
			Location:      models.Location{Lat: 40.7412, Lon: -73.9906},
			Address:       models.Address{Street: "16 W 22nd St", Neighborhood: "Flatiron", Borough: "Manhattan", Zip: "10010"},
			Contact:       models.Contact{Phone: "+1 212 555 0140", Website: "https://www.cotenyc.com"},
			PriceTier:     models.PriceLuxury,
			SignatureDishes: []string{
				"Butcher's feast",
				"Dry-aged ribeye",
			},
			Ambiance: []string{"buzzy", "sleek", "lively"},
			Prestige: models.PrestigeMarkers{
				Score:         75,
				MichelinStars: 1,
				BestOfLists:   []string{"Eater 38"},
			},
			BestFor: models.Fitness{
				Occasions: []models.Occasion{models.OccasionCelebration, models.OccasionDateNight, models.OccasionAfterWork},
				TimeOfDay: []models.TimeOfDay{models.TimeEvening, models.TimeNight},
				Weather:   []models.WeatherCondition{models.WeatherAny},
			},
			MaxPartySize: 10,
			Hours:        weekHours("17:00-23:30"),
		},
		{
			Name:          "Koloman",
			Category:      models.CategoryFineDining,
			Subcategories: []string{"french", "austrian"},
			Location:      models.Location{Lat: 40.7452, Lon: -73.9884},
			Address:       models.Address{Street: "16 W 29th St", Neighborhood: "NoMad", Borough: "Manhattan", Zip: "10001"},
			Contact:       models.Contact{Phone: "+1 212 555 0195", Website: "https://www.kolomanrestaurant.com"},
			PriceTier:     models.PriceUpscale,
			SignatureDishes: []string{
				"Tarte flambée",
				"Dry-aged duck with rutabaga",
			},
			Ambiance: []string{"design-forward", "café front room", "refined"},
			Prestige: models.PrestigeMarkers{
				Score:         60,
				MichelinStars: 1,
				BestOfLists:   []string{"NYT Top 100"},
			},
			BestFor: models.Fitness{
				Occasions: []models.Occasion{models.OccasionBusinessLunch, models.OccasionBusinessDinner, models.OccasionDateNight},
				TimeOfDay: []models.TimeOfDay{models.TimeLunch, models.TimeAfternoon, models.TimeEvening},
				Weather:   []models.WeatherCondition{models.WeatherAny},
			},
			MaxPartySize: 6,
			Hours:        closedOn(weekHours("11:30-22:00"), "monday"),
		},
		{
			Name:          "Le Coucou",
			Category:      models.CategoryFineDining,
			Subcategories: []string{"french"},
			Location:      models.Location{Lat: 40.7191, Lon: -73.9998},
			Address:       models.Address{Street: "138 Lafayette St", Neighborhood: "SoHo", Borough: "Manhattan", Zip: "10013"},
			Contact:       models.Contact{Phone: "+1 212 555 0168", Website: "https://www.lecoucou.com"},
			PriceTier:     models.PriceLuxury,
			SignatureDishes: []string{
				"Tout le lapin",
				"Quenelle de brochet",
			},
			Ambiance: []string{"romantic", "candlelit", "elegant"},
			Prestige: models.PrestigeMarkers{
				Score:            70,
				MichelinStars:    1,
				JamesBeardAwards: []string{"Best New Restaurant"},
			},
			BestFor: models.Fitness{
				Occasions: []models.Occasion{models.OccasionDateNight, models.OccasionCelebration},
				TimeOfDay: []models.TimeOfDay{models.TimeEvening, models.TimeNight},
				Weather:   []models.WeatherCondition{models.WeatherAny},
			},
			MaxPartySize: 6,
			Hours:        weekHours("17:00-22:30"),
		},
		{
			Name:          "Don Angie",
			Category:      models.CategoryFineDining,
			Subcategories: []string{"italian", "new-american"},
			Location:      models.Location{Lat: 40.7377, Lon: -74.0023},
			Address:       models.Address{Street: "103 Greenwich Ave", Neighborhood: "West Village", Borough: "Manhattan", Zip: "10014"},
			Contact:       models.Contact{Phone: "+1 212 555 0159", Website: "https://www.donangie.com"},
			PriceTier:     models.PriceUpscale,
			SignatureDishes: []string{
				"Lasagna for two",
				"Chrysanthemum salad",
			},
			Ambiance: []string{"intimate", "moody", "date spot"},
			Prestige: models.PrestigeMarkers{
				Score:         70,
				MichelinStars: 1,
				BestOfLists:   []string{"Eater 38", "Infatuation Greatest Hits"},
			},
			BestFor: models.Fitness{
				Occasions: []models.Occasion{models.OccasionDateNight, models.OccasionCelebration},
				TimeOfDay: []models.TimeOfDay{models.TimeEvening, models.TimeNight},
				Weather:   []models.WeatherCondition{models.WeatherAny},
			},
			MaxPartySize: 4,
			Hours:        weekHours("17:30-23:00"),
		},
		{
			Name:          "Via Carota",
			Category:      models.CategoryCasualDining,
			Subcategories: []string{"italian"},
			Location:      models.Location{Lat: 40.7331, Lon: -74.0036},
			Address:       models.Address{Street: "51 Grove St", Neighborhood: "West Village", Borough: "Manhattan", Zip: "10014"},
			Contact:       models.Contact{Website: "https://www.viacarota.com"},
			PriceTier:     models.PriceUpscale,
			SignatureDishes: []string{
				"Svizzerina",
				"Cacio e pepe",
			},
			Ambiance: []string{"rustic", "charming", "no reservations"},
			Prestige: models.PrestigeMarkers{
				Score:            60,
				JamesBeardAwards: []string{"Best Chef New York"},
				BestOfLists:      []string{"Eater 38", "NYT Top 100"},
			},
			BestFor: models.Fitness{
				Occasions: []models.Occasion{models.OccasionDateNight, models.OccasionCasualMeal},
				TimeOfDay: []models.TimeOfDay{models.TimeLunch, models.TimeAfternoon, models.TimeEvening},
				Weather:   []models.WeatherCondition{models.WeatherAny},
			},
			MaxPartySize: 4,
			Hours:        weekHours("11:00-23:00"),
		},
		{
			Name:          "L'Artusi",
			Category:      models.CategoryCasualDining,
			Subcategories: []string{"italian"},
			Location:      models.Location{Lat: 40.7341, Lon: -74.0047},
			Address:       models.Address{Street: "228 W 10th St", Neighborhood: "West Village", Borough: "Manhattan", Zip: "10014"},
			Contact:       models.Contact{Phone: "+1 212 555 0148", Website: "https://www.lartusi.com"},
			PriceTier:     models.PriceUpscale,
			SignatureDishes: []string{
				"Spaghetti rigati carbonara",
				"Roasted mushrooms",
			},
			Ambiance: []string{"lively", "warm", "wine-focused"},
			Prestige: models.PrestigeMarkers{
				Score:       45,
				BestOfLists: []string{"Infatuation Greatest Hits", "Resy Hit List"},
			},
			BestFor: models.Fitness{
				Occasions: []models.Occasion{models.OccasionDateNight, models.OccasionCasualMeal, models.OccasionCelebration},
				TimeOfDay: []models.TimeOfDay{models.TimeEvening, models.TimeNight},
				Weather:   []models.WeatherCondition{models.WeatherAny},
			},
			MaxPartySize: 6,
			Hours:        weekHours("17:00-23:00"),
		},
		{
			Name:          "Balthazar",
			Category:      models.CategoryCasualDining,
			Subcategories: []string{"brasserie", "french"},
			Location:      models.Location{Lat: 40.7227, Lon: -73.9981},
			Address:       models.Address{Street: "80 Spring St", Neighborhood: "SoHo", Borough: "Manhattan", Zip: "10012"},
			Contact:       models.Contact{Phone: "+1 212 555 0180", Website: "https://www.balthazarny.com"},
			PriceTier:     models.PriceUpscale,
			SignatureDishes: []string{
				"Le grand plateau",
				"Steak frites",
			},
			Ambiance: []string{"bustling", "classic brasserie", "people-watching"},
			Prestige: models.PrestigeMarkers{
				Score:       40,
				BestOfLists: []string{"Eater 38"},
			},
			BestFor: models.Fitness{
				Occasions: []models.Occasion{models.OccasionCasualMeal, models.OccasionFamilyDinner, models.OccasionBusinessLunch},
				TimeOfDay: []models.TimeOfDay{models.TimeMorning, models.TimeLunch, models.TimeAfternoon, models.TimeEvening},
				Weather:   []models.WeatherCondition{models.WeatherAny},
			},
			MaxPartySize: 8,
			Hours:        weekHours("08:00-23:00"),
		},
		{
			Name:          "Katz's Delicatessen",
			Category:      models.CategoryCasualDining,
			Subcategories: []string{"deli"},
			Location:      models.Location{Lat: 40.7222, Lon: -73.9874},
			Address:       models.Address{Street: "205 E Houston St", Neighborhood: "Lower East Side", Borough: "Manhattan", Zip: "10002"},
			Contact:       models.Contact{Phone: "+1 212 555 0103", Website: "https://www.katzsdelicatessen.com"},
			PriceTier:     models.PriceModerate,
			SignatureDishes: []string{
				"Pastrami on rye",
				"Matzo ball soup",
			},
			Ambiance: []string{"iconic", "no-frills", "loud"},
			Prestige: models.PrestigeMarkers{
				Score:       45,
				BestOfLists: []string{"Eater 38", "Time Out 50 Best", "NYT Top 100"},
			},
			BestFor: models.Fitness{
				Occasions: []models.Occasion{models.OccasionCasualMeal, models.OccasionQuickBite, models.OccasionFamilyDinner},
				TimeOfDay: []models.TimeOfDay{models.TimeAny},
				Weather:   []models.WeatherCondition{models.WeatherAny},
			},
			MaxPartySize: 12,
			Hours:        weekHours("08:00-23:00"),
		},
		{
			Name:          "Keens Steakhouse",
			Category:      models.CategoryCasualDining,
			Subcategories: []string{"steakhouse"},
			Location:      models.Location{Lat: 40.7506, Lon: -73.9861},
			Address:       models.Address{Street: "72 W 36th St", Neighborhood: "Midtown", Borough: "Manhattan", Zip: "10018"},
			Contact:       models.Contact{Phone: "+1 212 555 0136", Website: "https://www.keens.com"},
			PriceTier:     models.PriceLuxury,
			SignatureDishes: []string{
				"Legendary mutton chop",
				"Prime porterhouse for two",
			},
			Ambiance: []string{"historic", "clubby", "pipe-lined ceilings"},
			Prestige: models.PrestigeMarkers{
				Score:       55,
				BestOfLists: []string{"Eater 38", "Time Out 50 Best"},
			},
			BestFor: models.Fitness{
				Occasions: []models.Occasion{models.OccasionBusinessDinner, models.OccasionCelebration, models.OccasionFamilyDinner},
				TimeOfDay: []models.TimeOfDay{models.TimeLunch, models.TimeEvening, models.TimeNight},
				Weather:   []models.WeatherCondition{models.WeatherRain, models.WeatherCold, models.WeatherSnow, models.WeatherSunny},
			},
			MaxPartySize: 10,
			Hours:        weekHours("11:45-22:30"),
		},
		{
			Name:          "The River Café",
			Category:      models.CategoryFineDining,
			Subcategories: []string{"new-american"},
			Location:      models.Location{Lat: 40.7038, Lon: -73.9934},
			Address:       models.Address{Street: "1 Water St", Neighborhood: "Brooklyn Heights", Borough: "Brooklyn", Zip: "11201"},
			Contact:       models.Contact{Phone: "+1 718 555 0129", Website: "https://www.rivercafe.com"},
			PriceTier:     models.PriceLuxury,
			SignatureDishes: []string{
				"Crispy duck breast",
				"Chocolate Brooklyn Bridge",
			},
			Ambiance: []string{"romantic", "skyline views", "live piano"},
			Prestige: models.PrestigeMarkers{
				Score:         85,
				MichelinStars: 1,
				BestOfLists:   []string{"Time Out 50 Best"},
			},
			BestFor: models.Fitness{
				Occasions: []models.Occasion{models.OccasionDateNight, models.OccasionCelebration},
				TimeOfDay: []models.TimeOfDay{models.TimeEvening, models.TimeNight},
				Weather:   []models.WeatherCondition{models.WeatherAny},
			},
			MaxPartySize: 6,
			Hours:        weekHours("17:00-22:30"),
		},
		{
			Name:          "Vinegar Hill House",
			Category:      models.CategoryCasualDining,
			Subcategories: []string{"new-american"},
			Location:      models.Location{Lat: 40.7037, Lon: -73.9820},
			Address:       models.Address{Street: "72 Hudson Ave", Neighborhood: "Vinegar Hill", Borough: "Brooklyn", Zip: "11201"},
			Contact:       models.Contact{Phone: "+1 718 555 0144", Website: "https://www.vinegarhillhouse.com"},
			PriceTier:     models.PriceModerate,
			SignatureDishes: []string{
				"Cast iron chicken",
				"Wood-fired sourdough pancake",
			},
			Ambiance: []string{"cozy", "candlelit", "hidden"},
			Prestige: models.PrestigeMarkers{
				Score:       35,
				BestOfLists: []string{"Infatuation Greatest Hits"},
			},
			BestFor: models.Fitness{
				Occasions: []models.Occasion{models.OccasionDateNight, models.OccasionCasualMeal, models.OccasionFamilyDinner},
				TimeOfDay: []models.TimeOfDay{models.TimeMorning, models.TimeLunch, models.TimeEvening},
				Weather:   []models.WeatherCondition{models.WeatherRain, models.WeatherCold, models.WeatherSnow},
			},
			MaxPartySize: 6,
			Hours:        weekHours("10:00-22:00"),
		},
		{
			Name:          "Celestine",
			Category:      models.CategoryCasualDining,
			Subcategories: []string{"mediterranean"},
			Location:      models.Location{Lat: 40.7035, Lon: -73.9832},
			Address:       models.Address{Street: "1 John St", Neighborhood: "DUMBO", Borough: "Brooklyn", Zip: "11201"},
			Contact:       models.Contact{Phone: "+1 718 555 0151", Website: "https://www.celestinebk.com"},
			PriceTier:     models.PriceUpscale,
			SignatureDishes: []string{
				"Whole grilled branzino",
				"Lamb shoulder tagine",
			},
			Ambiance: []string{"waterfront", "bridge views", "airy"},
			Prestige: models.PrestigeMarkers{
				Score:       35,
				BestOfLists: []string{"Time Out 50 Best"},
			},
			BestFor: models.Fitness{
				Occasions: []models.Occasion{models.OccasionDateNight, models.OccasionFamilyDinner, models.OccasionCasualMeal},
				TimeOfDay: []models.TimeOfDay{models.TimeLunch, models.TimeAfternoon, models.TimeEvening},
				Weather:   []models.WeatherCondition{models.WeatherSunny, models.WeatherAny},
			},
			MaxPartySize: 8,
			Hours:        weekHours("11:00-22:00"),
		},
		{
			Name:          "The NoMad Bar",
			Category:      models.CategoryBarsCocktails,
			Subcategories: []string{"cocktail-bar"},
			Location:      models.Location{Lat: 40.7449, Lon: -73.9883},
			Address:       models.Address{Street: "10 W 28th St", Neighborhood: "NoMad", Borough: "Manhattan", Zip: "10001"},
			Contact:       models.Contact{Website: "https://www.thenomadbar.com"},
			PriceTier:     models.PriceUpscale,
			SignatureDishes: []string{
				"Start Me Up",
				"Dry-aged burger",
			},
			Ambiance: []string{"clubby", "two-story", "buzzy"},
			Prestige: models.PrestigeMarkers{
				Score:       45,
				BestOfLists: []string{"World's 50 Best Bars"},
			},
			BestFor: models.Fitness{
				Occasions: []models.Occasion{models.OccasionAfterWork, models.OccasionDateNight, models.OccasionCelebration},
				TimeOfDay: []models.TimeOfDay{models.TimeEvening, models.TimeNight},
				Weather:   []models.WeatherCondition{models.WeatherAny},
			},
			MaxPartySize: 8,
			Hours:        weekHours("17:00-02:00"),
		},
		{
			Name:          "Dante",
			Category:      models.CategoryBarsCocktails,
			Subcategories: []string{"cocktail-bar"},
			Location:      models.Location{Lat: 40.7298, Lon: -74.0022},
			Address:       models.Address{Street: "79-81 MacDougal St", Neighborhood: "Greenwich Village", Borough: "Manhattan", Zip: "10012"},
			Contact:       models.Contact{Phone: "+1 212 555 0115", Website: "https://www.dante-nyc.com"},
			PriceTier:     models.PriceModerate,
			SignatureDishes: []string{
				"Garibaldi",
				"Negroni sessions flight",
			},
			Ambiance: []string{"european café", "bright", "aperitivo hour"},
			Prestige: models.PrestigeMarkers{
				Score:       70,
				BestOfLists: []string{"World's 50 Best Bars", "Time Out 50 Best"},
			},
			BestFor: models.Fitness{
				Occasions: []models.Occasion{models.OccasionAfterWork, models.OccasionDateNight, models.OccasionCasualMeal},
				TimeOfDay: []models.TimeOfDay{models.TimeAfternoon, models.TimeEvening, models.TimeNight},
				Weather:   []models.WeatherCondition{models.WeatherAny},
			},
			MaxPartySize: 6,
			Hours:        weekHours("10:00-02:00"),
		},
		{
			Name:          "Attaboy",
			Category:      models.CategoryBarsCocktails,
			Subcategories: []string{"speakeasy", "cocktail-bar"},
			Location:      models.Location{Lat: 40.7190, Lon: -73.9908},
			Address:       models.Address{Street: "134 Eldridge St", Neighborhood: "Lower East Side", Borough: "Manhattan", Zip: "10002"},
			Contact:       models.Contact{},
			PriceTier:     models.PriceUpscale,
			SignatureDishes: []string{
				"Bartender's choice",
				"Penicillin",
			},
			Ambiance: []string{"speakeasy", "intimate", "no menu"},
			Prestige: models.PrestigeMarkers{
				Score:       60,
				BestOfLists: []string{"World's 50 Best Bars"},
			},
			BestFor: models.Fitness{
				Occasions: []models.Occasion{models.OccasionDateNight, models.OccasionAfterWork},
				TimeOfDay: []models.TimeOfDay{models.TimeNight},
				Weather:   []models.WeatherCondition{models.WeatherAny},
			},
			MaxPartySize: 4,
			Hours:        weekHours("19:00-03:00"),
		},
		{
			Name:          "Employees Only",
			Category:      models.CategoryBarsCocktails,
			Subcategories: []string{"speakeasy", "cocktail-bar"},
			Location:      models.Location{Lat: 40.7338, Lon: -74.0064},
			Address:       models.Address{Street: "510 Hudson St", Neighborhood: "West Village", Borough: "Manhattan", Zip: "10014"},
			Contact:       models.Contact{Phone: "+1 212 555 0192", Website: "https://www.employeesonlynyc.com"},
			PriceTier:     models.PriceUpscale,
			SignatureDishes: []string{
				"Amelia",
				"Late-night bone marrow",
			},
			Ambiance: []string{"art deco", "late-night", "psychic in the window"},
			Prestige: models.PrestigeMarkers{
				Score:       50,
				BestOfLists: []string{"World's 50 Best Bars"},
			},
			BestFor: models.Fitness{
				Occasions: []models.Occasion{models.OccasionAfterWork, models.OccasionDateNight, models.OccasionCelebration},
				TimeOfDay: []models.TimeOfDay{models.TimeEvening, models.TimeNight},
				Weather:   []models.WeatherCondition{models.WeatherAny},
			},
			MaxPartySize: 6,
			Hours:        weekHours("17:00-04:00"),
		},
	}

	for i := range anchors {
		anchors[i].Slug = pf.createUniqueSlug(anchors[i].Name)
		anchors[i].ID = "nyc-" + anchors[i].Slug
		anchors[i].Address.City = "New York"
		anchors[i].Address.State = "NY"
		anchors[i].LastValidated = now
		anchors[i].CreatedAt = now
		anchors[i].UpdatedAt = now
	}
	return anchors
}

func closedOn(hours map[string]string, days ...string) map[string]string {
	for _, day := range days {
		hours[day] = "Closed"
	}
	return hours
}
