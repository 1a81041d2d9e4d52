package models

// Occasion is the closed set of situational occasions curation data declares.
type Occasion string

const (
	OccasionDateNight      Occasion = "date-night"
	OccasionBusinessDinner Occasion = "business-dinner"
	OccasionBusinessLunch  Occasion = "business-lunch"
	OccasionCasualMeal     Occasion = "casual-meal"
	OccasionCelebration    Occasion = "celebration"
	OccasionFamilyDinner   Occasion = "family-dinner"
	OccasionQuickBite      Occasion = "quick-bite"
	OccasionAfterWork      Occasion = "after-work"
	OccasionAny            Occasion = "any"
)

func (o Occasion) Valid() bool {
	switch o {
	case OccasionDateNight, OccasionBusinessDinner, OccasionBusinessLunch,
		OccasionCasualMeal, OccasionCelebration, OccasionFamilyDinner,
		OccasionQuickBite, OccasionAfterWork, OccasionAny:
		return true
	}
	return false
}

// WeatherCondition is the closed set of weather buckets the app resolves.
type WeatherCondition string

const (
	WeatherSunny WeatherCondition = "sunny"
	WeatherRain  WeatherCondition = "rain"
	WeatherCold  WeatherCondition = "cold"
	WeatherSnow  WeatherCondition = "snow"
	WeatherAny   WeatherCondition = "any"
)

func (w WeatherCondition) Valid() bool {
	switch w {
	case WeatherSunny, WeatherRain, WeatherCold, WeatherSnow, WeatherAny:
		return true
	}
	return false
}

// PriceTier is the ordinal price bucket, "$" (cheapest) to "$$$$".
type PriceTier string

const (
	PriceBudget   PriceTier = "$"
	PriceModerate PriceTier = "$$"
	PriceUpscale  PriceTier = "$$$"
	PriceLuxury   PriceTier = "$$$$"
)

func (p PriceTier) Valid() bool {
	switch p {
	case PriceBudget, PriceModerate, PriceUpscale, PriceLuxury:
		return true
	}
	return false
}

// TimeOfDay buckets an hour of the day for fitness matching.
type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeLunch     TimeOfDay = "lunch"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
	TimeNight     TimeOfDay = "night"
	TimeAny       TimeOfDay = "any"
)

func (t TimeOfDay) Valid() bool {
	switch t {
	case TimeMorning, TimeLunch, TimeAfternoon, TimeEvening, TimeNight, TimeAny:
		return true
	}
	return false
}

// Primary categories are an open set; curation keeps adding to it. These are
// the ones the NYC dataset ships with.
const (
	CategoryFineDining    = "fine-dining"
	CategoryCasualDining  = "casual-dining"
	CategoryBarsCocktails = "bars-cocktails"
)

// Analytics event types published to the events sink.
const (
	EventTypeSearch         = "poi_search"
	EventTypeRecommendation = "poi_recommendation"
	EventTypeRefresh        = "poi_refresh"
)
