package models

import (
	"strings"
	"testing"
)

func validTestPOI() PointOfInterest {
	return PointOfInterest{
		ID:       "nyc-test-venue",
		Name:     "Test Venue",
		Slug:     "test-venue",
		Category: CategoryCasualDining,
		Location: Location{Lat: 40.7580, Lon: -73.9851},
		Prestige: PrestigeMarkers{Score: 45},
	}
}

func TestPointOfInterestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PointOfInterest)
		wantErr string
	}{
		{"valid", func(p *PointOfInterest) {}, ""},
		{"missing id", func(p *PointOfInterest) { p.ID = "" }, "missing id"},
		{"missing name", func(p *PointOfInterest) { p.Name = "" }, "missing name"},
		{"missing category", func(p *PointOfInterest) { p.Category = "" }, "missing category"},
		{"bad latitude", func(p *PointOfInterest) { p.Location.Lat = 120 }, "invalid coordinates"},
		{"negative prestige", func(p *PointOfInterest) { p.Prestige.Score = -5 }, "negative prestige"},
		{"bad price tier", func(p *PointOfInterest) { p.PriceTier = "€€" }, "invalid price tier"},
		{"empty price tier allowed", func(p *PointOfInterest) { p.PriceTier = "" }, ""},
		{"declared price tier allowed", func(p *PointOfInterest) { p.PriceTier = PriceLuxury }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			poi := validTestPOI()
			tt.mutate(&poi)
			err := poi.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestEnumValidity(t *testing.T) {
	t.Run("occasion", func(t *testing.T) {
		for _, o := range []Occasion{
			OccasionDateNight, OccasionBusinessDinner, OccasionBusinessLunch,
			OccasionCasualMeal, OccasionCelebration, OccasionFamilyDinner,
			OccasionQuickBite, OccasionAfterWork, OccasionAny,
		} {
			if !o.Valid() {
				t.Errorf("Occasion(%q).Valid() = false, want true", o)
			}
		}
		if Occasion("brunch-rave").Valid() {
			t.Error(`Occasion("brunch-rave").Valid() = true, want false`)
		}
	})

	t.Run("weather", func(t *testing.T) {
		for _, w := range []WeatherCondition{WeatherSunny, WeatherRain, WeatherCold, WeatherSnow, WeatherAny} {
			if !w.Valid() {
				t.Errorf("WeatherCondition(%q).Valid() = false, want true", w)
			}
		}
		if WeatherCondition("hailstorm").Valid() {
			t.Error(`WeatherCondition("hailstorm").Valid() = true, want false`)
		}
	})

	t.Run("price tier", func(t *testing.T) {
		for _, p := range []PriceTier{PriceBudget, PriceModerate, PriceUpscale, PriceLuxury} {
			if !p.Valid() {
				t.Errorf("PriceTier(%q).Valid() = false, want true", p)
			}
		}
		for _, p := range []PriceTier{"", "$$$$$", "cheap"} {
			if p.Valid() {
				t.Errorf("PriceTier(%q).Valid() = true, want false", p)
			}
		}
	})

	t.Run("time of day", func(t *testing.T) {
		for _, d := range []TimeOfDay{TimeMorning, TimeLunch, TimeAfternoon, TimeEvening, TimeNight, TimeAny} {
			if !d.Valid() {
				t.Errorf("TimeOfDay(%q).Valid() = false, want true", d)
			}
		}
		if TimeOfDay("brunch").Valid() {
			t.Error(`TimeOfDay("brunch").Valid() = true, want false`)
		}
	})
}
