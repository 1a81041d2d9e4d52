package models

import "testing"

func TestPrestigeCompute(t *testing.T) {
	tests := []struct {
		name    string
		markers PrestigeMarkers
		want    float64
	}{
		{"no markers", PrestigeMarkers{}, 0},
		{"three michelin stars", PrestigeMarkers{MichelinStars: 3}, 100},
		{"two michelin stars", PrestigeMarkers{MichelinStars: 2}, 75},
		{"one michelin star", PrestigeMarkers{MichelinStars: 1}, 50},
		{"bib gourmand", PrestigeMarkers{BibGourmand: true}, 30},
		{"james beard", PrestigeMarkers{JamesBeardAwards: []string{"Outstanding Chef 2019"}}, 40},
		{"nyt four stars", PrestigeMarkers{NYTStars: 4}, 40},
		{"nyt three stars", PrestigeMarkers{NYTStars: 3}, 30},
		{"nyt two stars ignored", PrestigeMarkers{NYTStars: 2}, 0},
		{"two best-of lists", PrestigeMarkers{BestOfLists: []string{"Eater 38", "NYT Top 100"}}, 10},
		{
			"star plus bib plus list",
			PrestigeMarkers{MichelinStars: 1, BibGourmand: true, BestOfLists: []string{"Eater 38"}},
			85,
		},
		{
			"stacked markers cap at the ceiling",
			PrestigeMarkers{
				MichelinStars:    3,
				JamesBeardAwards: []string{"Outstanding Restaurant"},
				NYTStars:         4,
				BestOfLists:      []string{"Eater 38", "NYT Top 100", "Resy Hit List"},
			},
			150,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.markers.Compute(); got != tt.want {
				t.Errorf("Compute() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestPrestigeComputeIgnoresStoredScore(t *testing.T) {
	// a precomputed score never feeds back into the derivation
	markers := PrestigeMarkers{Score: 150, MichelinStars: 1}
	if got := markers.Compute(); got != 50 {
		t.Errorf("Compute() = %f, want 50", got)
	}
}
