package concierge

import (
	"testing"

	"github.com/nycpoi/poiconcierge/internal/models"
)

func TestNeighborhoodGuides(t *testing.T) {
	guides := NeighborhoodGuides()
	if len(guides) != 4 {
		t.Fatalf("len(NeighborhoodGuides()) = %d, want 4", len(guides))
	}

	seen := make(map[string]bool)
	for _, g := range guides {
		if g.Slug == "" || g.Name == "" || g.Vibe == "" {
			t.Errorf("guide %q missing required fields", g.Slug)
		}
		if seen[g.Slug] {
			t.Errorf("duplicate guide slug %q", g.Slug)
		}
		seen[g.Slug] = true
		if len(g.SignaturePOIs) == 0 {
			t.Errorf("guide %q has no signature venues", g.Slug)
		}
	}
}

func TestCategoryGuides(t *testing.T) {
	guides := CategoryGuides()
	if len(guides) != 3 {
		t.Fatalf("len(CategoryGuides()) = %d, want 3", len(guides))
	}

	want := map[string]bool{
		models.CategoryFineDining:    false,
		models.CategoryCasualDining:  false,
		models.CategoryBarsCocktails: false,
	}
	for _, g := range guides {
		if _, ok := want[g.Category]; !ok {
			t.Errorf("unexpected category %q", g.Category)
			continue
		}
		want[g.Category] = true
		for _, o := range g.IdealOccasions {
			if !o.Valid() {
				t.Errorf("category %q declares invalid occasion %q", g.Category, o)
			}
		}
	}
	for category, covered := range want {
		if !covered {
			t.Errorf("category %q missing from guides", category)
		}
	}
}
