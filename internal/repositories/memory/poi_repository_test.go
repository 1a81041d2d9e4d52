package memory

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/nycpoi/poiconcierge/internal/models"
	"github.com/nycpoi/poiconcierge/internal/repositories"
)

var timesSquare = models.Location{Lat: 40.7580, Lon: -73.9851}

const metersPerDegreeLat = models.EarthRadiusMeters * math.Pi / 180

func poiAt(id string, meters, score float64) *models.PointOfInterest {
	return &models.PointOfInterest{
		ID:       id,
		Name:     id,
		Category: models.CategoryCasualDining,
		Location: models.Location{Lat: timesSquare.Lat + meters/metersPerDegreeLat, Lon: timesSquare.Lon},
		Prestige: models.PrestigeMarkers{Score: score},
	}
}

func seededRepo(t *testing.T, pois ...*models.PointOfInterest) *POIRepository {
	t.Helper()
	repo := NewPOIRepository()
	for _, poi := range pois {
		if err := repo.Upsert(context.Background(), poi); err != nil {
			t.Fatalf("Upsert(%s) = %v", poi.ID, err)
		}
	}
	return repo
}

func TestUpsertAndGetByID(t *testing.T) {
	repo := seededRepo(t, poiAt("a", 100, 50))

	got, err := repo.GetByID(context.Background(), "a")
	if err != nil {
		t.Fatalf("GetByID(a) = %v, want nil", err)
	}
	if got.Name != "a" {
		t.Errorf("Name = %q, want \"a\"", got.Name)
	}

	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("GetByID(missing) = %v, want ErrNotFound", err)
	}
}

func TestUpsertReplacesInPlace(t *testing.T) {
	repo := seededRepo(t, poiAt("a", 100, 50))

	updated := poiAt("a", 100, 50)
	updated.Name = "renamed"
	if err := repo.Upsert(context.Background(), updated); err != nil {
		t.Fatalf("Upsert() = %v, want nil", err)
	}

	count, err := repo.Count(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("Count() = %d, want 1", count)
	}

	got, err := repo.GetByID(context.Background(), "a")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "renamed" {
		t.Errorf("Name = %q, want \"renamed\"", got.Name)
	}
}

func TestUpsertRejectsInvalid(t *testing.T) {
	repo := NewPOIRepository()
	bad := poiAt("bad", 100, 50)
	bad.Name = ""
	if err := repo.Upsert(context.Background(), bad); err == nil {
		t.Error("Upsert(invalid) = nil, want error")
	}
}

func TestFindNearby(t *testing.T) {
	repo := seededRepo(t,
		poiAt("far", 1500, 90),
		poiAt("near", 200, 40),
		poiAt("outside", 2500, 120),
	)

	candidates, err := repo.FindNearby(context.Background(), timesSquare, 2000, models.CandidateFilter{})
	if err != nil {
		t.Fatalf("FindNearby() = %v, want nil", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("len(candidates) = %d, want 2", len(candidates))
	}
	// ascending distance
	if candidates[0].POI.ID != "near" || candidates[1].POI.ID != "far" {
		t.Errorf("order = [%s %s], want [near far]", candidates[0].POI.ID, candidates[1].POI.ID)
	}
	if d := candidates[0].DistanceMeters; math.Abs(d-200) > 0.01 {
		t.Errorf("DistanceMeters = %f, want 200", d)
	}
}

func TestFindNearbyFilter(t *testing.T) {
	bar := poiAt("bar", 300, 70)
	bar.Category = models.CategoryBarsCocktails
	bar.Subcategories = []string{"speakeasy"}
	starred := poiAt("starred", 500, 110)
	starred.Prestige.MichelinStars = 1
	repo := seededRepo(t, bar, starred, poiAt("plain", 400, 30))

	tests := []struct {
		name   string
		filter models.CandidateFilter
		want   int
	}{
		{"no filter", models.CandidateFilter{}, 3},
		{"category", models.CandidateFilter{Categories: []string{models.CategoryBarsCocktails}}, 1},
		{"subcategory", models.CandidateFilter{Subcategory: "speakeasy"}, 1},
		{"min prestige", models.CandidateFilter{MinPrestige: 60}, 2},
		{"michelin stars", models.CandidateFilter{MichelinStars: []int{1, 2, 3}}, 1},
		{"no match", models.CandidateFilter{Subcategory: "ramen"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates, err := repo.FindNearby(context.Background(), timesSquare, 2000, tt.filter)
			if err != nil {
				t.Fatalf("FindNearby() = %v, want nil", err)
			}
			if len(candidates) != tt.want {
				t.Errorf("len(candidates) = %d, want %d", len(candidates), tt.want)
			}
		})
	}
}

func TestFindNearbyCancelledContext(t *testing.T) {
	repo := seededRepo(t, poiAt("a", 100, 50))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := repo.FindNearby(ctx, timesSquare, 2000, models.CandidateFilter{}); !errors.Is(err, context.Canceled) {
		t.Errorf("FindNearby(cancelled) = %v, want context.Canceled", err)
	}
}

func TestListKeepsInsertionOrderAndCopies(t *testing.T) {
	repo := seededRepo(t,
		poiAt("first", 100, 50),
		poiAt("second", 200, 60),
		poiAt("third", 300, 70),
	)

	pois, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List() = %v, want nil", err)
	}
	if len(pois) != 3 {
		t.Fatalf("len(List()) = %d, want 3", len(pois))
	}
	for i, want := range []string{"first", "second", "third"} {
		if pois[i].ID != want {
			t.Errorf("List()[%d].ID = %q, want %q", i, pois[i].ID, want)
		}
	}

	// mutating the returned slice must not touch the store
	pois[0].Name = "clobbered"
	got, err := repo.GetByID(context.Background(), "first")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "first" {
		t.Errorf("stored Name = %q, want \"first\"", got.Name)
	}
}

func TestBulkUpsertSkipsInvalid(t *testing.T) {
	repo := NewPOIRepository()
	bad := poiAt("bad", 100, 50)
	bad.Category = ""

	err := repo.BulkUpsert(context.Background(), []*models.PointOfInterest{
		poiAt("ok-1", 100, 50),
		bad,
		poiAt("ok-2", 200, 60),
	})
	if err != nil {
		t.Fatalf("BulkUpsert() = %v, want nil", err)
	}

	count, err := repo.Count(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("Count() = %d, want 2", count)
	}
}

func TestDeleteAll(t *testing.T) {
	repo := seededRepo(t, poiAt("a", 100, 50), poiAt("b", 200, 60))

	if err := repo.DeleteAll(context.Background()); err != nil {
		t.Fatalf("DeleteAll() = %v, want nil", err)
	}
	count, err := repo.Count(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("Count() = %d, want 0", count)
	}
	if _, err := repo.GetByID(context.Background(), "a"); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("GetByID(a) = %v, want ErrNotFound", err)
	}
}

func TestNewFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pois.json")
	body := `[
		{"id": "one", "name": "One", "category": "casual-dining",
		 "location": {"lat": 40.758, "lon": -73.9851}, "prestige": {"score": 40}},
		{"id": "", "name": "Invalid", "category": "casual-dining",
		 "location": {"lat": 40.758, "lon": -73.9851}, "prestige": {"score": 40}},
		{"id": "two", "name": "Two", "category": "fine-dining",
		 "location": {"lat": 40.76, "lon": -73.98}, "prestige": {"score": 120}}
	]`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	repo, err := NewFromFile(path)
	if err != nil {
		t.Fatalf("NewFromFile() = %v, want nil", err)
	}
	count, err := repo.Count(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("Count() = %d, want 2 (invalid record skipped)", count)
	}
	if _, err := repo.GetByID(context.Background(), "two"); err != nil {
		t.Errorf("GetByID(two) = %v, want nil", err)
	}
}

func TestNewFromFileMissing(t *testing.T) {
	_, err := NewFromFile(filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("NewFromFile(absent) = %v, want wrapped os.ErrNotExist", err)
	}
}

func TestNewFromFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFromFile(path); err == nil {
		t.Error("NewFromFile(malformed) = nil, want error")
	}
}
