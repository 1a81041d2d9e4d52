package output

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nycpoi/poiconcierge/internal/models"
	"github.com/nycpoi/poiconcierge/internal/repositories/memory"
)

func samplePOIs() []models.PointOfInterest {
	return []models.PointOfInterest{
		{
			ID:            "nyc-le-bernardin",
			Name:          "Le Bernardin",
			Slug:          "le-bernardin",
			Category:      models.CategoryFineDining,
			Subcategories: []string{"french", "seafood"},
			Location:      models.Location{Lat: 40.7615, Lon: -73.9819},
			Address: models.Address{
				Street:       "155 W 51st St",
				Neighborhood: "Midtown",
				Borough:      "Manhattan",
			},
			Contact: models.Contact{
				Phone:   "+1-212-554-1515",
				Website: "https://www.le-bernardin.com",
			},
			PriceTier:       models.PriceLuxury,
			SignatureDishes: []string{"Poached halibut", "Tuna carpaccio"},
			Ambiance:        []string{"refined", "hushed"},
			Prestige: models.PrestigeMarkers{
				Score:            150,
				MichelinStars:    3,
				JamesBeardAwards: []string{"Outstanding Chef"},
				NYTStars:         4,
				BestOfLists:      []string{"NYT Top 100"},
			},
			BestFor: models.Fitness{
				Occasions: []models.Occasion{models.OccasionDateNight, models.OccasionBusinessDinner},
				TimeOfDay: []models.TimeOfDay{models.TimeEvening},
				Weather:   []models.WeatherCondition{models.WeatherAny},
			},
			MaxPartySize:  8,
			LastValidated: time.Unix(1700000000, 0).UTC(),
		},
		{
			ID:        "nyc-joes-pizza",
			Name:      "Joe's Pizza",
			Slug:      "joes-pizza",
			Category:  models.CategoryCasualDining,
			Location:  models.Location{Lat: 40.7306, Lon: -74.0023},
			PriceTier: models.PriceBudget,
			Prestige:  models.PrestigeMarkers{Score: 55},
		},
	}
}

func TestRowFromPOI(t *testing.T) {
	row := RowFromPOI(samplePOIs()[0])

	cases := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"ID", row.ID, "nyc-le-bernardin"},
		{"Subcategories", row.Subcategories, "french;seafood"},
		{"Street", row.Street, "155 W 51st St"},
		{"PriceTier", row.PriceTier, "$$$$"},
		{"SignatureDishes", row.SignatureDishes, "Poached halibut;Tuna carpaccio"},
		{"Ambiance", row.Ambiance, "refined;hushed"},
		{"PrestigeScore", row.PrestigeScore, 150.0},
		{"MichelinStars", row.MichelinStars, int32(3)},
		{"JamesBeardAwards", row.JamesBeardAwards, "Outstanding Chef"},
		{"NYTStars", row.NYTStars, int32(4)},
		{"BestOfLists", row.BestOfLists, "NYT Top 100"},
		{"Occasions", row.Occasions, "date-night;business-dinner"},
		{"TimeOfDay", row.TimeOfDay, "evening"},
		{"Weather", row.Weather, "any"},
		{"MaxPartySize", row.MaxPartySize, int32(8)},
		{"LastValidated", row.LastValidated, int64(1700000000)},
	}
	for _, tt := range cases {
		if tt.got != tt.want {
			t.Errorf("RowFromPOI().%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestRowFromPOINeverValidated(t *testing.T) {
	row := RowFromPOI(samplePOIs()[1])
	if row.LastValidated != 0 {
		t.Errorf("LastValidated = %d, want 0 for a never-validated poi", row.LastValidated)
	}
	if row.Subcategories != "" {
		t.Errorf("Subcategories = %q, want empty join", row.Subcategories)
	}
}

func TestCSVHeaderMatchesRecord(t *testing.T) {
	record := RowFromPOI(samplePOIs()[0]).record()
	if len(record) != len(csvHeader) {
		t.Fatalf("len(record) = %d, want %d columns", len(record), len(csvHeader))
	}
}

func TestExportJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pois.json")
	exporter := NewDatasetExporter(models.ExportConfig{Format: "json", Path: path})

	pois := samplePOIs()
	if err := exporter.Export(pois); err != nil {
		t.Fatalf("Export() = %v", err)
	}

	// a JSON snapshot must load straight back into the memory store
	repo, err := memory.NewFromFile(path)
	if err != nil {
		t.Fatalf("NewFromFile(%s) = %v", path, err)
	}
	count, err := repo.Count(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if count != len(pois) {
		t.Fatalf("Count() = %d, want %d", count, len(pois))
	}

	stored, err := repo.GetByID(context.Background(), "nyc-le-bernardin")
	if err != nil {
		t.Fatal(err)
	}
	if stored.Prestige.MichelinStars != 3 {
		t.Errorf("MichelinStars = %d, want 3", stored.Prestige.MichelinStars)
	}
	if len(stored.Subcategories) != 2 || stored.Subcategories[0] != "french" {
		t.Errorf("Subcategories = %v, want [french seafood]", stored.Subcategories)
	}
	if !stored.LastValidated.Equal(pois[0].LastValidated) {
		t.Errorf("LastValidated = %v, want %v", stored.LastValidated, pois[0].LastValidated)
	}
}

func TestExportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pois.csv")
	exporter := NewDatasetExporter(models.ExportConfig{Format: "csv", Path: path})

	if err := exporter.Export(samplePOIs()); err != nil {
		t.Fatalf("Export() = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() = %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("len(records) = %d, want header plus 2 rows", len(records))
	}
	if records[0][0] != "id" || records[0][1] != "name" {
		t.Errorf("header = %v, want to start with id,name", records[0][:2])
	}
	if records[1][0] != "nyc-le-bernardin" {
		t.Errorf("first row id = %q, want nyc-le-bernardin", records[1][0])
	}
	if records[2][12] != "$" {
		t.Errorf("second row price tier = %q, want $", records[2][12])
	}
}

func TestExportParquetLocal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshots", "pois.parquet")
	exporter := NewDatasetExporter(models.ExportConfig{Format: "parquet", Path: path})

	if err := exporter.Export(samplePOIs()); err != nil {
		t.Fatalf("Export() = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat(%s) = %v", path, err)
	}
	if info.Size() == 0 {
		t.Error("parquet file is empty")
	}
}

func TestExportUnknownFormat(t *testing.T) {
	exporter := NewDatasetExporter(models.ExportConfig{Format: "xml", Path: "pois.xml"})
	err := exporter.Export(samplePOIs())
	if err == nil {
		t.Fatal("Export() = nil, want unsupported format error")
	}
	if !strings.Contains(err.Error(), "unsupported export format") {
		t.Errorf("Export() = %v, want unsupported format error", err)
	}
}

func TestParseS3Path(t *testing.T) {
	tests := []struct {
		path   string
		bucket string
		key    string
		ok     bool
	}{
		{"s3://poi-datasets/exports/pois.parquet", "poi-datasets", "exports/pois.parquet", true},
		{"s3://bucket/key", "bucket", "key", true},
		{"exports/pois.json", "", "", false},
		{"s3://bucketonly", "", "", false},
		{"s3://bucket/", "", "", false},
		{"s3:///key", "", "", false},
	}
	for _, tt := range tests {
		bucket, key, ok := parseS3Path(tt.path)
		if bucket != tt.bucket || key != tt.key || ok != tt.ok {
			t.Errorf("parseS3Path(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.path, bucket, key, ok, tt.bucket, tt.key, tt.ok)
		}
	}
}
