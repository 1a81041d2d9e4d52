package output

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/lib/pq"
	"github.com/nycpoi/poiconcierge/internal/models"
	"github.com/nycpoi/poiconcierge/internal/repositories/postgres"
)

// PostgresImporter bulk-loads POI datasets over the COPY protocol. The
// serving repository upserts one record at a time; this path exists for
// loading thousands of curated records in one shot.
type PostgresImporter struct {
	db *sql.DB
}

func NewPostgresImporter(databaseURL string) (*PostgresImporter, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	return &PostgresImporter{db: db}, nil
}

// EnsureSchema creates the pois table and indexes if missing.
func (p *PostgresImporter) EnsureSchema(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, postgres.SchemaSQL); err != nil {
		return fmt.Errorf("failed to initialise poi schema: %w", err)
	}
	return nil
}

// Truncate wipes the pois table before a fresh load.
func (p *PostgresImporter) Truncate(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, "TRUNCATE TABLE pois"); err != nil {
		return fmt.Errorf("failed to truncate pois: %w", err)
	}
	return nil
}

// CopyPOIs streams the records into the pois table. Invalid records are
// skipped with a warning; the count of loaded records is returned.
func (p *PostgresImporter) CopyPOIs(ctx context.Context, pois []models.PointOfInterest) (int, error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("pois",
		"id", "name", "slug", "category", "subcategories", "location",
		"street", "city", "state", "zip", "neighborhood", "borough",
		"phone", "website", "price_tier", "signature_dishes", "ambiance",
		"prestige_score", "michelin_stars", "bib_gourmand", "james_beard_awards",
		"nyt_stars", "best_of_lists", "occasions", "time_of_day", "weather",
		"max_party_size", "hours", "last_validated", "created_at", "updated_at"))
	if err != nil {
		return 0, err
	}

	count := 0
	for i := range pois {
		poi := &pois[i]
		if err := poi.Validate(); err != nil {
			log.Printf("skipping invalid poi in import: %v", err)
			continue
		}

		point := fmt.Sprintf("POINT(%f %f)", poi.Location.Lon, poi.Location.Lat)
		hoursJSON, err := json.Marshal(poi.Hours)
		if err != nil {
			return count, fmt.Errorf("failed to marshal hours for %s: %w", poi.ID, err)
		}

		_, err = stmt.ExecContext(ctx,
			poi.ID,
			poi.Name,
			poi.Slug,
			poi.Category,
			pq.Array(emptyIfNil(poi.Subcategories)),
			point,
			poi.Address.Street,
			poi.Address.City,
			poi.Address.State,
			poi.Address.Zip,
			poi.Address.Neighborhood,
			poi.Address.Borough,
			poi.Contact.Phone,
			poi.Contact.Website,
			string(poi.PriceTier),
			pq.Array(emptyIfNil(poi.SignatureDishes)),
			pq.Array(emptyIfNil(poi.Ambiance)),
			poi.Prestige.Score,
			poi.Prestige.MichelinStars,
			poi.Prestige.BibGourmand,
			pq.Array(emptyIfNil(poi.Prestige.JamesBeardAwards)),
			poi.Prestige.NYTStars,
			pq.Array(emptyIfNil(poi.Prestige.BestOfLists)),
			pq.Array(occasionStrings(poi.BestFor.Occasions)),
			pq.Array(timeStrings(poi.BestFor.TimeOfDay)),
			pq.Array(weatherStrings(poi.BestFor.Weather)),
			poi.MaxPartySize,
			string(hoursJSON),
			nullableTime(poi.LastValidated),
			defaultedTime(poi.CreatedAt),
			defaultedTime(poi.UpdatedAt),
		)
		if err != nil {
			return count, fmt.Errorf("failed to copy poi %s: %w", poi.ID, err)
		}
		count++
	}

	// final exec flushes the buffered copy data
	if _, err := stmt.ExecContext(ctx); err != nil {
		return count, fmt.Errorf("failed to flush copy buffer: %w", err)
	}
	if err := stmt.Close(); err != nil {
		return count, err
	}
	return count, tx.Commit()
}

func (p *PostgresImporter) Close() error {
	return p.db.Close()
}

func nullableTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

func defaultedTime(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}

// emptyIfNil keeps TEXT[] columns non-null; a supplied NULL would bypass the
// schema default.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func occasionStrings(in []models.Occasion) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}

func timeStrings(in []models.TimeOfDay) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}

func weatherStrings(in []models.WeatherCondition) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}
