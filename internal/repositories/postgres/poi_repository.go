package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nycpoi/poiconcierge/internal/models"
	"github.com/nycpoi/poiconcierge/internal/repositories"
)

var _ repositories.POIRepository = (*POIRepository)(nil)

const poiColumns = `
    id, name, slug, category, subcategories,
    ST_X(location::geometry) as longitude, ST_Y(location::geometry) as latitude,
    street, city, state, zip, neighborhood, borough,
    phone, website, price_tier, signature_dishes, ambiance,
    prestige_score, michelin_stars, bib_gourmand, james_beard_awards, nyt_stars, best_of_lists,
    occasions, time_of_day, weather, max_party_size, hours,
    last_validated, created_at, updated_at`

// SchemaSQL is the canonical pois DDL. Both this repository and the bulk
// importer bootstrap from it. Requires the postgis extension.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS pois (
    id                 TEXT PRIMARY KEY,
    name               TEXT NOT NULL,
    slug               TEXT NOT NULL DEFAULT '',
    category           TEXT NOT NULL,
    subcategories      TEXT[] NOT NULL DEFAULT '{}',
    location           GEOGRAPHY(POINT, 4326) NOT NULL,
    street             TEXT NOT NULL DEFAULT '',
    city               TEXT NOT NULL DEFAULT '',
    state              TEXT NOT NULL DEFAULT '',
    zip                TEXT NOT NULL DEFAULT '',
    neighborhood       TEXT NOT NULL DEFAULT '',
    borough            TEXT NOT NULL DEFAULT '',
    phone              TEXT NOT NULL DEFAULT '',
    website            TEXT NOT NULL DEFAULT '',
    price_tier         TEXT NOT NULL DEFAULT '',
    signature_dishes   TEXT[] NOT NULL DEFAULT '{}',
    ambiance           TEXT[] NOT NULL DEFAULT '{}',
    prestige_score     DOUBLE PRECISION NOT NULL DEFAULT 0,
    michelin_stars     INT NOT NULL DEFAULT 0,
    bib_gourmand       BOOLEAN NOT NULL DEFAULT FALSE,
    james_beard_awards TEXT[] NOT NULL DEFAULT '{}',
    nyt_stars          INT NOT NULL DEFAULT 0,
    best_of_lists      TEXT[] NOT NULL DEFAULT '{}',
    occasions          TEXT[] NOT NULL DEFAULT '{}',
    time_of_day        TEXT[] NOT NULL DEFAULT '{}',
    weather            TEXT[] NOT NULL DEFAULT '{}',
    max_party_size     INT NOT NULL DEFAULT 0,
    hours              JSONB,
    last_validated     TIMESTAMPTZ,
    created_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at         TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS pois_location_gist ON pois USING GIST (location);
CREATE INDEX IF NOT EXISTS pois_prestige_idx ON pois (prestige_score DESC);
CREATE INDEX IF NOT EXISTS pois_category_idx ON pois (category);
`

type POIRepository struct {
	pool *pgxpool.Pool
}

func NewPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

func NewPOIRepository(pool *pgxpool.Pool) *POIRepository {
	return &POIRepository{pool: pool}
}

// InitSchema creates the pois table and indexes if they do not exist.
func (r *POIRepository) InitSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, SchemaSQL); err != nil {
		return fmt.Errorf("failed to initialise poi schema: %w", err)
	}
	return nil
}

func (r *POIRepository) FindNearby(ctx context.Context, origin models.Location, radiusMeters float64, filter models.CandidateFilter) ([]models.Candidate, error) {
	query := `
        SELECT ` + poiColumns + `,
            ST_Distance(location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography) as distance
        FROM pois
        WHERE ST_DWithin(
            location,
            ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
            $3
        )`
	args := []interface{}{origin.Lon, origin.Lat, radiusMeters}

	if len(filter.Categories) > 0 {
		args = append(args, filter.Categories)
		query += fmt.Sprintf(" AND category = ANY($%d)", len(args))
	}
	if filter.Subcategory != "" {
		args = append(args, filter.Subcategory)
		query += fmt.Sprintf(" AND $%d = ANY(subcategories)", len(args))
	}
	if filter.MinPrestige > 0 {
		args = append(args, filter.MinPrestige)
		query += fmt.Sprintf(" AND prestige_score >= $%d", len(args))
	}
	if len(filter.MichelinStars) > 0 {
		args = append(args, filter.MichelinStars)
		query += fmt.Sprintf(" AND michelin_stars = ANY($%d)", len(args))
	}
	query += " ORDER BY distance"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby pois: %w", err)
	}
	defer rows.Close()

	var candidates []models.Candidate
	for rows.Next() {
		poi, distance, err := scanPOIWithDistance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan poi row: %w", err)
		}
		if err := poi.Validate(); err != nil {
			// bad curation data; skip the record, keep the query alive
			log.Printf("skipping invalid poi: %v", err)
			continue
		}
		candidates = append(candidates, models.Candidate{POI: *poi, DistanceMeters: distance})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating poi rows: %w", err)
	}
	return candidates, nil
}

func (r *POIRepository) GetByID(ctx context.Context, id string) (*models.PointOfInterest, error) {
	query := `SELECT ` + poiColumns + ` FROM pois WHERE id = $1`
	row := r.pool.QueryRow(ctx, query, id)

	poi, err := scanPOI(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get poi %s: %w", id, err)
	}
	return poi, nil
}

// List returns every stored POI, ordered by id for reproducible exports.
func (r *POIRepository) List(ctx context.Context) ([]models.PointOfInterest, error) {
	query := `SELECT ` + poiColumns + ` FROM pois ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pois: %w", err)
	}
	defer rows.Close()

	var pois []models.PointOfInterest
	for rows.Next() {
		poi, err := scanPOI(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan poi row: %w", err)
		}
		pois = append(pois, *poi)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating poi rows: %w", err)
	}
	return pois, nil
}

const upsertSQL = `
    INSERT INTO pois (
        id, name, slug, category, subcategories, location,
        street, city, state, zip, neighborhood, borough,
        phone, website, price_tier, signature_dishes, ambiance,
        prestige_score, michelin_stars, bib_gourmand, james_beard_awards, nyt_stars, best_of_lists,
        occasions, time_of_day, weather, max_party_size, hours,
        last_validated, created_at, updated_at
    ) VALUES (
        $1, $2, $3, $4, $5,
        ST_SetSRID(ST_MakePoint($6, $7), 4326)::geography,
        $8, $9, $10, $11, $12, $13,
        $14, $15, $16, $17, $18,
        $19, $20, $21, $22, $23, $24,
        $25, $26, $27, $28, $29,
        $30, $31, $32
    )
    ON CONFLICT (id) DO UPDATE SET
        name = EXCLUDED.name,
        slug = EXCLUDED.slug,
        category = EXCLUDED.category,
        subcategories = EXCLUDED.subcategories,
        location = EXCLUDED.location,
        street = EXCLUDED.street,
        city = EXCLUDED.city,
        state = EXCLUDED.state,
        zip = EXCLUDED.zip,
        neighborhood = EXCLUDED.neighborhood,
        borough = EXCLUDED.borough,
        phone = EXCLUDED.phone,
        website = EXCLUDED.website,
        price_tier = EXCLUDED.price_tier,
        signature_dishes = EXCLUDED.signature_dishes,
        ambiance = EXCLUDED.ambiance,
        prestige_score = EXCLUDED.prestige_score,
        michelin_stars = EXCLUDED.michelin_stars,
        bib_gourmand = EXCLUDED.bib_gourmand,
        james_beard_awards = EXCLUDED.james_beard_awards,
        nyt_stars = EXCLUDED.nyt_stars,
        best_of_lists = EXCLUDED.best_of_lists,
        occasions = EXCLUDED.occasions,
        time_of_day = EXCLUDED.time_of_day,
        weather = EXCLUDED.weather,
        max_party_size = EXCLUDED.max_party_size,
        hours = EXCLUDED.hours,
        last_validated = EXCLUDED.last_validated,
        updated_at = EXCLUDED.updated_at
`

func (r *POIRepository) Upsert(ctx context.Context, poi *models.PointOfInterest) error {
	if err := poi.Validate(); err != nil {
		return err
	}
	_, err := r.pool.Exec(ctx, upsertSQL, upsertArgs(poi)...)
	if err != nil {
		return fmt.Errorf("failed to upsert poi %s: %w", poi.ID, err)
	}
	return nil
}

func (r *POIRepository) BulkUpsert(ctx context.Context, pois []*models.PointOfInterest) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, poi := range pois {
		if err := poi.Validate(); err != nil {
			log.Printf("skipping invalid poi in bulk upsert: %v", err)
			continue
		}
		if _, err := tx.Exec(ctx, upsertSQL, upsertArgs(poi)...); err != nil {
			return fmt.Errorf("failed to upsert poi %s: %w", poi.ID, err)
		}
	}
	return tx.Commit(ctx)
}

func (r *POIRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM pois").Scan(&count)
	return count, err
}

func (r *POIRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE pois")
	return err
}

func (r *POIRepository) Close() {
	r.pool.Close()
}

func upsertArgs(poi *models.PointOfInterest) []interface{} {
	return []interface{}{
		poi.ID,
		poi.Name,
		poi.Slug,
		poi.Category,
		emptyIfNil(poi.Subcategories),
		poi.Location.Lon,
		poi.Location.Lat,
		poi.Address.Street,
		poi.Address.City,
		poi.Address.State,
		poi.Address.Zip,
		poi.Address.Neighborhood,
		poi.Address.Borough,
		poi.Contact.Phone,
		poi.Contact.Website,
		string(poi.PriceTier),
		emptyIfNil(poi.SignatureDishes),
		emptyIfNil(poi.Ambiance),
		poi.Prestige.Score,
		poi.Prestige.MichelinStars,
		poi.Prestige.BibGourmand,
		emptyIfNil(poi.Prestige.JamesBeardAwards),
		poi.Prestige.NYTStars,
		emptyIfNil(poi.Prestige.BestOfLists),
		occasionsToStrings(poi.BestFor.Occasions),
		timesToStrings(poi.BestFor.TimeOfDay),
		weatherToStrings(poi.BestFor.Weather),
		poi.MaxPartySize,
		poi.Hours,
		nullableTime(poi.LastValidated),
		poi.CreatedAt,
		poi.UpdatedAt,
	}
}

// nullableTime maps the zero time to SQL NULL.
func nullableTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
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

func scanPOI(row pgx.Row) (*models.PointOfInterest, error) {
	poi := &models.PointOfInterest{}
	var lon, lat float64
	var priceTier string
	var occasions, timeOfDay, weather []string
	var lastValidated *time.Time
	err := row.Scan(
		&poi.ID,
		&poi.Name,
		&poi.Slug,
		&poi.Category,
		&poi.Subcategories,
		&lon,
		&lat,
		&poi.Address.Street,
		&poi.Address.City,
		&poi.Address.State,
		&poi.Address.Zip,
		&poi.Address.Neighborhood,
		&poi.Address.Borough,
		&poi.Contact.Phone,
		&poi.Contact.Website,
		&priceTier,
		&poi.SignatureDishes,
		&poi.Ambiance,
		&poi.Prestige.Score,
		&poi.Prestige.MichelinStars,
		&poi.Prestige.BibGourmand,
		&poi.Prestige.JamesBeardAwards,
		&poi.Prestige.NYTStars,
		&poi.Prestige.BestOfLists,
		&occasions,
		&timeOfDay,
		&weather,
		&poi.MaxPartySize,
		&poi.Hours,
		&lastValidated,
		&poi.CreatedAt,
		&poi.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	poi.Location = models.Location{Lon: lon, Lat: lat}
	poi.PriceTier = models.PriceTier(priceTier)
	if lastValidated != nil {
		poi.LastValidated = *lastValidated
	}
	poi.BestFor = models.Fitness{
		Occasions: stringsToOccasions(occasions),
		TimeOfDay: stringsToTimes(timeOfDay),
		Weather:   stringsToWeather(weather),
	}
	return poi, nil
}

// scanPOIWithDistance scans a poiColumns row followed by a distance column.
func scanPOIWithDistance(rows pgx.Rows) (*models.PointOfInterest, float64, error) {
	poi := &models.PointOfInterest{}
	var lon, lat, distance float64
	var priceTier string
	var occasions, timeOfDay, weather []string
	var lastValidated *time.Time
	err := rows.Scan(
		&poi.ID,
		&poi.Name,
		&poi.Slug,
		&poi.Category,
		&poi.Subcategories,
		&lon,
		&lat,
		&poi.Address.Street,
		&poi.Address.City,
		&poi.Address.State,
		&poi.Address.Zip,
		&poi.Address.Neighborhood,
		&poi.Address.Borough,
		&poi.Contact.Phone,
		&poi.Contact.Website,
		&priceTier,
		&poi.SignatureDishes,
		&poi.Ambiance,
		&poi.Prestige.Score,
		&poi.Prestige.MichelinStars,
		&poi.Prestige.BibGourmand,
		&poi.Prestige.JamesBeardAwards,
		&poi.Prestige.NYTStars,
		&poi.Prestige.BestOfLists,
		&occasions,
		&timeOfDay,
		&weather,
		&poi.MaxPartySize,
		&poi.Hours,
		&lastValidated,
		&poi.CreatedAt,
		&poi.UpdatedAt,
		&distance,
	)
	if err != nil {
		return nil, 0, err
	}
	poi.Location = models.Location{Lon: lon, Lat: lat}
	poi.PriceTier = models.PriceTier(priceTier)
	if lastValidated != nil {
		poi.LastValidated = *lastValidated
	}
	poi.BestFor = models.Fitness{
		Occasions: stringsToOccasions(occasions),
		TimeOfDay: stringsToTimes(timeOfDay),
		Weather:   stringsToWeather(weather),
	}
	return poi, distance, nil
}

func occasionsToStrings(in []models.Occasion) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}

func timesToStrings(in []models.TimeOfDay) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}

func weatherToStrings(in []models.WeatherCondition) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}

func stringsToOccasions(in []string) []models.Occasion {
	if len(in) == 0 {
		return nil
	}
	out := make([]models.Occasion, len(in))
	for i, v := range in {
		out[i] = models.Occasion(v)
	}
	return out
}

func stringsToTimes(in []string) []models.TimeOfDay {
	if len(in) == 0 {
		return nil
	}
	out := make([]models.TimeOfDay, len(in))
	for i, v := range in {
		out[i] = models.TimeOfDay(v)
	}
	return out
}

func stringsToWeather(in []string) []models.WeatherCondition {
	if len(in) == 0 {
		return nil
	}
	out := make([]models.WeatherCondition, len(in))
	for i, v := range in {
		out[i] = models.WeatherCondition(v)
	}
	return out
}
