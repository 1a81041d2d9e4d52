package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nycpoi/poiconcierge/internal/cloudwriter"
	"github.com/nycpoi/poiconcierge/internal/models"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

// POIRow is the flattened tabular projection of a POI used by the CSV and
// Parquet exporters. List fields are joined with ";" so downstream SQL
// engines can split them back out. The JSON exporter keeps full fidelity
// and round-trips into the memory store.
type POIRow struct {
	ID               string  `json:"id" parquet:"name=id,type=BYTE_ARRAY,convertedtype=UTF8"`
	Name             string  `json:"name" parquet:"name=name,type=BYTE_ARRAY,convertedtype=UTF8"`
	Slug             string  `json:"slug" parquet:"name=slug,type=BYTE_ARRAY,convertedtype=UTF8"`
	Category         string  `json:"category" parquet:"name=category,type=BYTE_ARRAY,convertedtype=UTF8"`
	Subcategories    string  `json:"subcategories" parquet:"name=subcategories,type=BYTE_ARRAY,convertedtype=UTF8"`
	Latitude         float64 `json:"latitude" parquet:"name=latitude,type=DOUBLE"`
	Longitude        float64 `json:"longitude" parquet:"name=longitude,type=DOUBLE"`
	Street           string  `json:"street" parquet:"name=street,type=BYTE_ARRAY,convertedtype=UTF8"`
	Neighborhood     string  `json:"neighborhood" parquet:"name=neighborhood,type=BYTE_ARRAY,convertedtype=UTF8"`
	Borough          string  `json:"borough" parquet:"name=borough,type=BYTE_ARRAY,convertedtype=UTF8"`
	Phone            string  `json:"phone" parquet:"name=phone,type=BYTE_ARRAY,convertedtype=UTF8"`
	Website          string  `json:"website" parquet:"name=website,type=BYTE_ARRAY,convertedtype=UTF8"`
	PriceTier        string  `json:"priceTier" parquet:"name=priceTier,type=BYTE_ARRAY,convertedtype=UTF8"`
	SignatureDishes  string  `json:"signatureDishes" parquet:"name=signatureDishes,type=BYTE_ARRAY,convertedtype=UTF8"`
	Ambiance         string  `json:"ambiance" parquet:"name=ambiance,type=BYTE_ARRAY,convertedtype=UTF8"`
	PrestigeScore    float64 `json:"prestigeScore" parquet:"name=prestigeScore,type=DOUBLE"`
	MichelinStars    int32   `json:"michelinStars" parquet:"name=michelinStars,type=INT32"`
	BibGourmand      bool    `json:"bibGourmand" parquet:"name=bibGourmand,type=BOOLEAN"`
	JamesBeardAwards string  `json:"jamesBeardAwards" parquet:"name=jamesBeardAwards,type=BYTE_ARRAY,convertedtype=UTF8"`
	NYTStars         int32   `json:"nytStars" parquet:"name=nytStars,type=INT32"`
	BestOfLists      string  `json:"bestOfLists" parquet:"name=bestOfLists,type=BYTE_ARRAY,convertedtype=UTF8"`
	Occasions        string  `json:"occasions" parquet:"name=occasions,type=BYTE_ARRAY,convertedtype=UTF8"`
	TimeOfDay        string  `json:"timeOfDay" parquet:"name=timeOfDay,type=BYTE_ARRAY,convertedtype=UTF8"`
	Weather          string  `json:"weather" parquet:"name=weather,type=BYTE_ARRAY,convertedtype=UTF8"`
	MaxPartySize     int32   `json:"maxPartySize" parquet:"name=maxPartySize,type=INT32"`
	LastValidated    int64   `json:"lastValidated" parquet:"name=lastValidated,type=INT64"`
}

func RowFromPOI(poi models.PointOfInterest) POIRow {
	row := POIRow{
		ID:               poi.ID,
		Name:             poi.Name,
		Slug:             poi.Slug,
		Category:         poi.Category,
		Subcategories:    strings.Join(poi.Subcategories, ";"),
		Latitude:         poi.Location.Lat,
		Longitude:        poi.Location.Lon,
		Street:           poi.Address.Street,
		Neighborhood:     poi.Address.Neighborhood,
		Borough:          poi.Address.Borough,
		Phone:            poi.Contact.Phone,
		Website:          poi.Contact.Website,
		PriceTier:        string(poi.PriceTier),
		SignatureDishes:  strings.Join(poi.SignatureDishes, ";"),
		Ambiance:         strings.Join(poi.Ambiance, ";"),
		PrestigeScore:    poi.Prestige.Score,
		MichelinStars:    int32(poi.Prestige.MichelinStars),
		BibGourmand:      poi.Prestige.BibGourmand,
		JamesBeardAwards: strings.Join(poi.Prestige.JamesBeardAwards, ";"),
		NYTStars:         int32(poi.Prestige.NYTStars),
		BestOfLists:      strings.Join(poi.Prestige.BestOfLists, ";"),
		Occasions:        joinOccasions(poi.BestFor.Occasions),
		TimeOfDay:        joinTimes(poi.BestFor.TimeOfDay),
		Weather:          joinWeather(poi.BestFor.Weather),
		MaxPartySize:     int32(poi.MaxPartySize),
	}
	if !poi.LastValidated.IsZero() {
		row.LastValidated = poi.LastValidated.Unix()
	}
	return row
}

var csvHeader = []string{
	"id", "name", "slug", "category", "subcategories",
	"latitude", "longitude", "street", "neighborhood", "borough",
	"phone", "website", "price_tier", "signature_dishes", "ambiance",
	"prestige_score", "michelin_stars", "bib_gourmand", "james_beard_awards",
	"nyt_stars", "best_of_lists", "occasions", "time_of_day", "weather",
	"max_party_size", "last_validated",
}

func (r POIRow) record() []string {
	return []string{
		r.ID, r.Name, r.Slug, r.Category, r.Subcategories,
		strconv.FormatFloat(r.Latitude, 'f', -1, 64),
		strconv.FormatFloat(r.Longitude, 'f', -1, 64),
		r.Street, r.Neighborhood, r.Borough,
		r.Phone, r.Website, r.PriceTier, r.SignatureDishes, r.Ambiance,
		strconv.FormatFloat(r.PrestigeScore, 'f', -1, 64),
		strconv.Itoa(int(r.MichelinStars)),
		strconv.FormatBool(r.BibGourmand),
		r.JamesBeardAwards,
		strconv.Itoa(int(r.NYTStars)),
		r.BestOfLists, r.Occasions, r.TimeOfDay, r.Weather,
		strconv.Itoa(int(r.MaxPartySize)),
		strconv.FormatInt(r.LastValidated, 10),
	}
}

// DatasetExporter writes a dataset snapshot in the configured format to a
// local path or an s3:// destination.
type DatasetExporter struct {
	config models.ExportConfig
}

func NewDatasetExporter(config models.ExportConfig) *DatasetExporter {
	return &DatasetExporter{config: config}
}

func (e *DatasetExporter) Export(pois []models.PointOfInterest) error {
	switch strings.ToLower(e.config.Format) {
	case "json":
		return e.exportJSON(pois)
	case "csv":
		return e.exportCSV(pois)
	case "parquet":
		return e.exportParquet(pois)
	default:
		return fmt.Errorf("unsupported export format: %s", e.config.Format)
	}
}

func (e *DatasetExporter) exportJSON(pois []models.PointOfInterest) error {
	data, err := json.MarshalIndent(pois, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal dataset: %w", err)
	}
	return e.writeBlob(append(data, '\n'))
}

func (e *DatasetExporter) exportCSV(pois []models.PointOfInterest) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, poi := range pois {
		if err := w.Write(RowFromPOI(poi).record()); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return e.writeBlob(buf.Bytes())
}

func (e *DatasetExporter) exportParquet(pois []models.PointOfInterest) error {
	var fw source.ParquetFile
	if bucket, key, ok := parseS3Path(e.config.Path); ok {
		factory, err := cloudwriter.NewS3WriterFactory(e.config.S3Region)
		if err != nil {
			return fmt.Errorf("failed to create cloud writer factory: %w", err)
		}
		cw, err := factory.NewWriter(bucket, key)
		if err != nil {
			return fmt.Errorf("failed to create cloud file writer: %w", err)
		}
		fw = NewCloudParquetFile(cw)
	} else {
		if err := os.MkdirAll(filepath.Dir(e.config.Path), os.ModePerm); err != nil {
			return err
		}
		var err error
		fw, err = local.NewLocalFileWriter(e.config.Path)
		if err != nil {
			return fmt.Errorf("failed to create local file writer: %w", err)
		}
	}

	pw, err := writer.NewParquetWriter(fw, new(POIRow), 4)
	if err != nil {
		fw.Close()
		return fmt.Errorf("failed to create parquet writer: %w", err)
	}

	for _, poi := range pois {
		if err := pw.Write(RowFromPOI(poi)); err != nil {
			fw.Close()
			return fmt.Errorf("failed to write poi row: %w", err)
		}
	}
	if err := pw.WriteStop(); err != nil {
		fw.Close()
		return fmt.Errorf("failed to finalise parquet file: %w", err)
	}
	return fw.Close()
}

func (e *DatasetExporter) writeBlob(data []byte) error {
	if bucket, key, ok := parseS3Path(e.config.Path); ok {
		factory, err := cloudwriter.NewS3WriterFactory(e.config.S3Region)
		if err != nil {
			return fmt.Errorf("failed to create cloud writer factory: %w", err)
		}
		w, err := factory.NewWriter(bucket, key)
		if err != nil {
			return fmt.Errorf("failed to create cloud file writer: %w", err)
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
		return w.Close()
	}

	if dir := filepath.Dir(e.config.Path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return err
		}
	}
	return os.WriteFile(e.config.Path, data, 0o644)
}

// parseS3Path splits "s3://bucket/key" into its parts.
func parseS3Path(path string) (bucket, key string, ok bool) {
	if !strings.HasPrefix(path, "s3://") {
		return "", "", false
	}
	rest := strings.TrimPrefix(path, "s3://")
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// CloudParquetFile adapts a cloudwriter stream to the parquet source
// interface. Cloud objects are write-once, so reads and seek-from-end are
// unsupported.
type CloudParquetFile struct {
	cloudWriter cloudwriter.CloudWriter
	offset      int64
}

func NewCloudParquetFile(cw cloudwriter.CloudWriter) *CloudParquetFile {
	return &CloudParquetFile{cloudWriter: cw}
}

func (c *CloudParquetFile) Open(name string) (source.ParquetFile, error) {
	return c, nil
}

func (c *CloudParquetFile) Create(name string) (source.ParquetFile, error) {
	return c, nil
}

func (c *CloudParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		c.offset = offset
	case io.SeekCurrent:
		c.offset += offset
	case io.SeekEnd:
		return 0, fmt.Errorf("seek from end not supported for cloud storage")
	}
	return c.offset, nil
}

func (c *CloudParquetFile) Read(p []byte) (n int, err error) {
	return 0, fmt.Errorf("read not supported for cloud storage")
}

func (c *CloudParquetFile) Write(p []byte) (n int, err error) {
	return c.cloudWriter.Write(p)
}

func (c *CloudParquetFile) Close() error {
	return c.cloudWriter.Close()
}

func joinOccasions(in []models.Occasion) string {
	parts := make([]string, len(in))
	for i, v := range in {
		parts[i] = string(v)
	}
	return strings.Join(parts, ";")
}

func joinTimes(in []models.TimeOfDay) string {
	parts := make([]string, len(in))
	for i, v := range in {
		parts[i] = string(v)
	}
	return strings.Join(parts, ";")
}

func joinWeather(in []models.WeatherCondition) string {
	parts := make([]string, len(in))
	for i, v := range in {
		parts[i] = string(v)
	}
	return strings.Join(parts, ";")
}
