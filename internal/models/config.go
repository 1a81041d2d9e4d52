package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Store      StoreConfig      `mapstructure:"store"`
	Kafka      KafkaConfig      `mapstructure:"kafka"`
	Ranker     RankerConfig     `mapstructure:"ranker"`
	Enrichment EnrichmentConfig `mapstructure:"enrichment"`
	Export     ExportConfig     `mapstructure:"export"`
	Seed       SeedConfig       `mapstructure:"seed"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type StoreConfig struct {
	Driver      string `mapstructure:"driver"` // "postgres" or "memory"
	DatabaseURL string `mapstructure:"database_url"`
	DataFile    string `mapstructure:"data_file"` // dataset loaded by the memory driver
}

type KafkaConfig struct {
	Enabled             bool   `mapstructure:"enabled"`
	BrokerList          string `mapstructure:"broker_list"`
	SearchTopic         string `mapstructure:"search_topic"`
	RecommendationTopic string `mapstructure:"recommendation_topic"`
	RefreshTopic        string `mapstructure:"refresh_topic"`
}

// RankerConfig carries every weight, radius, limit and threshold the ranking
// path uses. It is passed into the engine explicitly so tests can vary the
// values without touching package state.
type RankerConfig struct {
	SearchRadiusMeters    float64 `mapstructure:"search_radius_meters"`
	RecommendRadiusMeters float64 `mapstructure:"recommend_radius_meters"`
	SearchLimit           int     `mapstructure:"search_limit"`
	RecommendLimit        int     `mapstructure:"recommend_limit"`
	DefaultGroupSize      int     `mapstructure:"default_group_size"`

	PrestigeWeight  float64 `mapstructure:"prestige_weight"`
	ProximityWeight float64 `mapstructure:"proximity_weight"`
	OccasionBonus   float64 `mapstructure:"occasion_bonus"`
	GroupBonus      float64 `mapstructure:"group_bonus"`
	GroupSlack      int     `mapstructure:"group_slack"`
	DistanceEpsilon float64 `mapstructure:"distance_epsilon"`
	VeryCloseMeters float64 `mapstructure:"very_close_meters"`

	// Hour-of-day boundaries for the time-of-day buckets. Each value is the
	// first hour of its bucket; night wraps past midnight until morning.
	MorningStartHour   int `mapstructure:"morning_start_hour"`
	LunchStartHour     int `mapstructure:"lunch_start_hour"`
	AfternoonStartHour int `mapstructure:"afternoon_start_hour"`
	EveningStartHour   int `mapstructure:"evening_start_hour"`
	NightStartHour     int `mapstructure:"night_start_hour"`
}

type EnrichmentConfig struct {
	Source          string        `mapstructure:"source"` // "noop" or "static"
	FixtureFile     string        `mapstructure:"fixture_file"`
	FreshnessWindow time.Duration `mapstructure:"freshness_window"`
}

type ExportConfig struct {
	Format   string `mapstructure:"format"` // "json", "csv" or "parquet"
	Path     string `mapstructure:"path"`   // local path or s3://bucket/key
	S3Region string `mapstructure:"s3_region"`
}

type SeedConfig struct {
	Count              int     `mapstructure:"count"`
	RandomSeed         int64   `mapstructure:"random_seed"`
	CityLat            float64 `mapstructure:"city_latitude"`
	CityLon            float64 `mapstructure:"city_longitude"`
	SpreadRadiusMeters float64 `mapstructure:"spread_radius_meters"`
	OutputFile         string  `mapstructure:"output_file"`
}

// DefaultRankerConfig returns the canonical ranking parameters.
func DefaultRankerConfig() RankerConfig {
	return RankerConfig{
		SearchRadiusMeters:    2000,
		RecommendRadiusMeters: 3000,
		SearchLimit:           10,
		RecommendLimit:        5,
		DefaultGroupSize:      2,
		PrestigeWeight:        0.55,
		ProximityWeight:       22.0,
		OccasionBonus:         20.0,
		GroupBonus:            5.0,
		GroupSlack:            4,
		DistanceEpsilon:       1.0,
		VeryCloseMeters:       500,
		MorningStartHour:      5,
		LunchStartHour:        11,
		AfternoonStartHour:    15,
		EveningStartHour:      17,
		NightStartHour:        23,
	}
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.SetEnvPrefix("POI")
	viper.AutomaticEnv() // Read in environment variables that match

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// Running purely on defaults and flags is fine; an explicitly named
		// config file must exist.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.read_timeout", "10s")
	viper.SetDefault("server.write_timeout", "15s")
	viper.SetDefault("server.shutdown_timeout", "10s")

	viper.SetDefault("store.driver", "memory")
	viper.SetDefault("store.data_file", "examples/pois.json")

	viper.SetDefault("kafka.enabled", false)
	viper.SetDefault("kafka.broker_list", "localhost:9092")
	viper.SetDefault("kafka.search_topic", "poi_searches")
	viper.SetDefault("kafka.recommendation_topic", "poi_recommendations")
	viper.SetDefault("kafka.refresh_topic", "poi_refreshes")

	def := DefaultRankerConfig()
	viper.SetDefault("ranker.search_radius_meters", def.SearchRadiusMeters)
	viper.SetDefault("ranker.recommend_radius_meters", def.RecommendRadiusMeters)
	viper.SetDefault("ranker.search_limit", def.SearchLimit)
	viper.SetDefault("ranker.recommend_limit", def.RecommendLimit)
	viper.SetDefault("ranker.default_group_size", def.DefaultGroupSize)
	viper.SetDefault("ranker.prestige_weight", def.PrestigeWeight)
	viper.SetDefault("ranker.proximity_weight", def.ProximityWeight)
	viper.SetDefault("ranker.occasion_bonus", def.OccasionBonus)
	viper.SetDefault("ranker.group_bonus", def.GroupBonus)
	viper.SetDefault("ranker.group_slack", def.GroupSlack)
	viper.SetDefault("ranker.distance_epsilon", def.DistanceEpsilon)
	viper.SetDefault("ranker.very_close_meters", def.VeryCloseMeters)
	viper.SetDefault("ranker.morning_start_hour", def.MorningStartHour)
	viper.SetDefault("ranker.lunch_start_hour", def.LunchStartHour)
	viper.SetDefault("ranker.afternoon_start_hour", def.AfternoonStartHour)
	viper.SetDefault("ranker.evening_start_hour", def.EveningStartHour)
	viper.SetDefault("ranker.night_start_hour", def.NightStartHour)

	viper.SetDefault("enrichment.source", "noop")
	viper.SetDefault("enrichment.freshness_window", "24h")

	viper.SetDefault("export.format", "json")
	viper.SetDefault("export.path", "pois_export.json")
	viper.SetDefault("export.s3_region", "us-east-1")

	viper.SetDefault("seed.count", 150)
	viper.SetDefault("seed.random_seed", 42)
	viper.SetDefault("seed.city_latitude", 40.7580)
	viper.SetDefault("seed.city_longitude", -73.9851)
	viper.SetDefault("seed.spread_radius_meters", 4000)
	viper.SetDefault("seed.output_file", "examples/pois.json")
}
