package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nycpoi/poiconcierge/internal/factories"
	"github.com/nycpoi/poiconcierge/internal/models"
	"github.com/nycpoi/poiconcierge/internal/repositories"
	"github.com/nycpoi/poiconcierge/internal/repositories/memory"
	"github.com/nycpoi/poiconcierge/internal/repositories/postgres"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "poiconcierge",
	Short: "Context-aware NYC restaurant and bar concierge",
	Long: `poiconcierge serves curated New York points of interest over HTTP:
plain prestige-ranked search plus contextual recommendations that weigh
occasion, weather, time of day, group size and budget. Companion commands
seed, import and export the underlying dataset.`,
	// Running the bare binary serves, same as the serve subcommand.
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		return runServe(cfg)
	},
}

func init() {
	// Store flags are persistent so seed, import and export inherit them.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")
	rootCmd.PersistentFlags().String("store", "memory", "POI store driver: memory or postgres")
	rootCmd.PersistentFlags().String("database-url", "", "Postgres connection URL for the postgres driver")
	rootCmd.PersistentFlags().String("data-file", "examples/pois.json", "dataset file for the memory driver")

	viper.BindPFlag("store.driver", rootCmd.PersistentFlags().Lookup("store"))
	viper.BindPFlag("store.database_url", rootCmd.PersistentFlags().Lookup("database-url"))
	viper.BindPFlag("store.data_file", rootCmd.PersistentFlags().Lookup("data-file"))
}

// buildRepository picks the store driver. The memory driver falls back to
// the built-in anchor venues when no dataset file is available, so a bare
// checkout still serves something.
func buildRepository(cfg *models.Config) (repositories.POIRepository, error) {
	switch cfg.Store.Driver {
	case "postgres":
		pool, err := postgres.NewPool(context.Background(), cfg.Store.DatabaseURL)
		if err != nil {
			return nil, err
		}
		repo := postgres.NewPOIRepository(pool)
		if err := repo.InitSchema(context.Background()); err != nil {
			repo.Close()
			return nil, err
		}
		return repo, nil
	case "", "memory":
		if cfg.Store.DataFile != "" {
			repo, err := memory.NewFromFile(cfg.Store.DataFile)
			if err == nil {
				return repo, nil
			}
			if !errors.Is(err, os.ErrNotExist) {
				return nil, err
			}
			log.Printf("dataset %s not found, serving built-in anchor venues", cfg.Store.DataFile)
		}
		repo := memory.NewPOIRepository()
		factory := factories.NewPOIFactory(cfg.Seed.RandomSeed)
		for _, poi := range factory.AnchorPOIs() {
			poi := poi
			if err := repo.Upsert(context.Background(), &poi); err != nil {
				return nil, err
			}
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
