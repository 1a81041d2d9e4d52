package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nycpoi/poiconcierge/internal/factories"
	"github.com/nycpoi/poiconcierge/internal/models"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate a POI dataset file",
	Long: `seed writes a JSON dataset combining the hand-curated anchor venues with
deterministically generated filler spread around the configured city centre.
Running with the same random seed always produces the same dataset.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		return runSeed(cfg)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().Int("count", 150, "total number of POIs to write, anchors included")
	seedCmd.Flags().Int64("seed", 42, "random seed for deterministic generation")
	seedCmd.Flags().String("output", "examples/pois.json", "dataset file to write")

	viper.BindPFlag("seed.count", seedCmd.Flags().Lookup("count"))
	viper.BindPFlag("seed.random_seed", seedCmd.Flags().Lookup("seed"))
	viper.BindPFlag("seed.output_file", seedCmd.Flags().Lookup("output"))
}

func runSeed(cfg *models.Config) error {
	factory := factories.NewPOIFactory(cfg.Seed.RandomSeed)
	pois := factory.AnchorPOIs()
	anchors := len(pois)

	filler := cfg.Seed.Count - anchors
	if filler < 0 {
		filler = 0
	}
	bar := progressbar.Default(int64(filler), "seeding pois")
	for i := 0; i < filler; i++ {
		pois = append(pois, factory.CreatePOI(cfg.Seed))
		bar.Add(1)
	}

	data, err := json.MarshalIndent(pois, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal dataset: %w", err)
	}
	if dir := filepath.Dir(cfg.Seed.OutputFile); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(cfg.Seed.OutputFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}

	log.Printf("wrote %d pois (%d anchors, %d generated) to %s", len(pois), anchors, len(pois)-anchors, cfg.Seed.OutputFile)
	return nil
}
