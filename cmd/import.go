package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/nycpoi/poiconcierge/internal/models"
	"github.com/nycpoi/poiconcierge/internal/output"
	"github.com/nycpoi/poiconcierge/internal/repositories/memory"
)

// COPY batch size. Large enough to amortize round trips, small enough to
// keep the progress bar honest.
const importChunkSize = 500

var importTruncate bool

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Bulk-load a dataset file into Postgres",
	Long: `import streams the JSON dataset named by --data-file into the pois table
using COPY, creating the schema first when it does not exist. Pass
--truncate to replace the table contents instead of loading on top of
them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		return runImport(cfg, importTruncate)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().BoolVar(&importTruncate, "truncate", false, "empty the pois table before loading")
}

func runImport(cfg *models.Config, truncate bool) error {
	repo, err := memory.NewFromFile(cfg.Store.DataFile)
	if err != nil {
		return err
	}
	ctx := context.Background()
	pois, err := repo.List(ctx)
	if err != nil {
		return err
	}

	importer, err := output.NewPostgresImporter(cfg.Store.DatabaseURL)
	if err != nil {
		return err
	}
	defer importer.Close()

	if err := importer.EnsureSchema(ctx); err != nil {
		return err
	}
	if truncate {
		if err := importer.Truncate(ctx); err != nil {
			return err
		}
	}

	bar := progressbar.Default(int64(len(pois)), "importing pois")
	loaded := 0
	for start := 0; start < len(pois); start += importChunkSize {
		end := start + importChunkSize
		if end > len(pois) {
			end = len(pois)
		}
		n, err := importer.CopyPOIs(ctx, pois[start:end])
		if err != nil {
			return fmt.Errorf("failed to copy pois: %w", err)
		}
		loaded += n
		bar.Add(end - start)
	}

	log.Printf("imported %d of %d pois from %s", loaded, len(pois), cfg.Store.DataFile)
	return nil
}
