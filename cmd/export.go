package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nycpoi/poiconcierge/internal/models"
	"github.com/nycpoi/poiconcierge/internal/output"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the POI store as JSON, CSV or Parquet",
	Long: `export reads every POI from the configured store and writes it in the
requested format, either to a local file or to an s3://bucket/key
destination.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		return runExport(cfg)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().String("format", "json", "output format: json, csv or parquet")
	exportCmd.Flags().String("output", "pois_export.json", "output path, local or s3://bucket/key")

	viper.BindPFlag("export.format", exportCmd.Flags().Lookup("format"))
	viper.BindPFlag("export.path", exportCmd.Flags().Lookup("output"))
}

func runExport(cfg *models.Config) error {
	repo, err := buildRepository(cfg)
	if err != nil {
		return err
	}
	defer repo.Close()

	pois, err := repo.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to read store: %w", err)
	}

	exporter := output.NewDatasetExporter(cfg.Export)
	if err := exporter.Export(pois); err != nil {
		return err
	}

	log.Printf("exported %d pois as %s to %s", len(pois), cfg.Export.Format, cfg.Export.Path)
	return nil
}
