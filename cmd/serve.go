package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nycpoi/poiconcierge/internal/api"
	"github.com/nycpoi/poiconcierge/internal/enrich"
	"github.com/nycpoi/poiconcierge/internal/events"
	"github.com/nycpoi/poiconcierge/internal/models"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the concierge HTTP API",
	Long: `serve starts the HTTP API: plain prestige-ranked search, contextual
recommendations, per-venue freshness checks and directory listings. Running
the bare binary does the same thing; this command exists so the server flags
have an explicit home.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		return runServe(cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8080", "HTTP listen address")
	serveCmd.Flags().Bool("kafka-enabled", false, "publish analytics events to Kafka")
	serveCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")

	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	viper.BindPFlag("kafka.enabled", serveCmd.Flags().Lookup("kafka-enabled"))
	viper.BindPFlag("kafka.broker_list", serveCmd.Flags().Lookup("kafka-broker-list"))
}

func runServe(cfg *models.Config) error {
	repo, err := buildRepository(cfg)
	if err != nil {
		return err
	}
	defer repo.Close()

	publisher, err := events.NewPublisher(cfg)
	if err != nil {
		return err
	}
	defer publisher.Close()

	source, err := enrich.NewSource(cfg.Enrichment)
	if err != nil {
		return err
	}

	server := api.NewServer(cfg, repo, publisher, source)
	return server.Run()
}
