package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/de-tools/catalog-atlas/pkg/server"
	"github.com/de-tools/catalog-atlas/pkg/services/catalog"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	csvPath string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Serve game catalog reports over HTTP",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.Flags().StringVar(&csvPath, "csv", "", "Path to the catalog CSV (overrides config)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file loaded: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := catalog.DefaultConfig()
	if cfgPath != "" {
		loaded, err := catalog.LoadConfig(cfgPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}
	if csvPath != "" {
		cfg.CatalogPath = csvPath
	}
	if cfg.CatalogPath == "" {
		return fmt.Errorf("no catalog path given: set --csv or catalog_path in the config file")
	}

	ds, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	logger.Info().
		Str("path", ds.Path()).
		Int("records", ds.Len()).
		Msg("catalog loaded")

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")
	if host == "" {
		host = "127.0.0.1"
	}
	if port == "" {
		port = "8080"
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Analyzer: catalog.NewAnalyzer(ds),
		},
	})

	return api.Start()
}
