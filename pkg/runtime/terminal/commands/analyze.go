package commands

import (
	"fmt"

	"github.com/de-tools/catalog-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/catalog-atlas/pkg/services/catalog"

	"github.com/spf13/cobra"
)

type AnalyzeCmd struct {
	csvPath    string
	configPath string
	topYears   int
	reporter   *export.Reporter
}

func NewAnalyzeCmd(reporter *export.Reporter) *cobra.Command {
	ac := &AnalyzeCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a game catalog CSV",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.csvPath, "csv", "", "Path to the catalog CSV (full export or sample)")
	cmd.Flags().StringVar(&ac.configPath, "config", "", "Path to a YAML config file")
	cmd.Flags().IntVar(&ac.topYears, "top", 0, "Histogram rows to print (default from config, 5)")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, args []string) error {
	cfg := catalog.DefaultConfig()
	if ac.configPath != "" {
		loaded, err := catalog.LoadConfig(ac.configPath)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	if ac.csvPath != "" {
		cfg.CatalogPath = ac.csvPath
	}
	if ac.topYears > 0 {
		cfg.TopYears = ac.topYears
	}
	if cfg.CatalogPath == "" {
		return fmt.Errorf("no catalog path given: set --csv or catalog_path in the config file")
	}

	ds, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	report := catalog.NewAnalyzer(ds).Report()
	if cfg.TopYears > 0 && len(report.Years.Histogram) > cfg.TopYears {
		report.Years.Histogram = report.Years.Histogram[:cfg.TopYears]
	}

	return ac.reporter.Handle(&report)
}
