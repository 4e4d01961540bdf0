package commands

import (
	"github.com/de-tools/catalog-atlas/pkg/services/sample"

	"github.com/spf13/cobra"
)

type SampleCmd struct {
	csvPath string
	outPath string
	size    int
	seed    int64
}

// NewSampleCmd extracts a reproducible random sample of a catalog,
// handy for iterating against a slice of the full export.
func NewSampleCmd() *cobra.Command {
	sc := &SampleCmd{}
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write a random sample of a catalog CSV",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.csvPath, "csv", "", "Path to the source catalog CSV")
	cmd.Flags().StringVar(&sc.outPath, "out", "sample_20.csv", "Destination path for the sample")
	cmd.Flags().IntVar(&sc.size, "size", 20, "Number of rows to sample")
	cmd.Flags().Int64Var(&sc.seed, "seed", 42, "Random seed, fixed for reproducible samples")

	_ = cmd.MarkFlagRequired("csv")

	return cmd
}

func (sc *SampleCmd) run(cmd *cobra.Command, args []string) error {
	if err := sample.Write(sc.csvPath, sc.outPath, sc.size, sc.seed); err != nil {
		return err
	}
	cmd.Printf("Sample of %d rows written to %s\n", sc.size, sc.outPath)
	return nil
}
