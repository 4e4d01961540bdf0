// Package sample extracts a reproducible random subset of a catalog
// file, keeping the original header and column order. Useful for
// running the analyzer against a small slice of a multi-gigabyte
// export.
package sample

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"

	"github.com/de-tools/catalog-atlas/pkg/services/catalog"
)

// Write loads the catalog at srcPath, draws a seeded random sample of
// size rows and writes it to dstPath. The source must hold at least
// twice the sample size so the draw is a genuine subset rather than
// the file's head.
func Write(srcPath, dstPath string, size int, seed int64) error {
	if size <= 0 {
		return fmt.Errorf("sample: size must be positive, got %d", size)
	}

	ds, err := catalog.Load(srcPath)
	if err != nil {
		return fmt.Errorf("sample: load source: %w", err)
	}
	if ds.Len() < 2*size {
		return fmt.Errorf("sample: source has %d rows, need at least %d to sample %d",
			ds.Len(), 2*size, size)
	}

	indexes := rand.New(rand.NewSource(seed)).Perm(ds.Len())[:size]

	f, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("sample: create file %q: %w", dstPath, err)
	}

	if err := writeRows(f, ds, indexes); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func writeRows(f *os.File, ds *catalog.Dataset, indexes []int) error {
	w := csv.NewWriter(f)
	if err := w.Write(ds.Columns()); err != nil {
		return fmt.Errorf("sample: write header: %w", err)
	}

	records := ds.Records()
	fields := make([]string, len(ds.Columns()))
	for _, idx := range indexes {
		for i, col := range ds.Columns() {
			fields[i] = records[idx][col]
		}
		if err := w.Write(fields); err != nil {
			return fmt.Errorf("sample: write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("sample: flush: %w", err)
	}
	return nil
}
