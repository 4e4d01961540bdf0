package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/de-tools/catalog-atlas/pkg/models/domain"
)

var (
	// ErrNotFound means the catalog path does not resolve to a file.
	ErrNotFound = errors.New("catalog file not found")
	// ErrInvalidFormat means the file has no header, lacks a required
	// column, or contains no data rows.
	ErrInvalidFormat = errors.New("invalid catalog format")
)

// RequiredColumns are the header names the analyzer depends on. Extra
// columns are preserved but ignored by analysis.
var RequiredColumns = []string{"Release date", "Price", domain.OsWindows, domain.OsMac, domain.OsLinux}

// Dataset is the in-memory, read-only view of one loaded catalog file.
// Records keep insertion order and every column of the source.
type Dataset struct {
	path    string
	columns []string
	records []domain.Record
}

// Load reads the CSV at path into a Dataset. It fails with ErrNotFound
// when the path does not exist and with ErrInvalidFormat when the file
// has no header row, misses a required column, or holds zero data rows.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to open catalog %q: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: missing header row", ErrInvalidFormat)
	}

	cols := make(map[string]struct{}, len(header))
	for _, c := range header {
		cols[c] = struct{}{}
	}
	for _, required := range RequiredColumns {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: missing required column %q", ErrInvalidFormat, required)
		}
	}

	var records []domain.Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil && !errors.Is(err, csv.ErrFieldCount) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}

		// Short rows get empty strings so every record carries the
		// full column set.
		rec := make(domain.Record, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = row[i]
			} else {
				rec[col] = ""
			}
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no data rows", ErrInvalidFormat)
	}

	return &Dataset{path: path, columns: header, records: records}, nil
}

// Path returns the originating file path.
func (d *Dataset) Path() string { return d.path }

// Columns returns the header in source order.
func (d *Dataset) Columns() []string { return d.columns }

// Records returns the loaded rows in source order. Callers must not
// mutate them.
func (d *Dataset) Records() []domain.Record { return d.records }

// Len returns the number of data rows.
func (d *Dataset) Len() int { return len(d.records) }
