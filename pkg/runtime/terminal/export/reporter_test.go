package export

import (
	"bytes"
	"testing"

	"github.com/de-tools/catalog-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandle_RendersAllSections(t *testing.T) {
	report := &domain.CatalogReport{
		Path: "sample_20.csv",
		FreePaid: domain.FreePaidReport{
			Total: 20, FreeCount: 5, PaidCount: 15,
			FreePercent: 25.0, PaidPercent: 75.0,
		},
		Years: domain.YearReport{
			TopYears: []int{2013, 2016},
			Histogram: []domain.YearCount{
				{Year: 2013, Count: 4},
				{Year: 2016, Count: 4},
				{Year: 1998, Count: 1},
			},
		},
		Os: domain.OsCompatibility{
			Total:   20,
			Windows: domain.OsSupport{Name: "Windows", Count: 18, Percent: 90.0},
			Mac:     domain.OsSupport{Name: "Mac", Count: 4, Percent: 20.0},
			Linux:   domain.OsSupport{Name: "Linux", Count: 1, Percent: 5.0},
		},
		MostCompatible: domain.OsSupport{Name: "Windows", Count: 18, Percent: 90.0},
		MultiOs: domain.MultiOsSummary{
			Total: 20, MultiCount: 3, MultiPercent: 15.0,
			SingleCount: 17, SinglePercent: 85.0,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf).Handle(report))

	out := buf.String()
	assert.Contains(t, out, "Catalog: sample_20.csv")
	assert.Contains(t, out, "Total: 20 | Free: 5 (25.00%) | Paid: 15 (75.00%)")
	assert.Contains(t, out, "Year(s) with most releases: 2013, 2016")
	assert.Contains(t, out, "2013: 4")
	assert.Contains(t, out, "Most compatible: Windows (18 titles; 90.00%)")
	assert.Contains(t, out, "Multi-OS: 3 (15.00%)")
}

func TestHandle_NoDeterminableYears(t *testing.T) {
	report := &domain.CatalogReport{Path: "catalog.csv"}

	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf).Handle(report))

	assert.Contains(t, buf.String(), "Unable to determine release years.")
}
