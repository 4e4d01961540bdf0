package catalog

import (
	"sort"

	"github.com/de-tools/catalog-atlas/pkg/models/domain"
)

// Analyzer answers the catalog queries over one loaded Dataset. Every
// query is a single pass over the records and never fails; empty or
// all-invalid input degrades to a zeroed report. The Dataset is never
// mutated, so an Analyzer is safe to share.
type Analyzer struct {
	ds *Dataset
}

func NewAnalyzer(ds *Dataset) *Analyzer {
	return &Analyzer{ds: ds}
}

// FreeVsPaid classifies every record as free (normalized price <= 0,
// which also catches malformed prices) or paid.
func (a *Analyzer) FreeVsPaid() domain.FreePaidReport {
	total := a.ds.Len()
	if total == 0 {
		return domain.FreePaidReport{}
	}

	free := 0
	for _, rec := range a.ds.Records() {
		if parsePrice(rec["Price"]) <= 0 {
			free++
		}
	}
	paid := total - free

	return domain.FreePaidReport{
		Total:       total,
		FreeCount:   free,
		PaidCount:   paid,
		FreePercent: pct(free, total),
		PaidPercent: pct(paid, total),
	}
}

// TopYears returns the release year(s) with the most entries, sorted
// ascending. Ties are preserved. An empty slice means no record yielded
// a usable year.
func (a *Analyzer) TopYears() []int {
	counts := a.yearCounts()
	if len(counts) == 0 {
		return nil
	}

	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}

	var winners []int
	for y, c := range counts {
		if c == max {
			winners = append(winners, y)
		}
	}
	sort.Ints(winners)
	return winners
}

// YearHistogram returns every (year, count) pair sorted by count
// descending, then year ascending.
func (a *Analyzer) YearHistogram() []domain.YearCount {
	counts := a.yearCounts()

	hist := make([]domain.YearCount, 0, len(counts))
	for y, c := range counts {
		hist = append(hist, domain.YearCount{Year: y, Count: c})
	}
	sort.Slice(hist, func(i, j int) bool {
		if hist[i].Count != hist[j].Count {
			return hist[i].Count > hist[j].Count
		}
		return hist[i].Year < hist[j].Year
	})
	return hist
}

func (a *Analyzer) yearCounts() map[int]int {
	counts := make(map[int]int)
	for _, rec := range a.ds.Records() {
		if y, ok := extractYear(rec["Release date"]); ok {
			counts[y]++
		}
	}
	return counts
}

// OsCompatibility counts, per platform, the records flagged as
// supporting it, with percentages of the full catalog.
func (a *Analyzer) OsCompatibility() domain.OsCompatibility {
	total := a.ds.Len()
	w, m, l := 0, 0, 0
	for _, rec := range a.ds.Records() {
		if parseFlag(rec[domain.OsWindows]) {
			w++
		}
		if parseFlag(rec[domain.OsMac]) {
			m++
		}
		if parseFlag(rec[domain.OsLinux]) {
			l++
		}
	}

	return domain.OsCompatibility{
		Total:   total,
		Windows: domain.OsSupport{Name: domain.OsWindows, Count: w, Percent: pct(w, total)},
		Mac:     domain.OsSupport{Name: domain.OsMac, Count: m, Percent: pct(m, total)},
		Linux:   domain.OsSupport{Name: domain.OsLinux, Count: l, Percent: pct(l, total)},
	}
}

// MostCompatibleOs picks the platform with the highest count. Ties fall
// back to the higher percentage, then to the platform name ascending.
func (a *Analyzer) MostCompatibleOs() domain.OsSupport {
	dist := a.OsCompatibility()
	candidates := []domain.OsSupport{dist.Windows, dist.Mac, dist.Linux}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Count != candidates[j].Count {
			return candidates[i].Count > candidates[j].Count
		}
		if candidates[i].Percent != candidates[j].Percent {
			return candidates[i].Percent > candidates[j].Percent
		}
		return candidates[i].Name < candidates[j].Name
	})
	return candidates[0]
}

// MultiOsSummary buckets records by supported platform count: none,
// exactly one, or two and more.
func (a *Analyzer) MultiOsSummary() domain.MultiOsSummary {
	total := a.ds.Len()
	multi, single, zero := 0, 0, 0
	for _, rec := range a.ds.Records() {
		n := 0
		for _, os := range []string{domain.OsWindows, domain.OsMac, domain.OsLinux} {
			if parseFlag(rec[os]) {
				n++
			}
		}
		switch {
		case n >= 2:
			multi++
		case n == 1:
			single++
		default:
			zero++
		}
	}

	return domain.MultiOsSummary{
		Total:         total,
		MultiCount:    multi,
		MultiPercent:  pct(multi, total),
		SingleCount:   single,
		SinglePercent: pct(single, total),
		ZeroCount:     zero,
		ZeroPercent:   pct(zero, total),
	}
}

// Report runs every query and bundles the results for rendering.
func (a *Analyzer) Report() domain.CatalogReport {
	return domain.CatalogReport{
		Path:     a.ds.Path(),
		FreePaid: a.FreeVsPaid(),
		Years: domain.YearReport{
			TopYears:  a.TopYears(),
			Histogram: a.YearHistogram(),
		},
		Os:             a.OsCompatibility(),
		MostCompatible: a.MostCompatibleOs(),
		MultiOs:        a.MultiOsSummary(),
	}
}
