package domain

// Record is one row of the source catalog, keyed by column name.
// Values are the raw strings from the file; normalization happens at
// query time.
type Record map[string]string

const (
	OsWindows = "Windows"
	OsMac     = "Mac"
	OsLinux   = "Linux"
)

// FreePaidReport is the free-vs-paid breakdown of the catalog.
type FreePaidReport struct {
	Total       int
	FreeCount   int
	PaidCount   int
	FreePercent float64
	PaidPercent float64
}

// YearCount is one bucket of the release-year histogram.
type YearCount struct {
	Year  int
	Count int
}

// YearReport holds the year(s) with the most releases plus the full
// histogram sorted by count descending, year ascending.
type YearReport struct {
	TopYears  []int
	Histogram []YearCount
}

// OsSupport is the per-platform compatibility figure.
type OsSupport struct {
	Name    string
	Count   int
	Percent float64
}

type OsCompatibility struct {
	Total   int
	Windows OsSupport
	Mac     OsSupport
	Linux   OsSupport
}

// MultiOsSummary buckets records by how many platforms they support:
// none, exactly one, or two and more.
type MultiOsSummary struct {
	Total         int
	MultiCount    int
	MultiPercent  float64
	SingleCount   int
	SinglePercent float64
	ZeroCount     int
	ZeroPercent   float64
}

// CatalogReport aggregates every query result for one dataset; the
// terminal reporter renders it as a single document.
type CatalogReport struct {
	Path           string
	FreePaid       FreePaidReport
	Years          YearReport
	Os             OsCompatibility
	MostCompatible OsSupport
	MultiOs        MultiOsSummary
}
