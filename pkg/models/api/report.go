package api

type FreePaidReport struct {
	Total       int     `json:"total"`
	FreeCount   int     `json:"free_count"`
	PaidCount   int     `json:"paid_count"`
	FreePercent float64 `json:"free_percent"`
	PaidPercent float64 `json:"paid_percent"`
}

type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

type YearReport struct {
	TopYears  []int       `json:"top_years"`
	Histogram []YearCount `json:"histogram"`
}

type OsSupport struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

type OsReport struct {
	Total          int            `json:"total"`
	Platforms      []OsSupport    `json:"platforms"`
	MostCompatible OsSupport      `json:"most_compatible"`
	MultiOs        MultiOsSummary `json:"multi_os"`
}

type MultiOsSummary struct {
	MultiCount    int     `json:"multi_count"`
	MultiPercent  float64 `json:"multi_percent"`
	SingleCount   int     `json:"single_count"`
	SinglePercent float64 `json:"single_percent"`
	ZeroCount     int     `json:"zero_count"`
	ZeroPercent   float64 `json:"zero_percent"`
}
