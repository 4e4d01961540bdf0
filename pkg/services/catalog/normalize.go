package catalog

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Field normalizers. Catalog exports are full of real-world noise, so
// every normalizer is total: malformed input degrades to a safe default
// instead of returning an error.

var yearToken = regexp.MustCompile(`19\d{2}|20\d{2}`)

const (
	minYear = 1970
	maxYear = 2100
)

var acceptedTrue = map[string]struct{}{
	"true": {},
	"1":    {},
	"yes":  {},
	"y":    {},
}

// parsePrice converts a raw price string to a float. It strips currency
// markers ("R$", "$") and accepts a comma decimal separator. Empty or
// unparseable input yields 0.
func parsePrice(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, "R$", "")
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// parseFlag reports whether a raw value represents true. Only "true",
// "1", "yes" and "y" count, case-insensitively after trimming.
func parseFlag(raw string) bool {
	s := strings.ToLower(strings.TrimSpace(raw))
	_, ok := acceptedTrue[s]
	return ok
}

// extractYear scans a free-form date string for 4-digit year tokens in
// [1970, 2100]. When several tokens qualify, the last one in scan order
// wins. The second return is false when no token qualifies.
func extractYear(raw string) (int, bool) {
	year, found := 0, false
	for _, tok := range yearToken.FindAllString(raw, -1) {
		y, err := strconv.Atoi(tok)
		if err != nil {
			continue
		}
		if y >= minYear && y <= maxYear {
			year, found = y, true
		}
	}
	return year, found
}

// roundPct rounds a percentage to 2 decimal places, half to even.
func roundPct(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}

// pct computes count/total as a rounded percentage, 0 when total is 0.
func pct(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return roundPct(float64(count) / float64(total) * 100)
}
