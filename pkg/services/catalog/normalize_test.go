package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"empty", "", 0},
		{"whitespace only", "   ", 0},
		{"plain", "19.99", 19.99},
		{"dollar sign", "$19.99", 19.99},
		{"brazilian currency and comma", "R$ 0,00", 0},
		{"comma separator", "7,5", 7.5},
		{"currency with spaces", " R$ 12,34 ", 12.34},
		{"garbage", "garbage", 0},
		{"double separator", "12.34.56", 0},
		{"negative survives parsing", "-5", -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parsePrice(tt.raw))
		})
	}
}

func TestParseFlag(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"true", true},
		{"TRUE", true},
		{"  True  ", true},
		{"1", true},
		{"yes", true},
		{"Y", true},
		{"y", true},
		{"", false},
		{"no", false},
		{"false", false},
		{"0", false},
		{"sim", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, parseFlag(tt.raw))
		})
	}
}

func TestExtractYear(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  int
		found bool
	}{
		{"us long form", "Oct 21, 2008", 2008, true},
		{"slash form", "21/10/2008", 2008, true},
		{"iso form", "2017-03-09", 2017, true},
		{"last token wins", "from 1999 until 2001", 2001, true},
		{"last token wins even when smaller", "2010 vs 1995", 1995, true},
		{"below range", "1899", 0, false},
		{"above range", "2150", 0, false},
		{"out-of-range skipped, in-range kept", "2150 then 1985", 1985, true},
		{"no digits", "coming soon", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := extractYear(tt.raw)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPct(t *testing.T) {
	assert.Equal(t, 0.0, pct(3, 0), "zero total guards division by zero")
	assert.Equal(t, 100.0, pct(20, 20))
	assert.Equal(t, 33.33, pct(1, 3))
	assert.Equal(t, 66.67, pct(2, 3))
	assert.Equal(t, 90.0, pct(18, 20))
}
