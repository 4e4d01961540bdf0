package catalog

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/catalog-atlas/pkg/models/api"
	catalogsvc "github.com/de-tools/catalog-atlas/pkg/services/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, content string) *Handler {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	ds, err := catalogsvc.Load(path)
	require.NoError(t, err)
	return NewHandler(catalogsvc.NewAnalyzer(ds))
}

func TestGetYears_UndeterminableYearsEncodeAsEmptyArray(t *testing.T) {
	h := newTestHandler(t,
		"Release date,Price,Windows,Mac,Linux\n"+
			"coming soon,0,true,false,false\n")

	rec := httptest.NewRecorder()
	h.GetYears(rec, httptest.NewRequest("GET", "/api/v1/catalog/years", nil))

	assert.JSONEq(t, `{"top_years":[],"histogram":[]}`, rec.Body.String())
}

func TestGetYears_IgnoresInvalidTopParameter(t *testing.T) {
	h := newTestHandler(t,
		"Release date,Price,Windows,Mac,Linux\n"+
			"2013,0,true,false,false\n"+
			"2016,0,true,false,false\n")

	rec := httptest.NewRecorder()
	h.GetYears(rec, httptest.NewRequest("GET", "/api/v1/catalog/years?top=bogus", nil))

	var got api.YearReport
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Len(t, got.Histogram, 2)
}

func TestGetSummary_EncodesAllFields(t *testing.T) {
	h := newTestHandler(t,
		"Release date,Price,Windows,Mac,Linux\n"+
			"2013,0,true,false,false\n"+
			"2016,9.99,true,false,false\n")

	rec := httptest.NewRecorder()
	h.GetSummary(rec, httptest.NewRequest("GET", "/api/v1/catalog/summary", nil))

	assert.JSONEq(t,
		`{"total":2,"free_count":1,"paid_count":1,"free_percent":50,"paid_percent":50}`,
		rec.Body.String())
}
