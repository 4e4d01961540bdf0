package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/de-tools/catalog-atlas/pkg/models/api"
	"github.com/de-tools/catalog-atlas/pkg/models/domain"
	catalogsvc "github.com/de-tools/catalog-atlas/pkg/services/catalog"
	"github.com/rs/zerolog"
)

type Handler struct {
	analyzer *catalogsvc.Analyzer
}

func NewHandler(analyzer *catalogsvc.Analyzer) *Handler {
	return &Handler{analyzer: analyzer}
}

// GetSummary serves the free-vs-paid breakdown.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	report := h.analyzer.FreeVsPaid()
	response := api.FreePaidReport{
		Total:       report.Total,
		FreeCount:   report.FreeCount,
		PaidCount:   report.PaidCount,
		FreePercent: report.FreePercent,
		PaidPercent: report.PaidPercent,
	}

	writeJSON(w, logger, "free vs paid summary", response)
}

// GetYears serves the top release years and the histogram. The optional
// `top` query parameter limits the histogram length.
func (h *Handler) GetYears(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	hist := h.analyzer.YearHistogram()
	if raw := r.URL.Query().Get("top"); raw != "" {
		if top, err := strconv.Atoi(raw); err == nil && top > 0 && top < len(hist) {
			hist = hist[:top]
		}
	}

	response := api.YearReport{
		TopYears:  h.analyzer.TopYears(),
		Histogram: make([]api.YearCount, 0, len(hist)),
	}
	if response.TopYears == nil {
		// An undeterminable year set is an empty list, not null.
		response.TopYears = []int{}
	}
	for _, yc := range hist {
		response.Histogram = append(response.Histogram, api.YearCount{Year: yc.Year, Count: yc.Count})
	}

	writeJSON(w, logger, "year report", response)
}

// GetOsReport serves per-platform compatibility, the most compatible
// platform and the multi-OS summary in one payload.
func (h *Handler) GetOsReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	dist := h.analyzer.OsCompatibility()
	most := h.analyzer.MostCompatibleOs()
	multi := h.analyzer.MultiOsSummary()

	response := api.OsReport{
		Total: dist.Total,
		Platforms: []api.OsSupport{
			toAPISupport(dist.Windows),
			toAPISupport(dist.Mac),
			toAPISupport(dist.Linux),
		},
		MostCompatible: toAPISupport(most),
		MultiOs: api.MultiOsSummary{
			MultiCount:    multi.MultiCount,
			MultiPercent:  multi.MultiPercent,
			SingleCount:   multi.SingleCount,
			SinglePercent: multi.SinglePercent,
			ZeroCount:     multi.ZeroCount,
			ZeroPercent:   multi.ZeroPercent,
		},
	}

	writeJSON(w, logger, "os report", response)
}

func toAPISupport(s domain.OsSupport) api.OsSupport {
	return api.OsSupport{Name: s.Name, Count: s.Count, Percent: s.Percent}
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, what string, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error().
			Err(err).
			Msgf("failed to encode %s", what)
	}
}
