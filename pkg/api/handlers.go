package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"taxi_stats/pkg/graph"
	"taxi_stats/pkg/report"
)

// Handlers serves a precomputed report. The report is never modified after
// start-up, so handlers need no locking.
type Handlers struct {
	report *report.Report
}

// NewHandlers creates handlers over r.
func NewHandlers(r *report.Report) *Handlers {
	return &Handlers{report: r}
}

type tierParams struct {
	Tier int `param:"tier" validate:"min=1,max=4"`
}

type componentsParams struct {
	// Limit caps the number of components returned; 0 means all.
	Limit int `query:"limit" validate:"min=0"`
}

// HandleHealth handles GET /api/v1/health.
func (h *Handlers) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// HandleStats handles GET /api/v1/stats.
func (h *Handlers) HandleStats(c echo.Context) error {
	r := h.report
	return c.JSON(http.StatusOK, StatsResponse{
		RunID:      r.RunID,
		Records:    r.Records,
		Stats:      r.Stats,
		Speed:      r.Speed,
		TripCounts: r.TripCounts,
	})
}

// HandleBenchmarks handles GET /api/v1/benchmarks.
func (h *Handlers) HandleBenchmarks(c echo.Context) error {
	return c.JSON(http.StatusOK, BenchmarksResponse{
		RunID:      h.report.RunID,
		Benchmarks: h.report.Benchmarks,
	})
}

// HandleGraph handles GET /api/v1/graph.
func (h *Handlers) HandleGraph(c echo.Context) error {
	if h.report.Flow.Nodes == 0 {
		return writeError(c, http.StatusNotFound, "empty_graph", "")
	}
	return c.JSON(http.StatusOK, h.report.Flow)
}

// HandleComponents handles GET /api/v1/graph/components.
func (h *Handlers) HandleComponents(c echo.Context) error {
	var p componentsParams
	if err := c.Bind(&p); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_request", "limit")
	}
	if err := c.Validate(&p); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_request", "limit")
	}
	if h.report.Flow.Nodes == 0 {
		return writeError(c, http.StatusNotFound, "empty_graph", "")
	}

	comps := h.report.Components
	if p.Limit > 0 && p.Limit < len(comps) {
		comps = comps[:p.Limit]
	}
	return c.JSON(http.StatusOK, ComponentsResponse{
		Total:      len(h.report.Components),
		Components: comps,
	})
}

// HandleTier handles GET /api/v1/graph/tiers/:tier.
func (h *Handlers) HandleTier(c echo.Context) error {
	var p tierParams
	if err := c.Bind(&p); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_tier", "tier")
	}
	if err := c.Validate(&p); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_tier", "tier")
	}

	zones, err := h.report.Tier(p.Tier)
	switch {
	case errors.Is(err, graph.ErrEmptyGraph):
		return writeError(c, http.StatusNotFound, "empty_graph", "")
	case errors.Is(err, graph.ErrTierOutOfRange):
		return writeError(c, http.StatusBadRequest, "invalid_tier", "tier")
	case err != nil:
		return writeError(c, http.StatusInternalServerError, "internal_error", "")
	}
	if zones == nil {
		zones = []graph.Zone{}
	}
	return c.JSON(http.StatusOK, TierResponse{Tier: p.Tier, Zones: zones})
}

func writeError(c echo.Context, status int, code, field string) error {
	return c.JSON(status, ErrorResponse{Error: code, Field: field})
}
