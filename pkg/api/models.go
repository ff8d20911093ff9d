package api

import (
	"taxi_stats/pkg/graph"
	"taxi_stats/pkg/report"
	"taxi_stats/pkg/sorting"
	"taxi_stats/pkg/trips"
)

// StatsResponse is the JSON response for GET /api/v1/stats.
type StatsResponse struct {
	RunID      string                                  `json:"run_id"`
	Records    int                                     `json:"records"`
	Stats      map[trips.Domain]trips.Summary[float64] `json:"stats"`
	Speed      trips.Summary[float64]                  `json:"speed_kmh"`
	TripCounts map[string]int                          `json:"trip_counts"`
}

// BenchmarksResponse is the JSON response for GET /api/v1/benchmarks.
type BenchmarksResponse struct {
	RunID      string               `json:"run_id"`
	Benchmarks []sorting.Comparison `json:"benchmarks"`
}

// GraphResponse is the JSON response for GET /api/v1/graph.
type GraphResponse = report.FlowSummary

// ComponentsResponse is the JSON response for GET /api/v1/graph/components.
type ComponentsResponse struct {
	Total      int            `json:"total"`
	Components [][]graph.Zone `json:"components"`
}

// TierResponse is the JSON response for GET /api/v1/graph/tiers/:tier.
type TierResponse struct {
	Tier  int          `json:"tier"`
	Zones []graph.Zone `json:"zones"`
}

// ErrorResponse is the JSON response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// HealthResponse is the JSON response for GET /api/v1/health.
type HealthResponse struct {
	Status string `json:"status"`
}
