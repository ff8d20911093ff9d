package report

import (
	"errors"
	"fmt"

	"taxi_stats/pkg/graph"
	"taxi_stats/pkg/logger"
	"taxi_stats/pkg/sorting"
	"taxi_stats/pkg/trips"
)

// Options controls how a Report is computed.
type Options struct {
	EdgeScale float64
	// Seed for pivot selection; zero means non-reproducible.
	Seed uint64
	// Domains to benchmark; nil means trips.Domains.
	Domains []trips.Domain
	// CountZones maps pickup location ids to display names; nil means
	// trips.DefaultCountZones.
	CountZones map[int]string
	// Clock for the sorting benchmark; nil means the wall clock.
	Clock sorting.Clock
}

// FlowSummary describes the trip-flow graph.
type FlowSummary struct {
	Nodes            uint32            `json:"nodes"`
	Edges            uint32            `json:"edges"`
	TotalWeight      uint64            `json:"total_weight"`
	Thresholds       graph.Thresholds  `json:"thresholds"`
	Legend           []graph.TierRange `json:"legend"`
	Components       int               `json:"components"`
	LargestComponent int               `json:"largest_component"`
}

// Report is the full result of one in-memory batch run.
type Report struct {
	RunID      string                                 `json:"run_id"`
	Records    int                                    `json:"records"`
	Stats      map[trips.Domain]trips.Summary[float64] `json:"stats"`
	Speed      trips.Summary[float64]                 `json:"speed_kmh"`
	TripCounts map[string]int                         `json:"trip_counts"`
	Benchmarks []sorting.Comparison                   `json:"benchmarks"`
	Flow       FlowSummary                            `json:"flow"`
	Components [][]graph.Zone                         `json:"components"`

	scale   float64
	graph   *graph.Graph
	display *graph.Display
	tiers   *graph.TierIndex
}

// Build computes every section of the report from parsed records and a zone
// lookup table.
func Build(records []trips.Record, zones map[string]graph.Zone, opts Options) (*Report, error) {
	if opts.EdgeScale == 0 {
		opts.EdgeScale = graph.DefaultEdgeScale
	}
	if opts.Domains == nil {
		opts.Domains = trips.Domains
	}
	if opts.CountZones == nil {
		opts.CountZones = trips.DefaultCountZones
	}

	bench, err := sorting.NewBenchmark(opts.Seed)
	if err != nil {
		return nil, err
	}
	if opts.Clock != nil {
		bench.Clock = opts.Clock
	}

	r := &Report{
		RunID:      bench.RunID,
		Records:    len(records),
		Stats:      trips.CalculateStats(records),
		Speed:      trips.SpeedStats(records),
		TripCounts: trips.CountTrips(records, opts.CountZones),
		scale:      opts.EdgeScale,
	}

	samples := make([]sorting.Sample, len(opts.Domains))
	for i, d := range opts.Domains {
		samples[i] = sorting.Sample{Label: d.String(), Values: trips.Extract(records, d)}
	}
	logger.Debug("Benchmarking sorts", "domains", len(samples), "run", r.RunID)
	r.Benchmarks = bench.CompareAll(samples)

	r.graph = graph.Build(trips.Aggregate(records, zones))
	r.Components = graph.Components(r.graph)
	r.Flow = FlowSummary{
		Nodes:       r.graph.NumNodes,
		Edges:       r.graph.NumEdges,
		TotalWeight: r.graph.TotalWeight(),
		Components:  len(r.Components),
	}
	if len(r.Components) > 0 {
		r.Flow.LargestComponent = len(r.Components[0])
	}

	r.display, err = graph.ComputeDisplay(r.graph, opts.EdgeScale)
	switch {
	case errors.Is(err, graph.ErrEmptyGraph):
		logger.Warn("No trips resolved to known zones; trip-flow graph is empty")
	case err != nil:
		return nil, fmt.Errorf("compute display metrics: %w", err)
	default:
		r.Flow.Thresholds = r.display.Thresholds
		r.Flow.Legend = r.display.Thresholds.Legend()
		r.tiers = graph.NewTierIndex(r.graph, r.display)
	}
	return r, nil
}

// Graph returns the trip-flow graph.
func (r *Report) Graph() *graph.Graph {
	return r.graph
}

// Tier returns the zones in volume tier 1..4.
func (r *Report) Tier(tier int) ([]graph.Zone, error) {
	if r.tiers == nil {
		return nil, graph.ErrEmptyGraph
	}
	return r.tiers.Tier(tier)
}

// Export returns the renderer-facing view of the graph, optionally limited to
// its largest component.
func (r *Report) Export(largestOnly bool) (graph.Export, error) {
	if r.display == nil {
		return graph.Export{}, graph.ErrEmptyGraph
	}
	if !largestOnly {
		return graph.NewExport(r.graph, r.display, r.Components), nil
	}
	sub := graph.Subgraph(r.graph, graph.LargestComponent(r.graph))
	d, err := graph.ComputeDisplay(sub, r.scale)
	if err != nil {
		return graph.Export{}, err
	}
	return graph.NewExport(sub, d, graph.Components(sub)), nil
}
