package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"taxi_stats/internal/config"
	"taxi_stats/pkg/graph"
	"taxi_stats/pkg/logger"
	"taxi_stats/pkg/logger/console"
	"taxi_stats/pkg/report"
	"taxi_stats/pkg/trips"
)

func main() {
	config.LoadEnv()
	cfg := config.FromEnv()

	input := flag.String("input", cfg.DataFile, "Path to the trip dataset (CSV with header)")
	zonesPath := flag.String("zones", cfg.ZoneFile, "Path to the taxi zone lookup CSV")
	domains := flag.String("domains", "", "Comma-separated domains to benchmark (default: all)")
	scale := flag.Float64("edge-scale", cfg.EdgeScale, "Edge width of a route carrying every trip")
	seed := flag.Uint64("seed", cfg.Seed, "Pivot seed for the partition sort (0 = random)")
	export := flag.String("export", "", "Write the trip-flow graph as JSON to this path")
	largest := flag.Bool("largest-only", false, "Export only the largest connected component")
	debug := flag.Bool("debug", cfg.Debug, "Enable debug logging")
	flag.Parse()

	logger.Init(console.New(console.Params{Debug: *debug}))

	selected, err := parseDomains(*domains)
	if err != nil {
		logger.Fatal("Invalid -domains", "err", err)
	}

	start := time.Now()

	// Step 1: Read trips and zones.
	logger.Info("Reading trips", "path", *input)
	records, err := trips.ReadFile(*input)
	if err != nil {
		logger.Fatal("Failed to read dataset", "err", err)
	}
	logger.Info("Loading zone lookup", "path", *zonesPath)
	zones, err := trips.LoadZoneFile(*zonesPath)
	if err != nil {
		logger.Fatal("Failed to load zones", "err", err)
	}
	logger.Info("Loaded", "records", len(records), "zones", len(zones))

	// Step 2: Compute the report.
	r, err := report.Build(records, zones, report.Options{
		EdgeScale: *scale,
		Seed:      *seed,
		Domains:   selected,
	})
	if err != nil {
		logger.Fatal("Failed to build report", "err", err)
	}

	// Step 3: Print it.
	printReport(os.Stdout, r)

	// Step 4: Optional export for an external renderer.
	if *export != "" {
		e, err := r.Export(*largest)
		if err != nil {
			logger.Fatal("Failed to prepare export", "err", err)
		}
		if err := graph.WriteJSON(*export, e); err != nil {
			logger.Fatal("Failed to write export", "err", err)
		}
		logger.Info("Wrote graph export", "path", *export, "nodes", len(e.Nodes), "edges", len(e.Edges))
	}

	logger.Info("Done", "took", time.Since(start).Round(time.Millisecond), "run", r.RunID)
}

func parseDomains(s string) ([]trips.Domain, error) {
	if s == "" {
		return nil, nil
	}
	var out []trips.Domain
	for _, name := range strings.Split(s, ",") {
		d, err := trips.ParseDomain(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func printReport(w io.Writer, r *report.Report) {
	fmt.Fprintf(w, "Run %s: %d trips\n\n", r.RunID, r.Records)

	fmt.Fprintln(w, "Statistics:")
	for _, d := range trips.Domains {
		s := r.Stats[d]
		fmt.Fprintf(w, "  %-16s min %10.2f  max %10.2f  avg %10.2f\n", d, s.Min, s.Max, s.Avg)
	}
	fmt.Fprintf(w, "  %-16s min %10.2f  max %10.2f  avg %10.2f\n\n", "speed (km/h)", r.Speed.Min, r.Speed.Max, r.Speed.Avg)

	fmt.Fprintln(w, "Outgoing trips:")
	for _, name := range sortedKeys(r.TripCounts) {
		fmt.Fprintf(w, "  %-24s %d\n", name, r.TripCounts[name])
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Sorting benchmarks:")
	for _, c := range r.Benchmarks {
		fmt.Fprintf(w, "  %s\n", c)
	}
	fmt.Fprintln(w)

	f := r.Flow
	fmt.Fprintf(w, "Trip-flow graph: %d zones, %d routes, %d trips\n", f.Nodes, f.Edges, f.TotalWeight)
	for _, t := range f.Legend {
		fmt.Fprintf(w, "  Q%d (%.0f-%.0f)\n", t.Tier, t.Low, t.High)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Connected Components:")
	for i, comp := range r.Components {
		fmt.Fprintf(w, "  Component %d: %s\n", i+1, joinZones(comp))
	}
}
