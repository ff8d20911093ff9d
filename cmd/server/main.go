package main

import (
	"flag"
	"os"
	"time"

	"taxi_stats/internal/config"
	"taxi_stats/pkg/api"
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
	addr := flag.String("addr", cfg.Addr, "HTTP listen address")
	seed := flag.Uint64("seed", cfg.Seed, "Pivot seed for the partition sort (0 = random)")
	corsOrigin := flag.String("cors-origin", "", "CORS allowed origin (empty = same-origin)")
	debug := flag.Bool("debug", cfg.Debug, "Enable debug logging")
	flag.Parse()

	logger.Init(console.New(console.Params{Debug: *debug}))

	start := time.Now()

	records, err := trips.ReadFile(*input)
	if err != nil {
		logger.Fatal("Failed to read dataset", "err", err)
	}
	zones, err := trips.LoadZoneFile(*zonesPath)
	if err != nil {
		logger.Fatal("Failed to load zones", "err", err)
	}

	r, err := report.Build(records, zones, report.Options{EdgeScale: cfg.EdgeScale, Seed: *seed})
	if err != nil {
		logger.Fatal("Failed to build report", "err", err)
	}
	logger.Info("Ready", "records", r.Records, "zones", r.Flow.Nodes, "took", time.Since(start).Round(time.Millisecond))

	srvCfg := api.DefaultConfig(*addr)
	srvCfg.CORSOrigin = *corsOrigin
	srv := api.NewServer(srvCfg, api.NewHandlers(r))

	if err := api.ListenAndServe(srv, srvCfg.Addr); err != nil {
		logger.Error("Server stopped", "err", err)
		os.Exit(1)
	}
}
