package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/signalsfoundry/orbitron-station/internal/config"
	"github.com/signalsfoundry/orbitron-station/internal/logging"
	"github.com/signalsfoundry/orbitron-station/internal/observability"
	"github.com/signalsfoundry/orbitron-station/station"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML station config (defaults to $ORBITRON_CONFIG)")
	metricsDump := flag.Bool("metrics-dump", false, "Write Prometheus metrics to stderr when the run finishes")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "orbitron: %v\n", err)
		os.Exit(1)
	}

	log := logging.New(cfg.LoggerConfig())

	shutdown, err := observability.InitTracing(ctx, observability.TracingConfig{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Tracing.ServiceName,
		SampleRatio: cfg.Tracing.SampleRatio,
	}, log)
	if err != nil {
		log.Error(ctx, "failed to initialise tracing", logging.String("error", err.Error()))
		os.Exit(1)
	}
	defer observability.ShutdownWithTimeout(ctx, shutdown, log)

	reg := prometheus.NewRegistry()
	collector, err := observability.NewStationCollector(reg)
	if err != nil {
		log.Error(ctx, "failed to initialise metrics collector", logging.String("error", err.Error()))
		os.Exit(1)
	}

	opts := []station.Option{
		station.WithOutput(os.Stdout),
		station.WithLogger(log),
		station.WithMetricsRecorder(collector),
	}

	orbitron, err := station.New(ctx, station.Config{
		SecurityCode: cfg.Station.SecurityCode,
		OxygenLevel:  cfg.Station.OxygenLevel,
		BcryptCost:   cfg.Station.BcryptCost,
	}, opts...)
	if err != nil {
		log.Error(ctx, "failed to build station", logging.String("error", err.Error()))
		os.Exit(1)
	}
	missionControl := station.NewMissionControl(opts...)

	runScenario(ctx, orbitron, missionControl, cfg.Station.SecurityCode)

	if *metricsDump {
		if err := collector.WriteText(os.Stderr); err != nil {
			log.Warn(ctx, "metrics dump failed", logging.String("error", err.Error()))
		}
	}
}
