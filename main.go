package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robertof/go-factory-demos/device"
	"github.com/robertof/go-factory-demos/document"
	"github.com/robertof/go-factory-demos/metrics"
	"github.com/robertof/go-factory-demos/utils"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.DurationFieldUnit = time.Second
	zerolog.TimeFieldFormat = time.RFC3339Nano

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "15:04:05.000",
	})

	registry, err := newDeviceRegistry()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to register device families")
	}

	cfg := ParseArgs(registry)

	if cfg.Trace || os.Getenv("TRACE") != "" {
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	} else if cfg.Debug || os.Getenv("DEBUG") != "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if cfg.ListFamilies {
		doFamilyDiscovery(registry)
		return
	}

	log.Info().
		Array("Devices", utils.ToZeroLogArray(cfg.Devices)).
		Array("Documents", utils.ToZeroLogArray(cfg.Documents)).
		Stringer("FanSpeed", cfg.FanSpeed).
		Int("Parallelism", cfg.Parallelism).
		Msg("Starting with the specified configuration")

	promRegistry := prometheus.NewRegistry()
	document.RegisterMetrics(promRegistry)

	devices, err := runDeviceDemo(registry, cfg.Devices, cfg.FanSpeed)
	if err != nil {
		log.Fatal().Err(err).Msg("Device demo failed")
	}

	metrics.RegisterCollector(
		func() []device.Device {
			return devices
		},
		promRegistry,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := runDocumentDemo(ctx, cfg.Documents, cfg.Parallelism); err != nil {
		log.Fatal().Err(err).Msg("Error reading data from doc")
	}

	if cfg.BindAddress == "" {
		return
	}

	log.Info().
		Str("ListenAddress", cfg.BindAddress).
		Msg("Starting Prometheus server")

	http.Handle("/metrics", promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}))

	if err := http.ListenAndServe(cfg.BindAddress, nil); err != nil {
		log.Fatal().Err(err).Msg("Unable to bind on requested address")
	}
}
