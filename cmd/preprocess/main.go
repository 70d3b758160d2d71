// Package main provides the preprocessing entry point.
// Executes: fixture load → crop → resample → summary printout.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"eye-stream-lab/internal/observability"
	"eye-stream-lab/internal/pipeline"
	"eye-stream-lab/internal/storage/memory"
	"eye-stream-lab/internal/timeseries"
)

func main() {
	// Parse flags
	cropMin := flag.Float64("crop-min", -1, "Session window start in seconds relative to stream start (-1 = unset)")
	cropMax := flag.Float64("crop-max", -1, "Session window end in seconds relative to stream start (-1 = unset)")
	writeBack := flag.Bool("write-back", false, "Write resampled gaze samples back to the archive")
	metricsAddr := flag.String("metrics-addr", "", "Address for the Prometheus /metrics endpoint (empty = disabled)")
	verbose := flag.Bool("verbose", false, "Verbose output")
	flag.Parse()

	// Create context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		fmt.Printf("\nReceived signal %v, cancelling...\n", sig)
		cancel()
	}()

	// Optional metrics endpoint
	if *metricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", observability.Handler())
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
				fmt.Fprintf(os.Stderr, "Metrics server error: %v\n", err)
			}
		}()
	}

	// Create all memory stores and load the demo recording
	stores := pipeline.FixtureStores{
		RecordingStore: memory.NewRecordingStore(),
		GazeStore:      memory.NewGazeSampleStore(),
		IMUStore:       memory.NewIMUSampleStore(),
		FixationStore:  memory.NewFixationStore(),
		SaccadeStore:   memory.NewSaccadeStore(),
		BlinkStore:     memory.NewBlinkStore(),
		MarkerStore:    memory.NewMarkerStore(),
	}

	recordingID, err := pipeline.LoadFixtures(ctx, stores)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading fixtures: %v\n", err)
		os.Exit(1)
	}
	if *verbose {
		fmt.Printf("Loaded fixture recording %s\n", recordingID)
	}

	cfg := pipeline.RunConfig{
		FloatPolicy: timeseries.PolicyLinear,
		OtherPolicy: timeseries.PolicyNearest,
		WriteBack:   *writeBack,
	}
	if *cropMin >= 0 {
		cfg.CropMin = cropMin
	}
	if *cropMax >= 0 {
		cfg.CropMax = cropMax
	}

	p := pipeline.New(pipeline.Options{
		RecordingStore: stores.RecordingStore,
		GazeStore:      stores.GazeStore,
		IMUStore:       stores.IMUStore,
		Verbose:        *verbose,
	})

	fmt.Println("=== Preprocess ===")
	result, err := p.Run(ctx, recordingID, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Pipeline error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Preprocessing completed:\n")
	fmt.Printf("  Recording: %s\n", result.RecordingID)
	fmt.Printf("  Gaze rows: %d in, %d out\n", result.GazeRowsIn, result.GazeRowsOut)
	fmt.Printf("  IMU rows:  %d in, %d out\n", result.IMURowsIn, result.IMURowsOut)
	if result.WrittenBackID != "" {
		fmt.Printf("  Resampled gaze archived under: %s\n", result.WrittenBackID)
	}
}
