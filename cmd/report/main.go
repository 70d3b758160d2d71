// Package main generates the recording summary report files.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"eye-stream-lab/internal/pipeline"
	"eye-stream-lab/internal/reporting"
	"eye-stream-lab/internal/storage/memory"
)

func main() {
	// Parse flags
	outputDir := flag.String("output-dir", "docs", "Output directory for generated files")
	flag.Parse()

	// Create context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		fmt.Printf("\nReceived signal %v, cancelling...\n", sig)
		cancel()
	}()

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

	gen := reporting.NewGenerator(reporting.GeneratorOptions{
		RecordingStore: stores.RecordingStore,
		GazeStore:      stores.GazeStore,
		IMUStore:       stores.IMUStore,
		FixationStore:  stores.FixationStore,
		SaccadeStore:   stores.SaccadeStore,
		BlinkStore:     stores.BlinkStore,
		MarkerStore:    stores.MarkerStore,
	})

	report, err := gen.Generate(ctx, recordingID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Report error: %v\n", err)
		os.Exit(1)
	}

	if err := reporting.WriteFiles(*outputDir, report); err != nil {
		fmt.Fprintf(os.Stderr, "Write error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Report generated:")
	fmt.Printf("  - %s/%s\n", *outputDir, reporting.SummaryFileName)
	fmt.Printf("  - %s/%s\n", *outputDir, reporting.StreamsFileName)
}
