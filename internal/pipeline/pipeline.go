// Package pipeline orchestrates preprocessing of a recording: load the
// sample archive, assemble typed streams, crop to a session window,
// resample to the nominal grid and optionally write the result back.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"eye-stream-lab/internal/domain"
	"eye-stream-lab/internal/idhash"
	"eye-stream-lab/internal/observability"
	"eye-stream-lab/internal/storage"
	"eye-stream-lab/internal/stream"
	"eye-stream-lab/internal/timeseries"
)

// deriveProcessedID returns the archive key under which resampled rows
// are stored. Keeping it distinct from the source recording id avoids
// colliding with the raw samples on (recording_id, ts).
func deriveProcessedID(recordingID string, kind domain.StreamKind) string {
	return idhash.ComputeStreamID(recordingID, kind)
}

// Options holds the stores a Pipeline works against.
type Options struct {
	RecordingStore storage.RecordingStore
	GazeStore      storage.GazeSampleStore
	IMUStore       storage.IMUSampleStore
	Verbose        bool
}

// RunConfig controls one preprocessing run.
type RunConfig struct {
	// Session window in seconds relative to each stream's first
	// timestamp. Nil bounds extend to the data bounds.
	CropMin *float64
	CropMax *float64

	// Interpolation policies for the resampling step.
	FloatPolicy timeseries.Policy
	OtherPolicy timeseries.Policy

	// When set, the resampled gaze samples are written back to the
	// archive under a derived recording id.
	WriteBack bool
}

// Result summarizes one preprocessing run.
type Result struct {
	RecordingID string

	GazeRowsIn    int
	GazeRowsOut   int
	IMURowsIn     int
	IMURowsOut    int
	WrittenBackID string // empty unless write-back ran
}

// Pipeline loads, crops and resamples recording streams.
type Pipeline struct {
	opts Options
}

// New creates a Pipeline.
func New(opts Options) *Pipeline {
	return &Pipeline{opts: opts}
}

// Run preprocesses one recording. Both device streams are cropped to the
// configured window and resampled onto their nominal grids; a stream
// with no archived samples is skipped.
func (p *Pipeline) Run(ctx context.Context, recordingID string, cfg RunConfig) (*Result, error) {
	start := time.Now()

	rec, err := p.opts.RecordingStore.GetByID(ctx, recordingID)
	if err != nil {
		observability.RecordPipelineRun("error", time.Since(start).Seconds())
		return nil, fmt.Errorf("load recording: %w", err)
	}

	result := &Result{RecordingID: rec.RecordingID}

	if err := p.runGaze(ctx, rec.RecordingID, cfg, result); err != nil {
		observability.RecordPipelineRun("error", time.Since(start).Seconds())
		return nil, err
	}
	if err := p.runIMU(ctx, rec.RecordingID, cfg, result); err != nil {
		observability.RecordPipelineRun("error", time.Since(start).Seconds())
		return nil, err
	}

	observability.RecordPipelineRun("ok", time.Since(start).Seconds())
	observability.DefaultMetrics.LastSuccessfulRun.Set(float64(time.Now().Unix()))
	return result, nil
}

func (p *Pipeline) runGaze(ctx context.Context, recordingID string, cfg RunConfig, result *Result) error {
	samples, err := p.opts.GazeStore.GetByRecordingID(ctx, recordingID)
	if err != nil {
		return fmt.Errorf("load gaze samples: %w", err)
	}
	if len(samples) == 0 {
		return nil
	}
	result.GazeRowsIn = len(samples)

	st, err := stream.New(domain.StreamGaze, domain.GazeTable(samples))
	if err != nil {
		return fmt.Errorf("build gaze stream: %w", err)
	}

	out, err := p.process(st, cfg)
	if err != nil {
		return fmt.Errorf("process gaze stream: %w", err)
	}
	result.GazeRowsOut = out.Len()
	if p.opts.Verbose {
		fmt.Printf("  gaze: %d rows in, %d out (effective %.2f Hz)\n",
			result.GazeRowsIn, result.GazeRowsOut, st.EffectiveRate)
	}

	if cfg.WriteBack {
		derivedID := deriveProcessedID(recordingID, domain.StreamGaze)
		processed, err := domain.GazeSamples(derivedID, out)
		if err != nil {
			return fmt.Errorf("convert resampled gaze table: %w", err)
		}
		if err := p.opts.GazeStore.InsertBulk(ctx, processed); err != nil {
			return fmt.Errorf("write back gaze samples: %w", err)
		}
		observability.RecordSamplesStored(string(domain.StreamGaze), len(processed))
		result.WrittenBackID = derivedID
	}

	return nil
}

func (p *Pipeline) runIMU(ctx context.Context, recordingID string, cfg RunConfig, result *Result) error {
	samples, err := p.opts.IMUStore.GetByRecordingID(ctx, recordingID)
	if err != nil {
		return fmt.Errorf("load imu samples: %w", err)
	}
	if len(samples) == 0 {
		return nil
	}
	result.IMURowsIn = len(samples)

	st, err := stream.New(domain.StreamIMU, domain.IMUTable(samples))
	if err != nil {
		return fmt.Errorf("build imu stream: %w", err)
	}

	out, err := p.process(st, cfg)
	if err != nil {
		return fmt.Errorf("process imu stream: %w", err)
	}
	result.IMURowsOut = out.Len()
	if p.opts.Verbose {
		fmt.Printf("  imu:  %d rows in, %d out (effective %.2f Hz)\n",
			result.IMURowsIn, result.IMURowsOut, st.EffectiveRate)
	}

	return nil
}

// process crops the stream to the session window and resamples it onto
// the nominal grid.
func (p *Pipeline) process(st *stream.Stream, cfg RunConfig) (*domain.Table, error) {
	kind := string(st.Kind)

	if cfg.CropMin != nil || cfg.CropMax != nil {
		if _, err := st.CropByTime(cfg.CropMin, cfg.CropMax, true); err != nil {
			observability.RecordOperationError("crop", kind)
			return nil, fmt.Errorf("crop: %w", err)
		}
		observability.RecordCrop(kind, st.Table().Len())
	}

	out, err := st.Resample(nil, cfg.FloatPolicy, cfg.OtherPolicy, false)
	if err != nil {
		observability.RecordOperationError("resample", kind)
		return nil, fmt.Errorf("resample: %w", err)
	}
	observability.RecordResample(kind, out.Len())

	return out, nil
}
