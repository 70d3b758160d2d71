package reporting

import (
	"context"
	"fmt"
	"time"

	"eye-stream-lab/internal/domain"
	"eye-stream-lab/internal/storage"
	"eye-stream-lab/internal/stream"
)

// Generator produces recording summary reports from stored data.
type Generator struct {
	recordingStore storage.RecordingStore
	gazeStore      storage.GazeSampleStore
	imuStore       storage.IMUSampleStore
	fixationStore  storage.FixationStore
	saccadeStore   storage.SaccadeStore
	blinkStore     storage.BlinkStore
	markerStore    storage.MarkerStore
	now            func() time.Time // Injectable clock for deterministic output
}

// GeneratorOptions holds the stores a Generator reads from.
type GeneratorOptions struct {
	RecordingStore storage.RecordingStore
	GazeStore      storage.GazeSampleStore
	IMUStore       storage.IMUSampleStore
	FixationStore  storage.FixationStore
	SaccadeStore   storage.SaccadeStore
	BlinkStore     storage.BlinkStore
	MarkerStore    storage.MarkerStore
}

// NewGenerator creates a new report generator.
func NewGenerator(opts GeneratorOptions) *Generator {
	return &Generator{
		recordingStore: opts.RecordingStore,
		gazeStore:      opts.GazeStore,
		imuStore:       opts.IMUStore,
		fixationStore:  opts.FixationStore,
		saccadeStore:   opts.SaccadeStore,
		blinkStore:     opts.BlinkStore,
		markerStore:    opts.MarkerStore,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// WithClock sets a custom clock function for deterministic output.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Generate produces a complete summary report for one recording.
func (g *Generator) Generate(ctx context.Context, recordingID string) (*Report, error) {
	rec, err := g.recordingStore.GetByID(ctx, recordingID)
	if err != nil {
		return nil, fmt.Errorf("load recording: %w", err)
	}

	report := &Report{
		GeneratedAt: g.now(),
		RecordingID: rec.RecordingID,
		Wearer:      rec.Wearer,
		Device:      rec.Device,
		StartTs:     rec.StartTs,
	}

	// Gaze stream
	gazeSamples, err := g.gazeStore.GetByRecordingID(ctx, recordingID)
	if err != nil {
		return nil, fmt.Errorf("load gaze samples: %w", err)
	}
	if len(gazeSamples) > 0 {
		row, err := summarizeStream(domain.StreamGaze, domain.GazeTable(gazeSamples))
		if err != nil {
			return nil, err
		}
		report.Streams = append(report.Streams, row)
	}

	// IMU stream
	imuSamples, err := g.imuStore.GetByRecordingID(ctx, recordingID)
	if err != nil {
		return nil, fmt.Errorf("load imu samples: %w", err)
	}
	if len(imuSamples) > 0 {
		row, err := summarizeStream(domain.StreamIMU, domain.IMUTable(imuSamples))
		if err != nil {
			return nil, err
		}
		report.Streams = append(report.Streams, row)
	}

	events, err := g.summarizeEvents(ctx, recordingID)
	if err != nil {
		return nil, err
	}
	report.Events = events

	return report, nil
}

// summarizeStream derives the attribute row for one stream table.
func summarizeStream(kind domain.StreamKind, tbl *domain.Table) (StreamSummaryRow, error) {
	st, err := stream.New(kind, tbl)
	if err != nil {
		return StreamSummaryRow{}, fmt.Errorf("build %s stream: %w", kind, err)
	}
	return StreamSummaryRow{
		Kind:          string(kind),
		SampleCount:   tbl.Len(),
		FirstTs:       st.FirstTs,
		LastTs:        st.LastTs,
		Duration:      st.Duration,
		NominalRate:   st.NominalRate,
		EffectiveRate: st.EffectiveRate,
	}, nil
}

func (g *Generator) summarizeEvents(ctx context.Context, recordingID string) (EventSummary, error) {
	var summary EventSummary

	fixations, err := g.fixationStore.GetByRecordingID(ctx, recordingID)
	if err != nil {
		return summary, fmt.Errorf("load fixations: %w", err)
	}
	summary.Fixations = len(fixations)
	if len(fixations) > 0 {
		var total int64
		for _, f := range fixations {
			total += f.DurationMs
		}
		summary.MeanFixationMs = float64(total) / float64(len(fixations))
	}

	saccades, err := g.saccadeStore.GetByRecordingID(ctx, recordingID)
	if err != nil {
		return summary, fmt.Errorf("load saccades: %w", err)
	}
	summary.Saccades = len(saccades)

	blinks, err := g.blinkStore.GetByRecordingID(ctx, recordingID)
	if err != nil {
		return summary, fmt.Errorf("load blinks: %w", err)
	}
	summary.Blinks = len(blinks)
	if len(blinks) > 0 {
		var total int64
		for _, b := range blinks {
			total += b.DurationMs
		}
		summary.MeanBlinkMs = float64(total) / float64(len(blinks))
	}

	markers, err := g.markerStore.GetByRecordingID(ctx, recordingID)
	if err != nil {
		return summary, fmt.Errorf("load markers: %w", err)
	}
	summary.Markers = len(markers)

	return summary, nil
}
