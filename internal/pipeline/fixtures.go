package pipeline

import (
	"context"
	"fmt"
	"math"

	"eye-stream-lab/internal/domain"
	"eye-stream-lab/internal/idhash"
	"eye-stream-lab/internal/storage"
)

// FixtureStores holds every store the fixture loader populates.
type FixtureStores struct {
	RecordingStore storage.RecordingStore
	GazeStore      storage.GazeSampleStore
	IMUStore       storage.IMUSampleStore
	FixationStore  storage.FixationStore
	SaccadeStore   storage.SaccadeStore
	BlinkStore     storage.BlinkStore
	MarkerStore    storage.MarkerStore
}

// Fixture recording parameters. Roughly two seconds of data at the
// device rates, with slight timing jitter so the effective rate differs
// from the nominal one.
const (
	fixtureWearer  = "subject-07"
	fixtureDevice  = "neon-2381"
	fixtureStartTs = int64(1_700_000_000_000_000_000)
	fixtureSpanNs  = int64(2_000_000_000)
)

// LoadFixtures populates stores with a synthetic demo recording and
// returns its recording id.
func LoadFixtures(ctx context.Context, stores FixtureStores) (string, error) {
	recordingID := idhash.ComputeRecordingID(fixtureWearer, fixtureDevice, fixtureStartTs)

	rec := &domain.Recording{
		RecordingID: recordingID,
		Wearer:      fixtureWearer,
		Device:      fixtureDevice,
		StartTs:     fixtureStartTs,
	}
	if err := stores.RecordingStore.Insert(ctx, rec); err != nil {
		return "", fmt.Errorf("insert recording: %w", err)
	}

	if err := stores.GazeStore.InsertBulk(ctx, fixtureGazeSamples(recordingID)); err != nil {
		return "", fmt.Errorf("insert gaze samples: %w", err)
	}
	if err := stores.IMUStore.InsertBulk(ctx, fixtureIMUSamples(recordingID)); err != nil {
		return "", fmt.Errorf("insert imu samples: %w", err)
	}
	if err := stores.FixationStore.InsertBulk(ctx, fixtureFixations(recordingID)); err != nil {
		return "", fmt.Errorf("insert fixations: %w", err)
	}
	if err := stores.SaccadeStore.InsertBulk(ctx, fixtureSaccades(recordingID)); err != nil {
		return "", fmt.Errorf("insert saccades: %w", err)
	}
	if err := stores.BlinkStore.InsertBulk(ctx, fixtureBlinks(recordingID)); err != nil {
		return "", fmt.Errorf("insert blinks: %w", err)
	}
	if err := stores.MarkerStore.InsertBulk(ctx, fixtureMarkers(recordingID)); err != nil {
		return "", fmt.Errorf("insert markers: %w", err)
	}

	return recordingID, nil
}

// fixtureGazeSamples generates ~200 Hz gaze data with deterministic
// jitter. The trace sweeps across the scene camera frame while the
// first fixation and blink windows set the id columns.
func fixtureGazeSamples(recordingID string) []*domain.GazeSample {
	step := int64(5_000_000) // 200 Hz
	n := int(fixtureSpanNs/step) + 1

	samples := make([]*domain.GazeSample, 0, n)
	for i := 0; i < n; i++ {
		// Jitter stays under half a step so ordering is preserved.
		jitter := int64(float64(step) * 0.1 * math.Sin(float64(i)*0.7))
		ts := fixtureStartTs + int64(i)*step + jitter
		t := float64(i) / float64(n-1)

		s := &domain.GazeSample{
			RecordingID: recordingID,
			Ts:          ts,
			X:           800 + 400*math.Sin(2*math.Pi*t),
			Y:           600 + 150*math.Cos(2*math.Pi*t),
			Worn:        true,
			Azimuth:     15 * math.Sin(2*math.Pi*t),
			Elevation:   -5 * math.Cos(2*math.Pi*t),
		}
		switch {
		case i < n/4:
			s.FixationID = domain.NullInt64Of(1)
		case i >= n/4 && i < n/4+10:
			s.BlinkID = domain.NullInt64Of(1)
		case i >= n/2:
			s.FixationID = domain.NullInt64Of(2)
		}
		samples = append(samples, s)
	}
	return samples
}

// fixtureIMUSamples generates ~110 Hz head movement data.
func fixtureIMUSamples(recordingID string) []*domain.IMUSample {
	step := int64(9_090_909) // 110 Hz
	n := int(fixtureSpanNs/step) + 1

	samples := make([]*domain.IMUSample, 0, n)
	for i := 0; i < n; i++ {
		ts := fixtureStartTs + int64(i)*step
		t := float64(i) / float64(n-1)

		samples = append(samples, &domain.IMUSample{
			RecordingID: recordingID,
			Ts:          ts,
			GyroX:       10 * math.Sin(4*math.Pi*t),
			GyroY:       8 * math.Cos(4*math.Pi*t),
			GyroZ:       2 * math.Sin(2*math.Pi*t),
			AccelX:      0.02 * math.Sin(2*math.Pi*t),
			AccelY:      0.01 * math.Cos(2*math.Pi*t),
			AccelZ:      1.0,
			Roll:        3 * math.Sin(2*math.Pi*t),
			Pitch:       -12 + 2*math.Cos(2*math.Pi*t),
			Yaw:         45 * t,
			QuatW:       1.0,
		})
	}
	return samples
}

func fixtureFixations(recordingID string) []*domain.Fixation {
	return []*domain.Fixation{
		{
			RecordingID: recordingID,
			FixationID:  1,
			StartTs:     fixtureStartTs,
			EndTs:       fixtureStartTs + 500_000_000,
			DurationMs:  500,
			X:           820, Y: 610,
			Azimuth: 2.1, Elevation: -4.8,
		},
		{
			RecordingID: recordingID,
			FixationID:  2,
			StartTs:     fixtureStartTs + 1_000_000_000,
			EndTs:       fixtureStartTs + 1_900_000_000,
			DurationMs:  900,
			X:           780, Y: 590,
			Azimuth: -1.4, Elevation: -5.2,
		},
	}
}

func fixtureSaccades(recordingID string) []*domain.Saccade {
	return []*domain.Saccade{
		{
			RecordingID:  recordingID,
			SaccadeID:    1,
			EndTs:        fixtureStartTs + 560_000_000,
			DurationMs:   42,
			AmplitudePx:  118.4,
			AmplitudeDeg: 4.2,
			MeanVelocity: 95.1,
			PeakVelocity: 210.6,
		},
	}
}

func fixtureBlinks(recordingID string) []*domain.Blink {
	return []*domain.Blink{
		{
			RecordingID: recordingID,
			BlinkID:     1,
			StartTs:     fixtureStartTs + 500_000_000,
			EndTs:       fixtureStartTs + 650_000_000,
			DurationMs:  150,
		},
	}
}

func fixtureMarkers(recordingID string) []*domain.Marker {
	return []*domain.Marker{
		{RecordingID: recordingID, Ts: fixtureStartTs + 100_000_000, Name: "task.start", Type: "interval"},
		{RecordingID: recordingID, Ts: fixtureStartTs + 1_500_000_000, Name: "stimulus.onset", Type: "event"},
		{RecordingID: recordingID, Ts: fixtureStartTs + 1_900_000_000, Name: "task.end", Type: "interval"},
	}
}
