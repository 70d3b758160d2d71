package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eye-stream-lab/internal/domain"
	"eye-stream-lab/internal/storage"
	"eye-stream-lab/internal/storage/memory"
	"eye-stream-lab/internal/timeseries"
)

func setupPipeline(t *testing.T) (*Pipeline, FixtureStores, string, context.Context) {
	t.Helper()
	ctx := context.Background()

	stores := FixtureStores{
		RecordingStore: memory.NewRecordingStore(),
		GazeStore:      memory.NewGazeSampleStore(),
		IMUStore:       memory.NewIMUSampleStore(),
		FixationStore:  memory.NewFixationStore(),
		SaccadeStore:   memory.NewSaccadeStore(),
		BlinkStore:     memory.NewBlinkStore(),
		MarkerStore:    memory.NewMarkerStore(),
	}

	recordingID, err := LoadFixtures(ctx, stores)
	require.NoError(t, err)

	p := New(Options{
		RecordingStore: stores.RecordingStore,
		GazeStore:      stores.GazeStore,
		IMUStore:       stores.IMUStore,
	})

	return p, stores, recordingID, ctx
}

func TestPipeline_Run(t *testing.T) {
	p, _, recordingID, ctx := setupPipeline(t)

	result, err := p.Run(ctx, recordingID, RunConfig{
		FloatPolicy: timeseries.PolicyLinear,
		OtherPolicy: timeseries.PolicyNearest,
	})
	require.NoError(t, err)

	assert.Equal(t, recordingID, result.RecordingID)
	assert.Greater(t, result.GazeRowsIn, 0)
	assert.Greater(t, result.IMURowsIn, 0)

	// Resampling onto the nominal grid drops the partial trailing
	// interval, so the output has at least spanned-seconds*rate rows.
	assert.GreaterOrEqual(t, result.GazeRowsOut, 395)
	assert.LessOrEqual(t, result.GazeRowsOut, result.GazeRowsIn)
	assert.GreaterOrEqual(t, result.IMURowsOut, 215)

	assert.Empty(t, result.WrittenBackID)
}

func TestPipeline_Run_CropWindow(t *testing.T) {
	p, _, recordingID, ctx := setupPipeline(t)

	tmin, tmax := 0.5, 1.5
	result, err := p.Run(ctx, recordingID, RunConfig{
		CropMin:     &tmin,
		CropMax:     &tmax,
		FloatPolicy: timeseries.PolicyLinear,
		OtherPolicy: timeseries.PolicyNearest,
	})
	require.NoError(t, err)

	// One-second window at 200 Hz, give or take jitter at the edges
	assert.InDelta(t, 200, result.GazeRowsOut, 5)
	assert.InDelta(t, 110, result.IMURowsOut, 5)
}

func TestPipeline_Run_WriteBack(t *testing.T) {
	p, stores, recordingID, ctx := setupPipeline(t)

	result, err := p.Run(ctx, recordingID, RunConfig{
		FloatPolicy: timeseries.PolicyLinear,
		OtherPolicy: timeseries.PolicyNearest,
		WriteBack:   true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.WrittenBackID)
	assert.NotEqual(t, recordingID, result.WrittenBackID)

	written, err := stores.GazeStore.GetByRecordingID(ctx, result.WrittenBackID)
	require.NoError(t, err)
	require.Len(t, written, result.GazeRowsOut)

	// Resampled rows sit on the fixed nominal grid
	step := written[1].Ts - written[0].Ts
	assert.Equal(t, int64(5_000_000), step)
	for i := 1; i < len(written); i++ {
		assert.Equal(t, step, written[i].Ts-written[i-1].Ts)
	}

	// Raw archive rows are untouched
	raw, err := stores.GazeStore.GetByRecordingID(ctx, recordingID)
	require.NoError(t, err)
	assert.Len(t, raw, result.GazeRowsIn)
}

func TestPipeline_Run_UnknownRecording(t *testing.T) {
	p, _, _, ctx := setupPipeline(t)

	_, err := p.Run(ctx, "missing", RunConfig{
		FloatPolicy: timeseries.PolicyLinear,
		OtherPolicy: timeseries.PolicyNearest,
	})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPipeline_Run_InvalidCropWindow(t *testing.T) {
	p, _, recordingID, ctx := setupPipeline(t)

	tmin, tmax := 1.5, 0.5
	_, err := p.Run(ctx, recordingID, RunConfig{
		CropMin:     &tmin,
		CropMax:     &tmax,
		FloatPolicy: timeseries.PolicyLinear,
		OtherPolicy: timeseries.PolicyNearest,
	})
	assert.ErrorIs(t, err, timeseries.ErrInvalidRange)
}

func TestLoadFixtures_Deterministic(t *testing.T) {
	ctx := context.Background()

	first := FixtureStores{
		RecordingStore: memory.NewRecordingStore(),
		GazeStore:      memory.NewGazeSampleStore(),
		IMUStore:       memory.NewIMUSampleStore(),
		FixationStore:  memory.NewFixationStore(),
		SaccadeStore:   memory.NewSaccadeStore(),
		BlinkStore:     memory.NewBlinkStore(),
		MarkerStore:    memory.NewMarkerStore(),
	}
	second := FixtureStores{
		RecordingStore: memory.NewRecordingStore(),
		GazeStore:      memory.NewGazeSampleStore(),
		IMUStore:       memory.NewIMUSampleStore(),
		FixationStore:  memory.NewFixationStore(),
		SaccadeStore:   memory.NewSaccadeStore(),
		BlinkStore:     memory.NewBlinkStore(),
		MarkerStore:    memory.NewMarkerStore(),
	}

	idA, err := LoadFixtures(ctx, first)
	require.NoError(t, err)
	idB, err := LoadFixtures(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, idA, idB)

	gazeA, err := first.GazeStore.GetByRecordingID(ctx, idA)
	require.NoError(t, err)
	gazeB, err := second.GazeStore.GetByRecordingID(ctx, idB)
	require.NoError(t, err)
	require.Equal(t, len(gazeA), len(gazeB))
	assert.Equal(t, gazeA[0].Ts, gazeB[0].Ts)
	assert.Equal(t, gazeA[len(gazeA)-1].X, gazeB[len(gazeB)-1].X)
}

func TestFixtureGazeSamples_StrictlyIncreasing(t *testing.T) {
	samples := fixtureGazeSamples("rec-1")
	for i := 1; i < len(samples); i++ {
		if samples[i].Ts <= samples[i-1].Ts {
			t.Fatalf("timestamps not strictly increasing at %d: %d <= %d",
				i, samples[i].Ts, samples[i-1].Ts)
		}
	}

	tbl := domain.GazeTable(samples)
	require.NoError(t, tbl.Validate())
}
