package clickhouse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eye-stream-lab/internal/domain"
	"eye-stream-lab/internal/storage"
)

func TestIMUSampleStore_InsertBulk(t *testing.T) {
	conn, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewIMUSampleStore(conn)
	ctx := context.Background()

	err := store.InsertBulk(ctx, nil)
	assert.NoError(t, err)

	samples := []*domain.IMUSample{
		{
			RecordingID: "rec-1",
			Ts:          1_000_000_000,
			GyroX:       0.1, GyroY: 0.2, GyroZ: 0.3,
			AccelX: 9.8, AccelY: 0.0, AccelZ: 0.1,
			Roll: 1.0, Pitch: 2.0, Yaw: 3.0,
			QuatW: 1.0, QuatX: 0.0, QuatY: 0.0, QuatZ: 0.0,
		},
	}

	err = store.InsertBulk(ctx, samples)
	require.NoError(t, err)

	got, err := store.GetByRecordingID(ctx, "rec-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "rec-1", got[0].RecordingID)
	assert.Equal(t, int64(1_000_000_000), got[0].Ts)
	assert.Equal(t, 0.1, got[0].GyroX)
	assert.Equal(t, 9.8, got[0].AccelX)
	assert.Equal(t, 3.0, got[0].Yaw)
	assert.Equal(t, 1.0, got[0].QuatW)
}

func TestIMUSampleStore_InsertBulk_DuplicateKey(t *testing.T) {
	conn, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewIMUSampleStore(conn)
	ctx := context.Background()

	samples := []*domain.IMUSample{
		{RecordingID: "rec-1", Ts: 1000, GyroX: 0.1},
	}

	err := store.InsertBulk(ctx, samples)
	require.NoError(t, err)

	err = store.InsertBulk(ctx, samples)
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)
}

func TestIMUSampleStore_GetByTimeRange(t *testing.T) {
	conn, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewIMUSampleStore(conn)
	ctx := context.Background()

	samples := []*domain.IMUSample{
		{RecordingID: "rec-1", Ts: 1000, Roll: 1},
		{RecordingID: "rec-1", Ts: 2000, Roll: 2},
		{RecordingID: "rec-1", Ts: 3000, Roll: 3},
	}

	err := store.InsertBulk(ctx, samples)
	require.NoError(t, err)

	got, err := store.GetByTimeRange(ctx, "rec-1", 2000, 3000)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 2.0, got[0].Roll)
	assert.Equal(t, 3.0, got[1].Roll)
}
