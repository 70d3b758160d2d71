package clickhouse

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB creates a ClickHouse container and returns a connection.
// Returns a cleanup function that must be called when done.
func setupTestDB(t *testing.T) (*Conn, func()) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	// Start ClickHouse container
	req := testcontainers.ContainerRequest{
		Image:        "clickhouse/clickhouse-server:24.1-alpine",
		ExposedPorts: []string{"9000/tcp", "8123/tcp"},
		WaitingFor: wait.ForAll(
			wait.ForLog("Application: Ready for connections").
				WithStartupTimeout(60 * time.Second),
			wait.ForListeningPort("9000/tcp"),
		),
		Env: map[string]string{
			"CLICKHOUSE_DB":       "test",
			"CLICKHOUSE_USER":     "default",
			"CLICKHOUSE_PASSWORD": "",
		},
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	// Get native port (9000)
	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "9000")
	require.NoError(t, err)

	dsn := fmt.Sprintf("clickhouse://%s:%s/test", host, port.Port())

	// Connect to ClickHouse
	conn, err := NewConn(ctx, dsn)
	require.NoError(t, err)

	// Apply schema. The embedded migration runner lives in the migrations
	// package, which imports this one, so the tests create the tables inline.
	runInlineMigrations(t, conn)

	cleanup := func() {
		conn.Close()
		_ = container.Terminate(ctx)
	}

	return conn, cleanup
}

// runInlineMigrations applies the sample archive schema directly.
// Must be kept in sync with migrations/clickhouse/001_samples.sql.
func runInlineMigrations(t *testing.T, conn *Conn) {
	t.Helper()
	ctx := context.Background()

	err := conn.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS gaze_samples (
			recording_id String,
			ts           Int64,
			x            Float64,
			y            Float64,
			worn         UInt8,
			fixation_id  Nullable(Int64),
			blink_id     Nullable(Int64),
			azimuth      Float64,
			elevation    Float64
		) ENGINE = MergeTree()
		ORDER BY (recording_id, ts)
	`)
	require.NoError(t, err)

	err = conn.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS imu_samples (
			recording_id String,
			ts           Int64,
			gyro_x       Float64,
			gyro_y       Float64,
			gyro_z       Float64,
			accel_x      Float64,
			accel_y      Float64,
			accel_z      Float64,
			roll         Float64,
			pitch        Float64,
			yaw          Float64,
			quat_w       Float64,
			quat_x       Float64,
			quat_y       Float64,
			quat_z       Float64
		) ENGINE = MergeTree()
		ORDER BY (recording_id, ts)
	`)
	require.NoError(t, err)
}
