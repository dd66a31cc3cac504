package database

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	testDBConnString string
)

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()

	if !testing.Short() {
		ctx := context.Background()
		var connStr string
		connStr, terminate = setupContainer(ctx)
		testDBConnString = connStr
	}

	code := m.Run()

	if terminate != nil {
		terminate()
	}

	os.Exit(code)
}

func setupContainer(ctx context.Context) (string, func()) {
	// Handle potential panics from testcontainers
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupContainer: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", func() {}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		pgContainer.Terminate(ctx)
		return "", func() {}
	}

	return connStr, func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}
}

func requireDB(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}
}

// TestPool_ReleasesConnections checks that both successful and failing queries hand
// their connection back to the pool
func TestPool_ReleasesConnections(t *testing.T) {
	requireDB(t)

	pool, err := NewPool(testDBConnString, 5, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	defer pool.Close()

	ctx := t.Context()
	require.NoError(t, Migrate(ctx, pool))

	tests := []struct {
		name    string
		query   string
		wantErr bool
	}{
		{"count states", "SELECT count(*) FROM cultivation_states", false},
		{"count logs", "SELECT count(*) FROM cultivation_session_logs", false},
		{"missing table", "SELECT count(*) FROM cultivation_missing", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 10; i++ {
				conn, err := pool.Acquire(ctx)
				require.NoError(t, err, "acquire %d", i)

				var n int64
				err = conn.QueryRow(ctx, tt.query).Scan(&n)
				conn.Release()

				if tt.wantErr {
					assert.Error(t, err)
				} else {
					assert.NoError(t, err)
				}
			}
			assert.Equal(t, int32(0), pool.Stat().AcquiredConns())
		})
	}
}

// TestMigrate_Idempotent applies the embedded migrations twice and checks the tables exist
func TestMigrate_Idempotent(t *testing.T) {
	requireDB(t)

	pool, err := NewPool(testDBConnString, 5, 1*time.Minute, 5*time.Minute)
	require.NoError(t, err)
	defer pool.Close()

	ctx := t.Context()
	require.NoError(t, Migrate(ctx, pool))
	require.NoError(t, Migrate(ctx, pool))

	for _, table := range []string{"cultivation_states", "cultivation_session_logs", "element_profiles"} {
		var exists bool
		err := pool.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = $1)", table).Scan(&exists)
		require.NoError(t, err)
		assert.True(t, exists, table)
	}
}

func TestNewPool_InvalidConnString(t *testing.T) {
	_, err := NewPool("://not-a-url", 5, time.Minute, time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedToParseConnString)
}
