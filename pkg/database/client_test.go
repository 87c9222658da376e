package database

import (
	"context"
	stdsql "database/sql"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/parallax-dev/parallax/ent"
	"github.com/parallax-dev/parallax/ent/schedule"
)

// newTestClient creates a test database client with CI/local environment detection.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: spins up a testcontainer with PostgreSQL.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	ciDatabaseURL := os.Getenv("CI_DATABASE_URL")

	var connStr string

	if ciDatabaseURL != "" {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		connStr = ciDatabaseURL
	} else {
		t.Log("Using testcontainers for PostgreSQL")
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		var err2 error
		connStr, err2 = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err2)
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	// Auto-migration for tests, then the partial indexes the production
	// migration path also creates.
	err = entClient.Schema.Create(ctx)
	require.NoError(t, err)

	err = CreatePartialIndexes(ctx, drv)
	require.NoError(t, err)

	client := NewClientFromEnt(entClient, db)

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	health, err := client.Health(ctx)
	require.NoError(t, err)
	assert.True(t, health.Healthy)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestScheduleRoundTrip(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	next := now.Add(time.Minute)

	created, err := client.Schedule.Create().
		SetID("sched-1").
		SetName("nightly report").
		SetPatternName("report-pipeline").
		SetInput(map[string]any{"scope": "all"}).
		SetCron("0 2 * * *").
		SetTimezone("UTC").
		SetNextRunAt(next).
		SetCreatedAt(now).
		SetUpdatedAt(now).
		Save(ctx)
	require.NoError(t, err)
	assert.True(t, created.Enabled)
	assert.Equal(t, 0, created.RunCount)

	// Due query mirrors the poller's.
	due, err := client.Schedule.Query().
		Where(
			schedule.EnabledEQ(true),
			schedule.CompletedEQ(false),
			schedule.NextRunAtLTE(next),
		).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "sched-1", due[0].ID)
	assert.Equal(t, map[string]any{"scope": "all"}, due[0].Input)

	run, err := client.ScheduleRun.Create().
		SetID("run-1").
		SetScheduleID("sched-1").
		SetStartedAt(now).
		Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, "running", string(run.Status))

	// Cascade: deleting the schedule removes its runs.
	err = client.Schedule.DeleteOneID("sched-1").Exec(ctx)
	require.NoError(t, err)

	n, err := client.ScheduleRun.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	}
	for _, key := range envKeys {
		os.Unsetenv(key)
	}
	t.Cleanup(func() {
		for _, key := range envKeys {
			os.Unsetenv(key)
		}
	})

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 5432, cfg.Port)
	assert.Equal(t, "parallax", cfg.Database)
	assert.Equal(t, 10, cfg.MaxOpenConns)

	os.Setenv("DB_PORT", "invalid")
	_, err = LoadConfigFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid DB_PORT")
}
