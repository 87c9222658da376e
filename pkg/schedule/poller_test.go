package schedule

import (
	"context"
	stdsql "database/sql"
	"errors"
	"os"
	"sync"
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
	"github.com/parallax-dev/parallax/ent/schedulerun"
	"github.com/parallax-dev/parallax/pkg/database"
	"github.com/parallax-dev/parallax/pkg/workflow"
)

// newTestDB creates a test database client with CI/local environment
// detection, mirroring the database package's harness.
func newTestDB(t *testing.T) *database.Client {
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

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	err = entClient.Schema.Create(ctx)
	require.NoError(t, err)

	err = database.CreatePartialIndexes(ctx, drv)
	require.NoError(t, err)

	client := database.NewClientFromEnt(entClient, db)

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

type countingRunner struct {
	mu    sync.Mutex
	count int
	err   error
}

func (r *countingRunner) Execute(ctx context.Context, patternName string, input map[string]any) (*workflow.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.count++
	if r.err != nil {
		return nil, r.err
	}
	return &workflow.Result{
		ExecutionID: "exec-1",
		Pattern:     patternName,
		State:       workflow.StateCompleted,
	}, nil
}

func (r *countingRunner) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

func createDueSchedule(t *testing.T, client *database.Client, id string, maxRuns int) *ent.Schedule {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()

	create := client.Schedule.Create().
		SetID(id).
		SetName(id).
		SetPatternName("report-pipeline").
		SetInput(map[string]any{"scope": "all"}).
		SetIntervalMs(60_000).
		SetTimezone("UTC").
		SetNextRunAt(now.Add(-time.Minute)).
		SetCreatedAt(now).
		SetUpdatedAt(now)
	if maxRuns > 0 {
		create.SetMaxRuns(maxRuns)
	}
	sched, err := create.Save(ctx)
	require.NoError(t, err)
	return sched
}

func TestPoller_MaxRunsFiresOnceThenCompletes(t *testing.T) {
	client := newTestDB(t)
	ctx := context.Background()
	runner := &countingRunner{}
	p := NewPoller(client, runner, nil, nil, nil, nil)

	createDueSchedule(t, client, "sched-once", 1)

	require.NoError(t, p.dispatchDue(ctx))
	p.runs.Wait()
	assert.Equal(t, 1, runner.calls())

	sched, err := client.Schedule.Get(ctx, "sched-once")
	require.NoError(t, err)
	assert.Equal(t, 1, sched.RunCount)
	assert.True(t, sched.Completed, "run budget exhausted after one firing")
	assert.Equal(t, "completed", sched.LastRunStatus)
	require.NotNil(t, sched.LastRunAt)

	// A completed schedule stays retired on later rounds.
	require.NoError(t, p.dispatchDue(ctx))
	p.runs.Wait()
	assert.Equal(t, 1, runner.calls())

	runs, err := client.ScheduleRun.Query().
		Where(schedulerun.ScheduleIDEQ("sched-once")).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, schedulerun.StatusCompleted, runs[0].Status)
	assert.Equal(t, "exec-1", runs[0].ExecutionID)
}

func TestPoller_FailedRunRecordsStatus(t *testing.T) {
	client := newTestDB(t)
	ctx := context.Background()
	runner := &countingRunner{err: errors.New("no healthy runtime")}
	p := NewPoller(client, runner, nil, nil, nil, nil)

	createDueSchedule(t, client, "sched-fail", 1)

	require.NoError(t, p.dispatchDue(ctx))
	p.runs.Wait()
	assert.Equal(t, 1, runner.calls())

	sched, err := client.Schedule.Get(ctx, "sched-fail")
	require.NoError(t, err)
	assert.Equal(t, "failed", sched.LastRunStatus)

	runs, err := client.ScheduleRun.Query().
		Where(schedulerun.ScheduleIDEQ("sched-fail")).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, schedulerun.StatusFailed, runs[0].Status)
	require.NotNil(t, runs[0].Error)
	assert.Contains(t, *runs[0].Error, "no healthy runtime")
}

func TestPoller_PastEndAtRetiresWithoutRunning(t *testing.T) {
	client := newTestDB(t)
	ctx := context.Background()
	runner := &countingRunner{}
	p := NewPoller(client, runner, nil, nil, nil, nil)

	now := time.Now().UTC()
	_, err := client.Schedule.Create().
		SetID("sched-expired").
		SetName("sched-expired").
		SetPatternName("report-pipeline").
		SetIntervalMs(60_000).
		SetTimezone("UTC").
		SetNextRunAt(now.Add(-time.Hour)).
		SetEndAt(now.Add(-time.Minute)).
		SetCreatedAt(now).
		SetUpdatedAt(now).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, p.dispatchDue(ctx))
	p.runs.Wait()
	assert.Equal(t, 0, runner.calls(), "expired schedule retires without firing")

	sched, err := client.Schedule.Get(ctx, "sched-expired")
	require.NoError(t, err)
	assert.True(t, sched.Completed)
	assert.Equal(t, 0, sched.RunCount)
}
