package schedule

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/parallax-dev/parallax/ent"
	entschedule "github.com/parallax-dev/parallax/ent/schedule"
	"github.com/parallax-dev/parallax/ent/schedulerun"
	"github.com/parallax-dev/parallax/pkg/audit"
	"github.com/parallax-dev/parallax/pkg/cluster"
	"github.com/parallax-dev/parallax/pkg/database"
	"github.com/parallax-dev/parallax/pkg/workflow"
)

const (
	pollInterval    = time.Second
	runLockResource = "scheduler:run"
	runLockTTL      = 30 * time.Second
	maxErrorLen     = 2000
)

// Runner executes workflows on behalf of the poller.
type Runner interface {
	Execute(ctx context.Context, patternName string, input map[string]any) (*workflow.Result, error)
}

// Poller fires due schedules. Only the cluster leader polls, and each poll
// round additionally runs under a distributed lock, so a due time fires at
// most once across all replicas. A schedule's row is advanced before its
// workflow starts; a crash mid-run loses the run rather than doubling it.
type Poller struct {
	db      *database.Client
	runner  Runner
	elector *cluster.Elector
	locks   *cluster.LockService
	audit   audit.Sink
	logger  *slog.Logger

	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
	runs     sync.WaitGroup
}

// NewPoller creates a schedule poller. A nil elector or lock service
// disables the corresponding gate (single-instance deployments).
func NewPoller(db *database.Client, runner Runner, elector *cluster.Elector, locks *cluster.LockService, sink audit.Sink, logger *slog.Logger) *Poller {
	if logger == nil {
		logger = slog.Default()
	}
	if sink == nil {
		sink = audit.NopSink{}
	}
	return &Poller{
		db:      db,
		runner:  runner,
		elector: elector,
		locks:   locks,
		audit:   sink,
		logger:  logger,
		done:    make(chan struct{}),
	}
}

// Start launches the poll loop.
func (p *Poller) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)
	go p.run(ctx)
	p.logger.Info("Schedule poller started", "interval", pollInterval)
}

// Stop halts polling and waits for in-flight runs to finish recording.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		if p.cancel != nil {
			p.cancel()
		}
		<-p.done
		p.runs.Wait()
		p.logger.Info("Schedule poller stopped")
	})
}

func (p *Poller) run(ctx context.Context) {
	defer close(p.done)
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	if p.elector != nil && !p.elector.IsLeader() {
		return
	}
	if p.locks == nil {
		if err := p.dispatchDue(ctx); err != nil {
			p.logger.Error("Schedule dispatch failed", "error", err)
		}
		return
	}
	_, err := p.locks.TryWithLock(ctx, runLockResource, cluster.LockOptions{TTL: runLockTTL},
		func(ctx context.Context, _ *cluster.Lock) error {
			return p.dispatchDue(ctx)
		})
	if err != nil {
		p.logger.Error("Schedule dispatch failed", "error", err)
	}
}

// dispatchDue fires every enabled schedule whose next run time has passed.
func (p *Poller) dispatchDue(ctx context.Context) error {
	now := time.Now().UTC()
	due, err := p.db.Schedule.Query().
		Where(
			entschedule.EnabledEQ(true),
			entschedule.CompletedEQ(false),
			entschedule.NextRunAtLTE(now),
		).
		All(ctx)
	if err != nil {
		return err
	}
	for _, sched := range due {
		if err := p.fire(ctx, sched, now); err != nil {
			p.logger.Error("Failed to fire schedule",
				"schedule_id", sched.ID,
				"error", err)
		}
	}
	return nil
}

// fire advances the schedule's bookkeeping and starts its workflow in the
// background.
func (p *Poller) fire(ctx context.Context, sched *ent.Schedule, now time.Time) error {
	// Past the run window: retire without running.
	if sched.EndAt != nil && now.After(*sched.EndAt) {
		_, err := p.db.Schedule.UpdateOneID(sched.ID).
			SetCompleted(true).
			SetUpdatedAt(now).
			Save(ctx)
		return err
	}

	next, err := p.advance(sched, now)
	if err != nil {
		return err
	}
	newCount := sched.RunCount + 1
	completed := sched.MaxRuns != nil && newCount >= *sched.MaxRuns
	if !completed && sched.EndAt != nil && next.After(*sched.EndAt) {
		completed = true
	}

	update := p.db.Schedule.UpdateOneID(sched.ID).
		SetRunCount(newCount).
		SetLastRunAt(now).
		SetNextRunAt(next).
		SetCompleted(completed).
		SetUpdatedAt(now)
	if _, err := update.Save(ctx); err != nil {
		return err
	}

	run, err := p.db.ScheduleRun.Create().
		SetID(uuid.NewString()).
		SetScheduleID(sched.ID).
		SetStartedAt(now).
		Save(ctx)
	if err != nil {
		return err
	}

	p.logger.Info("Firing schedule",
		"schedule_id", sched.ID,
		"run_id", run.ID,
		"pattern", sched.PatternName,
		"run_count", newCount,
		"next_run_at", next)
	p.audit.Record(ctx, audit.Event{
		Category: audit.CategorySchedule,
		Action:   "schedule.fired",
		Subject:  sched.ID,
		Detail:   map[string]any{"run_id": run.ID, "pattern": sched.PatternName},
	})

	p.runs.Add(1)
	go p.execute(sched, run)
	return nil
}

// advance computes the schedule's next activation after now.
func (p *Poller) advance(sched *ent.Schedule, now time.Time) (time.Time, error) {
	if sched.Cron != nil && *sched.Cron != "" {
		return nextCronRun(*sched.Cron, sched.Timezone, now)
	}
	interval := time.Duration(MinIntervalMs) * time.Millisecond
	if sched.IntervalMs != nil {
		interval = time.Duration(*sched.IntervalMs) * time.Millisecond
	}
	return now.Add(interval), nil
}

// execute runs the schedule's workflow and records the run outcome. It uses
// a fresh context so a leadership change mid-run does not abort the
// workflow.
func (p *Poller) execute(sched *ent.Schedule, run *ent.ScheduleRun) {
	defer p.runs.Done()
	ctx := context.Background()
	start := time.Now()

	res, err := p.runner.Execute(ctx, sched.PatternName, sched.Input)

	status := schedulerun.StatusCompleted
	update := p.db.ScheduleRun.UpdateOneID(run.ID).
		SetCompletedAt(time.Now().UTC()).
		SetDurationMs(time.Since(start).Milliseconds())
	if err != nil {
		status = schedulerun.StatusFailed
		update.SetStatus(status).
			SetError(truncate(err.Error(), maxErrorLen))
		p.logger.Error("Schedule run failed",
			"schedule_id", sched.ID,
			"run_id", run.ID,
			"error", err)
	} else {
		update.SetStatus(status).
			SetExecutionID(res.ExecutionID)
	}
	if _, uerr := update.Save(ctx); uerr != nil {
		p.logger.Error("Failed to record schedule run outcome",
			"run_id", run.ID,
			"error", uerr)
	}
	if _, serr := p.db.Schedule.UpdateOneID(sched.ID).
		SetLastRunStatus(string(status)).
		Save(ctx); serr != nil {
		p.logger.Error("Failed to record last run status",
			"schedule_id", sched.ID,
			"error", serr)
	}
}

// TriggerSchedule fires a schedule immediately, outside its cadence. The
// next planned run time is left untouched.
func (p *Poller) TriggerSchedule(ctx context.Context, id string) (*ent.ScheduleRun, error) {
	sched, err := p.db.Schedule.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	run, err := p.db.ScheduleRun.Create().
		SetID(uuid.NewString()).
		SetScheduleID(sched.ID).
		SetStartedAt(now).
		Save(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := p.db.Schedule.UpdateOneID(sched.ID).
		SetLastRunAt(now).
		SetRunCount(sched.RunCount + 1).
		SetUpdatedAt(now).
		Save(ctx); err != nil {
		return nil, err
	}

	p.audit.Record(ctx, audit.Event{
		Category: audit.CategorySchedule,
		Action:   "schedule.triggered",
		Subject:  sched.ID,
		Detail:   map[string]any{"run_id": run.ID, "pattern": sched.PatternName},
	})

	p.runs.Add(1)
	go p.execute(sched, run)
	return run, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
