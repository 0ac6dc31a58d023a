package maintenance

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/smith3v/tg-word-drill/pkg/db"
	"github.com/smith3v/tg-word-drill/pkg/logger"
)

const (
	SessionSweepInterval   = time.Minute
	ActivityFlushInterval  = time.Minute
	SessionCleanupInterval = db.SessionCleanupInterval
)

type SessionSweeper interface {
	SweepExpired(now time.Time) int
	Len() int
}

type ActivityFlusher interface {
	Flush(ctx context.Context) error
}

// CleanupFunc removes persisted sessions that expired before now.
type CleanupFunc func(ctx context.Context, now time.Time) (int64, error)

// Jobs runs the periodic housekeeping of the bot: evicting idle drill
// sessions, dropping expired session snapshots and writing batched
// last-active times.
type Jobs struct {
	scheduler *gocron.Scheduler
	sessions  SessionSweeper
	activity  ActivityFlusher
	cleanup   CleanupFunc
	now       func() time.Time
}

type Option func(*Jobs)

func WithClock(now func() time.Time) Option {
	return func(j *Jobs) {
		if now != nil {
			j.now = now
		}
	}
}

func WithCleanup(cleanup CleanupFunc) Option {
	return func(j *Jobs) {
		j.cleanup = cleanup
	}
}

func New(sessions SessionSweeper, activity ActivityFlusher, opts ...Option) *Jobs {
	j := &Jobs{
		scheduler: gocron.NewScheduler(time.UTC),
		sessions:  sessions,
		activity:  activity,
		cleanup:   db.CleanupExpiredSessions,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	// a slow run must not overlap the next tick
	j.scheduler.SingletonModeAll()
	return j
}

// Start schedules every job and returns immediately. Jobs stop when ctx is
// cancelled or Stop is called.
func (j *Jobs) Start(ctx context.Context) error {
	if _, err := j.scheduler.Every(SessionSweepInterval).Do(j.sweepSessions); err != nil {
		return err
	}
	if _, err := j.scheduler.Every(ActivityFlushInterval).Do(j.flushActivity, ctx); err != nil {
		return err
	}
	if _, err := j.scheduler.Every(SessionCleanupInterval).Do(j.cleanupSessions, ctx); err != nil {
		return err
	}
	j.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		j.Stop(context.Background())
	}()
	return nil
}

// Stop halts the scheduler and writes any activity still pending.
func (j *Jobs) Stop(ctx context.Context) {
	if j.scheduler.IsRunning() {
		j.scheduler.Stop()
	}
	j.flushActivity(ctx)
}

func (j *Jobs) sweepSessions() {
	if j.sessions == nil {
		return
	}
	if removed := j.sessions.SweepExpired(j.now().UTC()); removed > 0 {
		logger.Debug("evicted idle drill sessions", "count", removed, "active", j.sessions.Len())
	}
}

func (j *Jobs) flushActivity(ctx context.Context) {
	if j.activity == nil {
		return
	}
	if err := j.activity.Flush(ctx); err != nil {
		logger.Error("failed to flush user activity", "error", err)
	}
}

func (j *Jobs) cleanupSessions(ctx context.Context) {
	if j.cleanup == nil {
		return
	}
	deleted, err := j.cleanup(ctx, j.now().UTC())
	if err != nil {
		logger.Error("failed to clean up expired drill sessions", "error", err)
		return
	}
	if deleted > 0 {
		logger.Info("cleaned up expired drill sessions", "count", deleted)
	}
}
