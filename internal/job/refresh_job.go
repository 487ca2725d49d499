package job

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"kanban-board-client/internal/store"
)

// RefreshJob periodically re-fetches the board collection so a long-lived
// view does not go stale. The remote store offers no push updates; polling
// is the only refresh mechanism available to the client.
type RefreshJob struct {
	boards *store.BoardStore
	logger *zap.Logger
	cron   *cron.Cron
}

// NewRefreshJob creates a new RefreshJob instance
func NewRefreshJob(boards *store.BoardStore, logger *zap.Logger) *RefreshJob {
	return &RefreshJob{
		boards: boards,
		logger: logger,
	}
}

// Run executes one refresh pass.
func (j *RefreshJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	j.logger.Debug("Refreshing board collection")
	if err := j.boards.FetchAll(ctx); err != nil {
		j.logger.Warn("Board refresh failed", zap.Error(err))
		return
	}
	j.logger.Debug("Board collection refreshed",
		zap.Int("boards", len(j.boards.Items())),
	)
}

// Start schedules the job at the given interval and runs until Stop.
func (j *RefreshJob) Start(interval time.Duration) {
	j.cron = cron.New()
	j.cron.Schedule(cron.Every(interval), j)
	j.cron.Start()
	j.logger.Info("Board refresh job started", zap.Duration("interval", interval))
}

// Stop halts the schedule and waits for a running pass to finish.
func (j *RefreshJob) Stop() {
	if j.cron != nil {
		ctx := j.cron.Stop()
		<-ctx.Done()
		j.logger.Info("Board refresh job stopped")
	}
}
