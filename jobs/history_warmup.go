package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/rossilindo/estoque/internal/history"
)

// HistoryWarmupJob pre-populates the history view cache so the first read
// after an invalidation does not pay the join cost.
type HistoryWarmupJob struct {
	History *history.Service
	Logger  *slog.Logger
}

// NewHistoryWarmupJob wires dependencies for the warmup handler.
func NewHistoryWarmupJob(historySvc *history.Service, logger *slog.Logger) *HistoryWarmupJob {
	return &HistoryWarmupJob{History: historySvc, Logger: logger}
}

// Handle processes history warmup tasks.
func (j *HistoryWarmupJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.History == nil {
		return errors.New("history warmup: handler not configured")
	}
	logger := j.logger()
	logger.Info("starting history warmup")

	warmCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	start := time.Now()
	if err := j.History.Warm(warmCtx); err != nil {
		logger.Error("history warmup", slog.Any("error", err))
		return err
	}
	logger.Info("completed history warmup", slog.Duration("duration", time.Since(start)))
	return nil
}

func (j *HistoryWarmupJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger.With(slog.String("job", TaskHistoryWarmup))
	}
	return slog.Default().With(slog.String("job", TaskHistoryWarmup))
}
