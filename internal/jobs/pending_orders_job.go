package jobs

import (
	"context"
	"log/slog"

	"orderservice/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// PendingOrdersJob periodically reports the pending order backlog.
// Runs every minute so operators can spot orders that stay unprocessed.
type PendingOrdersJob struct {
	handler queries.GetPendingOrderCountQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingOrdersJob creates a new job for monitoring the pending backlog.
// Uses GetPendingOrderCountQueryHandler to count pending orders every minute.
func NewPendingOrdersJob(handler queries.GetPendingOrderCountQueryHandler, logger *slog.Logger) *PendingOrdersJob {
	return &PendingOrdersJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "pending_orders_job"),
	}
}

// Start begins the pending orders job to run every minute.
func (j *PendingOrdersJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetPendingOrderCountQuery()

		count, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending orders job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Pending order backlog", "count", count)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending orders job started (running every minute)")
	return nil
}

// Stop stops the pending orders job.
func (j *PendingOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending orders job stopped")
}
