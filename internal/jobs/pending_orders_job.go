package jobs

import (
	"context"
	"log/slog"

	"pedido/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// PendingOrdersJob periodically reports the number of orders still in
// Pending status. Payment and shipping are driven by other services, so
// a growing backlog is the first sign one of them has stalled.
type PendingOrdersJob struct {
	handler queries.GetPendingOrdersCountQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingOrdersJob creates a new job for monitoring the pending backlog.
// Uses GetPendingOrdersCountQueryHandler to count pending orders every minute.
func NewPendingOrdersJob(handler queries.GetPendingOrdersCountQueryHandler, logger *slog.Logger) *PendingOrdersJob {
	return &PendingOrdersJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "pending_orders_job"),
	}
}

// Start begins the pending orders job to run every minute.
func (j *PendingOrdersJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetPendingOrdersCountQuery()

		count, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending orders job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Pending orders backlog", "count", count)
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
