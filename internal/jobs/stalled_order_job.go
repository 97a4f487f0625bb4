package jobs

import (
	"context"
	"log/slog"
	"time"

	"orderservice/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StalledOrderJob periodically surfaces confirmed orders that never made it
// out for delivery. Courier assignment is best-effort with no retry, so the
// job only observes and logs; it never re-dispatches or mutates orders.
type StalledOrderJob struct {
	handler queries.GetStalledOrdersQueryHandler
	maxAge  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStalledOrderJob creates a job that reports confirmed orders older than
// maxAge once a minute.
func NewStalledOrderJob(
	handler queries.GetStalledOrdersQueryHandler,
	maxAge time.Duration,
	logger *slog.Logger,
) *StalledOrderJob {
	return &StalledOrderJob{
		handler: handler,
		maxAge:  maxAge,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stalled_order_job"),
	}
}

// Start begins the stalled order job to run at the top of every minute.
func (j *StalledOrderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetStalledOrdersQuery(j.maxAge)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Stalled order job misconfigured", "error", queryErr)
			return
		}

		stalled, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stalled order job failed", "error", handleErr)
			return
		}

		for _, o := range stalled {
			j.logger.WarnContext(ctx, "Order confirmed but not out for delivery",
				"order_id", o.ID.String(),
				"total", o.Total,
				"created_at", o.CreatedAt,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stalled order job started (running every minute)")
	return nil
}

// Stop stops the stalled order job.
func (j *StalledOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stalled order job stopped")
}
