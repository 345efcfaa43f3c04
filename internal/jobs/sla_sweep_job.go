package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"medcourier/internal/core/application/usecases/queries"
)

// SLASweepJob periodically evaluates every order against its urgency tier's
// deadlines and raises alerts for breaches. The sweep is strictly read-only;
// lateness never mutates order state.
type SLASweepJob struct {
	handler queries.GetSLAReportQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSLASweepJob creates a job that sweeps SLA compliance once a minute.
func NewSLASweepJob(handler queries.GetSLAReportQueryHandler, logger *slog.Logger) *SLASweepJob {
	return &SLASweepJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "sla_sweep_job"),
	}
}

// Start begins the SLA sweep to run every minute.
func (j *SLASweepJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		report, err := j.handler.Handle(ctx, queries.NewGetSLAReportQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "SLA sweep failed", "error", err)
			return
		}

		for _, item := range report.Orders {
			if item.Excluded || (!item.PickupLate && !item.DeliveryLate) {
				continue
			}
			j.logger.WarnContext(ctx, "SLA breach",
				"order_id", item.OrderID.String(),
				"urgency", item.Urgency.String(),
				"pickup_late", item.PickupLate,
				"pickup_minutes_over", item.PickupMinutesOver,
				"delivery_late", item.DeliveryLate,
				"delivery_minutes_over", item.DeliveryMinutesOver,
			)
		}

		if report.PickupBreaches > 0 || report.DeliveryBreaches > 0 {
			j.logger.InfoContext(ctx, "SLA sweep completed with breaches",
				"evaluated", report.Evaluated,
				"pickup_breaches", report.PickupBreaches,
				"delivery_breaches", report.DeliveryBreaches,
				"cancelled_excluded", report.CancelledExcluded,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "SLA sweep job started (running every minute)")
	return nil
}

// Stop stops the SLA sweep job.
func (j *SLASweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "SLA sweep job stopped")
}
