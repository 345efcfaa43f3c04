package jobs

import (
	"fmt"
	"log/slog"

	"medcourier/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	slaSweepJob *SLASweepJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	slaReportHandler queries.GetSLAReportQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		slaSweepJob: NewSLASweepJob(slaReportHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.slaSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start SLA sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.slaSweepJob.Stop()
}
