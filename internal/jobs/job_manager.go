package jobs

import (
	"fmt"
	"log/slog"

	"pedidos/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	notificationRelayJob *NotificationRelayJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	outbox ports.NotificationOutbox,
	publisher ports.NotificationPublisher,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		notificationRelayJob: NewNotificationRelayJob(outbox, publisher, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.notificationRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start notification relay job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.notificationRelayJob.Stop()
}
