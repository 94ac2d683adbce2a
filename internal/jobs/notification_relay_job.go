package jobs

import (
	"context"
	"log/slog"
	"time"

	"pedidos/internal/core/ports"

	"github.com/robfig/cron/v3"
)

const (
	relayBatchSize   = 50
	relayTickTimeout = 10 * time.Second
)

// NotificationRelayJob drains the notification outbox. Runs every second,
// publishing pending messages to the broker and marking them sent.
//
// Delivery is at-least-once: a crash between Publish and MarkSent re-sends
// the message on the next tick. Consumers must tolerate duplicates.
type NotificationRelayJob struct {
	outbox    ports.NotificationOutbox
	publisher ports.NotificationPublisher
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewNotificationRelayJob creates the relay over an outbox and a publisher.
// The outbox here runs on the main connection, not inside a unit of work.
func NewNotificationRelayJob(
	outbox ports.NotificationOutbox,
	publisher ports.NotificationPublisher,
	logger *slog.Logger,
) *NotificationRelayJob {
	return &NotificationRelayJob{
		outbox:    outbox,
		publisher: publisher,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "notification_relay_job"),
	}
}

// Start begins the relay job to run every second.
func (j *NotificationRelayJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), relayTickTimeout)
		defer cancel()

		if err := j.RelayPending(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Notification relay tick failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification relay job started (running every second)")
	return nil
}

// Stop stops the relay job.
func (j *NotificationRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification relay job stopped")
}

// RelayPending publishes one batch of pending notifications. A message that
// fails to publish stays pending and blocks neither the rest of the batch
// nor the next tick.
func (j *NotificationRelayJob) RelayPending(ctx context.Context) error {
	messages, err := j.outbox.FetchPending(ctx, relayBatchSize)
	if err != nil {
		return err
	}

	for _, message := range messages {
		if err = j.publisher.Publish(ctx, message.Payload); err != nil {
			j.logger.ErrorContext(ctx, "Failed to publish notification, will retry next tick",
				"message_id", message.ID.String(),
				"error", err,
			)
			continue
		}

		if err = j.outbox.MarkSent(ctx, message.ID); err != nil {
			j.logger.ErrorContext(ctx, "Failed to mark notification as sent",
				"message_id", message.ID.String(),
				"error", err,
			)
		}
	}

	return nil
}
