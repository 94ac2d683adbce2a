package ports

import (
	"context"
)

// NotificationPublisher delivers serialized notification payloads to the
// outbound customer-notification queue.
type NotificationPublisher interface {
	// Publish sends one payload. A nil return means the broker accepted
	// the message; the caller may then mark the notification as sent.
	Publish(ctx context.Context, payload []byte) error
}
