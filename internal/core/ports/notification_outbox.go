package ports

import (
	"context"
	"time"

	"pedidos/internal/core/domain/model/kernel"
)

// NotificationMessage is a pending outbound notification as stored in the
// outbox table.
type NotificationMessage struct {
	ID        kernel.UUID
	Payload   []byte
	CreatedAt time.Time
}

// NotificationOutbox is the transactional staging area for outbound
// notifications. Writing to the outbox inside the same transaction as the
// order change guarantees a notification is recorded if and only if the
// change committed; a relay job drains the table afterwards.
type NotificationOutbox interface {
	// Add stages a payload for delivery. Must be called inside an open
	// unit of work so the write shares the surrounding transaction.
	Add(ctx context.Context, payload []byte) error

	// FetchPending returns up to limit unsent messages, oldest first.
	FetchPending(ctx context.Context, limit int) ([]NotificationMessage, error)

	// MarkSent records that the broker accepted the message. Marked
	// messages are never fetched again.
	MarkSent(ctx context.Context, id kernel.UUID) error
}
