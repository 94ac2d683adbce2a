package outboxrepo

import (
	"context"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormNotificationOutbox implements the notification outbox port using GORM.
// When handed a transaction by the unit of work, Add runs inside it, which is
// what makes the outbox transactional.
type GormNotificationOutbox struct {
	db *gorm.DB
}

// NewGormNotificationOutbox creates an outbox repository over the given
// connection or transaction.
func NewGormNotificationOutbox(db *gorm.DB) *GormNotificationOutbox {
	return &GormNotificationOutbox{db: db}
}

// Add stages a payload for delivery.
func (r *GormNotificationOutbox) Add(ctx context.Context, payload []byte) error {
	dto := MessageDTO{
		ID:      uuid.New(),
		Payload: PayloadJSON(payload),
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// FetchPending returns up to limit unsent messages, oldest first.
func (r *GormNotificationOutbox) FetchPending(ctx context.Context, limit int) ([]ports.NotificationMessage, error) {
	var dtos []MessageDTO

	err := r.db.WithContext(ctx).
		Where("sent_at IS NULL").
		Order("created_at ASC").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.NotificationMessage, 0, len(dtos))
	for _, dto := range dtos {
		id, idErr := kernel.UUIDFromString(dto.ID.String())
		if idErr != nil {
			return nil, idErr
		}
		messages = append(messages, ports.NotificationMessage{
			ID:        id,
			Payload:   []byte(dto.Payload),
			CreatedAt: dto.CreatedAt,
		})
	}

	return messages, nil
}

// MarkSent records the delivery time of a message. Marked messages are never
// fetched again.
func (r *GormNotificationOutbox) MarkSent(ctx context.Context, id kernel.UUID) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id = ?", id.Bytes()).
		Update("sent_at", &now).Error
}
