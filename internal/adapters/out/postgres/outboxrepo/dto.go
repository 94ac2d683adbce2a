// Package outboxrepo persists outbound notifications in the transactional
// outbox table. Messages are inserted inside the business transaction that
// produced them and drained by the relay job after commit.
package outboxrepo

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PayloadJSON stores the raw notification payload as a jsonb column.
type PayloadJSON []byte

// GormDataType tells GORM to create the column as jsonb.
func (PayloadJSON) GormDataType() string {
	return "jsonb"
}

// Value hands the payload to the database driver as text.
func (p PayloadJSON) Value() (driver.Value, error) {
	if len(p) == 0 {
		return nil, nil
	}
	return string(p), nil
}

// Scan reads the payload back from the database driver.
func (p *PayloadJSON) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		*p = append((*p)[:0], v...)
		return nil
	case string:
		*p = PayloadJSON(v)
		return nil
	default:
		return fmt.Errorf("unsupported payload column type %T", value)
	}
}

// MessageDTO represents one staged notification in the outbox table.
// SentAt is null until the relay job delivered the message.
type MessageDTO struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Payload   PayloadJSON `gorm:"type:jsonb"`
	CreatedAt time.Time   `gorm:"autoCreateTime;index"`
	SentAt    *time.Time  `gorm:"index"`
}

// TableName specifies the database table name for outbox messages.
func (MessageDTO) TableName() string {
	return "notification_outbox"
}
