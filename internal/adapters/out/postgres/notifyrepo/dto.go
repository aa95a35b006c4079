// Package notifyrepo provides data transfer objects and mapping functions
// for the notification feed. Notifications are written in the same
// transaction as the mutation they report and relayed to observers later,
// outbox style.
package notifyrepo

import (
	"encoding/json"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for persisting
// notifications. Seq preserves append order; Dispatched flags rows already
// relayed to observers.
type NotificationDTO struct {
	Seq        int64     `gorm:"primaryKey;autoIncrement"`
	ID         uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Kind       int
	ItemID     int64 `gorm:"index"`
	OccurredAt time.Time
	Payload    []byte `gorm:"type:jsonb"`
	Dispatched bool   `gorm:"index"`
}

// TableName specifies the database table name for notifications.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification to its database representation.
func fromDomain(n notification.Notification) (NotificationDTO, error) {
	payload, err := json.Marshal(n.Attributes())
	if err != nil {
		return NotificationDTO{}, err
	}

	return NotificationDTO{
		ID:         n.ID(),
		Kind:       int(n.Kind()),
		ItemID:     n.ItemID().Int64(),
		OccurredAt: n.OccurredAt(),
		Payload:    payload,
		Dispatched: false,
	}, nil
}

// toDomain converts a database DTO to a notification.
func toDomain(dto NotificationDTO) (notification.Notification, error) {
	itemID, err := kernel.NewItemID(dto.ItemID)
	if err != nil {
		return notification.Notification{}, err
	}

	attributes := make(map[string]string)
	if len(dto.Payload) > 0 {
		if err = json.Unmarshal(dto.Payload, &attributes); err != nil {
			return notification.Notification{}, err
		}
	}

	return notification.RestoreNotification(
		dto.ID,
		notification.Kind(dto.Kind),
		itemID,
		dto.OccurredAt,
		attributes,
	)
}
