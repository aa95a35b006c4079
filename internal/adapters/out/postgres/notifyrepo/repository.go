package notifyrepo

import (
	"context"

	"supplychain/internal/core/domain/model/notification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormNotificationLog implements NotificationLog using GORM.
type GormNotificationLog struct {
	db *gorm.DB
}

// NewGormNotificationLog creates a new GORM notification log.
func NewGormNotificationLog(db *gorm.DB) *GormNotificationLog {
	return &GormNotificationLog{db: db}
}

// Append stores a notification at the tail of the feed.
func (r *GormNotificationLog) Append(ctx context.Context, n notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(n)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetUndispatched retrieves up to limit pending notifications in append
// order.
func (r *GormNotificationLog) GetUndispatched(ctx context.Context, limit int) ([]notification.Notification, error) {
	var dtos []NotificationDTO
	err := r.db.WithContext(ctx).
		Where("dispatched = ?", false).
		Order("seq").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	notifications := make([]notification.Notification, 0, len(dtos))
	for _, dto := range dtos {
		n, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		notifications = append(notifications, n)
	}

	return notifications, nil
}

// MarkDispatched flags the given notifications as relayed.
func (r *GormNotificationLog) MarkDispatched(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("id IN ?", ids).
		Update("dispatched", true).Error
}
