// Package observer delivers dispatched notifications to external observers.
// The current implementation writes them to the application log; swapping in
// a message broker only requires another ports.NotificationPublisher.
package observer

import (
	"context"
	"log/slog"

	"supplychain/internal/core/domain/model/notification"
)

// SlogNotificationPublisher publishes notifications as structured log
// records.
type SlogNotificationPublisher struct {
	logger *slog.Logger
}

// NewSlogNotificationPublisher creates a publisher that writes to the given
// logger.
func NewSlogNotificationPublisher(logger *slog.Logger) *SlogNotificationPublisher {
	return &SlogNotificationPublisher{
		logger: logger.With("component", "notification_publisher"),
	}
}

// Publish emits one notification as a log record.
func (p *SlogNotificationPublisher) Publish(ctx context.Context, n notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	p.logger.InfoContext(ctx, "notification dispatched",
		"id", n.ID().String(),
		"kind", n.Kind().String(),
		"itemId", n.ItemID().Int64(),
		"occurredAt", n.OccurredAt(),
		"attributes", n.Attributes(),
	)

	return nil
}
