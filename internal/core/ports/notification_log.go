package ports

import (
	"context"

	"supplychain/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationLog defines the persistence contract for the append-only
// notification feed. Appends happen in the same transaction as the mutation
// they report, so a failed operation leaves no notification behind.
type NotificationLog interface {
	// Append stores a notification at the tail of the feed.
	Append(ctx context.Context, n notification.Notification) error

	// GetUndispatched retrieves up to limit notifications that have not yet
	// been relayed to observers, in append order.
	GetUndispatched(ctx context.Context, limit int) ([]notification.Notification, error)

	// MarkDispatched flags the given notifications as relayed.
	MarkDispatched(ctx context.Context, ids []uuid.UUID) error
}

// NotificationPublisher is the outbound seam toward external observers.
// Publishing is observational only; the ledger never reads notifications back.
type NotificationPublisher interface {
	// Publish delivers a single notification to observers.
	Publish(ctx context.Context, n notification.Notification) error
}
