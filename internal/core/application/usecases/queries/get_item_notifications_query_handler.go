package queries

import (
	"context"
	"encoding/json"
	"time"

	"supplychain/internal/core/domain/model/notification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetItemNotificationsQueryHandler retrieves an item's notification feed
// from the database.
type GetItemNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewGetItemNotificationsQueryHandler creates a handler for notification
// feed queries. Requires a GORM database connection for query execution.
func NewGetItemNotificationsQueryHandler(db *gorm.DB) GetItemNotificationsQueryHandler {
	return GetItemNotificationsQueryHandler{db: db}
}

// Handle executes the query. The feed is ordered by execution order, and an
// item with no notifications yields an empty feed.
func (h GetItemNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetItemNotificationsQuery,
) (GetItemNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetItemNotificationsQueryResponse{}, err
	}

	var response GetItemNotificationsQueryResponse

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			kind,
			occurred_at,
			payload
		FROM notifications
		WHERE item_id = ?
		ORDER BY seq
	`, query.ItemID().Int64()).Rows()
	if err != nil {
		return GetItemNotificationsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id         uuid.UUID
			kind       int
			occurredAt time.Time
			payload    []byte
		)

		err = rows.Scan(&id, &kind, &occurredAt, &payload)
		if err != nil {
			return GetItemNotificationsQueryResponse{}, err
		}

		attributes := make(map[string]string)
		if len(payload) > 0 {
			if err = json.Unmarshal(payload, &attributes); err != nil {
				return GetItemNotificationsQueryResponse{}, err
			}
		}

		response.Notifications = append(response.Notifications, NotificationResponse{
			ID:         id,
			Kind:       notification.Kind(kind).String(),
			OccurredAt: occurredAt,
			Attributes: attributes,
		})
	}

	if err = rows.Err(); err != nil {
		return GetItemNotificationsQueryResponse{}, err
	}

	return response, nil
}
