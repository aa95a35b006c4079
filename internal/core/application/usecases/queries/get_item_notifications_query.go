package queries

import (
	"errors"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	ErrGetItemNotificationsQueryIsNotConstructed = errors.New(
		"GetItemNotificationsQuery must be created via NewGetItemNotificationsQuery constructor",
	)
)

// GetItemNotificationsQuery retrieves the notification feed for one item,
// in the order the operations were executed.
type GetItemNotificationsQuery struct {
	itemID kernel.ItemID

	guard guard.ConstructorGuard
}

// NewGetItemNotificationsQuery creates a query for an item's notification
// feed.
func NewGetItemNotificationsQuery(itemID kernel.ItemID) (GetItemNotificationsQuery, error) {
	if err := itemID.Validate(); err != nil {
		return GetItemNotificationsQuery{}, err
	}

	return GetItemNotificationsQuery{itemID: itemID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetItemNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetItemNotificationsQueryIsNotConstructed)
}

// ItemID returns the item whose feed is being read.
func (q GetItemNotificationsQuery) ItemID() kernel.ItemID {
	return q.itemID
}

// GetItemNotificationsQueryResponse represents an item's notification feed.
type GetItemNotificationsQueryResponse struct {
	Notifications []NotificationResponse
}

// NotificationResponse is one entry of the feed.
type NotificationResponse struct {
	ID         uuid.UUID
	Kind       string
	OccurredAt time.Time
	Attributes map[string]string
}
