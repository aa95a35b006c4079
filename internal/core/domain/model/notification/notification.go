package notification

import (
	"errors"
	"strconv"
	"time"

	"supplychain/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ErrNotificationIsNotConstructed is returned when a Notification instance
// was not created through one of the factory methods.
var ErrNotificationIsNotConstructed = errors.New(
	"Notification must be created via a notification constructor",
)

// Attribute keys used in notification payloads.
const (
	AttrName          = "name"
	AttrQuantity      = "quantity"
	AttrSender        = "sender"
	AttrReceiver      = "receiver"
	AttrPreviousOwner = "previousOwner"
	AttrNewOwner      = "newOwner"
	AttrRecordedAt    = "recordedAt"
	AttrNote          = "note"
	AttrInfo          = "additionalInfo"
)

// Notification is a structured record of a successful ledger mutation,
// produced for external observers. Notifications are append-only, ordered by
// operation execution order, and never read back by the ledger itself.
//
// Each mutating operation has a dedicated constructor that captures the
// payload fields that operation publishes.
type Notification struct {
	// id uniquely identifies the notification record
	id uuid.UUID

	// kind names the operation that produced the notification
	kind Kind

	// itemID is the item the operation acted on
	itemID kernel.ItemID

	// occurredAt is the operation time
	occurredAt time.Time

	// attributes carries the kind-specific payload fields
	attributes map[string]string

	// isConstructed ensures the notification was created via a factory method
	isConstructed bool
}

func newNotification(kind Kind, itemID kernel.ItemID, occurredAt time.Time, attributes map[string]string) (Notification, error) {
	if err := kind.Validate(); err != nil {
		return Notification{}, err
	}
	if err := itemID.Validate(); err != nil {
		return Notification{}, err
	}

	return Notification{
		id:            uuid.New(),
		kind:          kind,
		itemID:        itemID,
		occurredAt:    occurredAt,
		attributes:    attributes,
		isConstructed: true,
	}, nil
}

// NewItemCreated records the registration of a new item.
// Payload: name, quantity, sender.
func NewItemCreated(itemID kernel.ItemID, name string, quantity int, sender kernel.Identity, occurredAt time.Time) (Notification, error) {
	return newNotification(ItemCreated, itemID, occurredAt, map[string]string{
		AttrName:     name,
		AttrQuantity: strconv.Itoa(quantity),
		AttrSender:   sender.String(),
	})
}

// NewItemInTransit records the Created -> InTransit transition.
// Payload: sender, receiver.
func NewItemInTransit(itemID kernel.ItemID, sender, receiver kernel.Identity, occurredAt time.Time) (Notification, error) {
	return newNotification(ItemInTransit, itemID, occurredAt, map[string]string{
		AttrSender:   sender.String(),
		AttrReceiver: receiver.String(),
	})
}

// NewItemDelivered records the InTransit -> Delivered transition.
// Payload: receiver.
func NewItemDelivered(itemID kernel.ItemID, receiver kernel.Identity, occurredAt time.Time) (Notification, error) {
	return newNotification(ItemDelivered, itemID, occurredAt, map[string]string{
		AttrReceiver: receiver.String(),
	})
}

// NewOwnershipTransferred records an ownership transfer.
// Payload: previousOwner, newOwner.
func NewOwnershipTransferred(itemID kernel.ItemID, previousOwner, newOwner kernel.Identity, occurredAt time.Time) (Notification, error) {
	return newNotification(OwnershipTransferred, itemID, occurredAt, map[string]string{
		AttrPreviousOwner: previousOwner.String(),
		AttrNewOwner:      newOwner.String(),
	})
}

// NewNameChanged records an item label overwrite.
// Payload: the new name.
func NewNameChanged(itemID kernel.ItemID, name string, occurredAt time.Time) (Notification, error) {
	return newNotification(NameChanged, itemID, occurredAt, map[string]string{
		AttrName: name,
	})
}

// NewQuantityChanged records any quantity mutation (absolute set, increase,
// or decrease). Payload: the new total.
func NewQuantityChanged(itemID kernel.ItemID, quantity int, occurredAt time.Time) (Notification, error) {
	return newNotification(QuantityChanged, itemID, occurredAt, map[string]string{
		AttrQuantity: strconv.Itoa(quantity),
	})
}

// NewAdditionalInfoChanged records an additional-info overwrite.
// Payload: the new text.
func NewAdditionalInfoChanged(itemID kernel.ItemID, info string, occurredAt time.Time) (Notification, error) {
	return newNotification(AdditionalInfoChanged, itemID, occurredAt, map[string]string{
		AttrInfo: info,
	})
}

// NewTransactionRecorded records an entry appended to the item's transaction
// log. Payload: the unix-second timestamp key and the note text.
func NewTransactionRecorded(itemID kernel.ItemID, recordedAt int64, note string, occurredAt time.Time) (Notification, error) {
	return newNotification(TransactionRecorded, itemID, occurredAt, map[string]string{
		AttrRecordedAt: strconv.FormatInt(recordedAt, 10),
		AttrNote:       note,
	})
}

// RestoreNotification reconstructs a notification from persisted state.
func RestoreNotification(id uuid.UUID, kind Kind, itemID kernel.ItemID, occurredAt time.Time, attributes map[string]string) (Notification, error) {
	n, err := newNotification(kind, itemID, occurredAt, attributes)
	if err != nil {
		return Notification{}, err
	}
	n.id = id
	return n, nil
}

// Validate ensures the Notification was properly constructed.
func (n Notification) Validate() error {
	if !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

// ID returns the notification record identifier.
func (n Notification) ID() uuid.UUID {
	return n.id
}

// Kind returns the operation kind that produced the notification.
func (n Notification) Kind() Kind {
	return n.kind
}

// ItemID returns the item the operation acted on.
func (n Notification) ItemID() kernel.ItemID {
	return n.itemID
}

// OccurredAt returns the operation time.
func (n Notification) OccurredAt() time.Time {
	return n.occurredAt
}

// Attributes returns a copy of the kind-specific payload.
func (n Notification) Attributes() map[string]string {
	attributes := make(map[string]string, len(n.attributes))
	for key, value := range n.attributes {
		attributes[key] = value
	}
	return attributes
}

// Attribute returns a single payload field, or the empty string when the
// kind does not carry it.
func (n Notification) Attribute(key string) string {
	return n.attributes[key]
}
