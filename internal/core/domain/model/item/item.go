package item

import (
	"errors"
	"fmt"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through the NewItem or RestoreItem factory methods.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

	// ErrInsufficientQuantity is returned when a quantity decrease would drive
	// the quantity below zero. Quantity never goes negative.
	ErrInsufficientQuantity = errors.New("insufficient quantity")
)

// Item represents a tracked unit of goods moving through the supply chain.
// It is the aggregate root that manages the item lifecycle from registration
// through transit to delivery.
//
// Item follows these invariants:
//   - Must have a valid positive identifier
//   - Sender and receiver are set at creation and never change
//   - Quantity is never negative
//   - Status only moves forward: Created -> InTransit -> Delivered
//   - Can only be created through NewItem or RestoreItem
//
// The transaction log is a timestamp-keyed sub-structure owned by the item.
// Timestamps are second-granularity; a later entry recorded within the same
// second overwrites the earlier one.
type Item struct {
	// id is the sequential identifier assigned by the store
	id kernel.ItemID

	// name is the human-readable item label, freely editable by the owner
	name string

	// quantity is the current unit count (never negative)
	quantity int

	// sender is the party that registered the item (immutable)
	sender kernel.Identity

	// receiver is the intended recipient (immutable)
	receiver kernel.Identity

	// status is the current state in the item lifecycle
	status Status

	// additionalInfo is free text attached to the item
	additionalInfo string

	// transactions maps unix-second timestamps to free-text log entries
	transactions map[int64]string

	// isConstructed ensures the item was created via a factory method
	isConstructed bool
}

// NewItem registers a new item with Created status and an empty transaction
// log. The sender is the party creating the item; the receiver may be any
// identity, including one with no prior interaction with the ledger.
//
// Parameters:
//   - id: Sequential identifier handed out by the store (must be valid)
//   - name: Item label (no constraints, may be empty)
//   - quantity: Initial unit count (must not be negative, may be zero)
//   - sender: Registering party (must be a valid identity)
//   - receiver: Intended recipient (must be a valid identity)
//   - additionalInfo: Free text (no constraints)
//
// Returns the created item, or a validation error if any parameter is invalid.
func NewItem(
	id kernel.ItemID,
	name string,
	quantity int,
	sender kernel.Identity,
	receiver kernel.Identity,
	additionalInfo string,
) (*Item, error) {
	item := &Item{
		name:           name,
		additionalInfo: additionalInfo,
		status:         Created,
		transactions:   make(map[int64]string),
		isConstructed:  true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setQuantity(quantity),
		item.setSender(sender),
		item.setReceiver(receiver),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an item from persisted state. Unlike NewItem it
// accepts any valid status and an existing transaction log. The transactions
// map is copied; the caller keeps ownership of its argument.
func RestoreItem(
	id kernel.ItemID,
	name string,
	quantity int,
	sender kernel.Identity,
	receiver kernel.Identity,
	status Status,
	additionalInfo string,
	transactions map[int64]string,
) (*Item, error) {
	item := &Item{
		name:           name,
		additionalInfo: additionalInfo,
		transactions:   make(map[int64]string, len(transactions)),
		isConstructed:  true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setQuantity(quantity),
		item.setSender(sender),
		item.setReceiver(receiver),
		item.setStatus(status),
	); err != nil {
		return nil, err
	}

	for recordedAt, note := range transactions {
		item.transactions[recordedAt] = note
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// IsEqual compares two items by their identifiers.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's identifier.
func (i *Item) ID() kernel.ItemID {
	return i.id
}

// Name returns the item's label.
func (i *Item) Name() string {
	return i.name
}

// Quantity returns the current unit count.
func (i *Item) Quantity() int {
	return i.quantity
}

// Sender returns the party that registered the item.
func (i *Item) Sender() kernel.Identity {
	return i.sender
}

// Receiver returns the intended recipient.
func (i *Item) Receiver() kernel.Identity {
	return i.receiver
}

// Status returns the current lifecycle status.
func (i *Item) Status() Status {
	return i.status
}

// AdditionalInfo returns the free text attached to the item.
func (i *Item) AdditionalInfo() string {
	return i.additionalInfo
}

// Transactions returns a copy of the transaction log keyed by unix-second
// timestamp.
func (i *Item) Transactions() map[int64]string {
	transactions := make(map[int64]string, len(i.transactions))
	for recordedAt, note := range i.transactions {
		transactions[recordedAt] = note
	}
	return transactions
}

// Transaction returns the log entry recorded at the exact unix-second
// timestamp, or the empty string when nothing was recorded then.
func (i *Item) Transaction(recordedAt int64) string {
	return i.transactions[recordedAt]
}

// MarkInTransit advances the item from Created to InTransit.
// Returns ErrInvalidTransition if the item is not in Created status.
func (i *Item) MarkInTransit() error {
	newStatus, err := i.status.MarkInTransit()
	if err != nil {
		return err
	}

	i.status = newStatus
	return nil
}

// MarkDelivered advances the item from InTransit to Delivered.
// Returns ErrInvalidTransition if the item is not in InTransit status.
func (i *Item) MarkDelivered() error {
	newStatus, err := i.status.MarkDelivered()
	if err != nil {
		return err
	}

	i.status = newStatus
	return nil
}

// SetName overwrites the item's label. There are no business rules on the
// label beyond ownership, which is enforced by the calling operation.
func (i *Item) SetName(name string) {
	i.name = name
}

// SetAdditionalInfo overwrites the free text attached to the item.
func (i *Item) SetAdditionalInfo(additionalInfo string) {
	i.additionalInfo = additionalInfo
}

// SetQuantity overwrites the unit count with an absolute value.
// Returns an error if the value is negative.
func (i *Item) SetQuantity(quantity int) error {
	return i.setQuantity(quantity)
}

// IncreaseQuantity adds amount to the unit count.
// The amount must not be negative; host numeric semantics apply to overflow.
func (i *Item) IncreaseQuantity(amount int) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%d is negative", amount))
	}

	i.quantity += amount
	return nil
}

// DecreaseQuantity removes amount from the unit count.
// Returns ErrInsufficientQuantity if amount exceeds the current quantity,
// leaving the quantity unchanged.
func (i *Item) DecreaseQuantity(amount int) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%d is negative", amount))
	}
	if amount > i.quantity {
		return fmt.Errorf("%w: cannot remove %d from %d", ErrInsufficientQuantity, amount, i.quantity)
	}

	i.quantity -= amount
	return nil
}

// AddTransaction records a free-text entry at the given time, truncated to
// unix-second granularity. An entry already recorded within the same second
// is silently overwritten; callers observing coarse clocks must accept this.
// Returns the unix-second key the entry was recorded under.
func (i *Item) AddTransaction(recordedAt time.Time, note string) int64 {
	key := recordedAt.Unix()
	i.transactions[key] = note
	return key
}

// setID validates and sets the item's identifier.
// This is a private method used only during construction.
func (i *Item) setID(id kernel.ItemID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

// setQuantity validates and sets the unit count. Quantity must not be negative.
func (i *Item) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", quantity))
	}
	i.quantity = quantity
	return nil
}

// setSender validates and sets the registering party.
// This is a private method used only during construction.
func (i *Item) setSender(sender kernel.Identity) error {
	if err := sender.Validate(); err != nil {
		return err
	}
	i.sender = sender
	return nil
}

// setReceiver validates and sets the intended recipient.
// This is a private method used only during construction.
func (i *Item) setReceiver(receiver kernel.Identity) error {
	if err := receiver.Validate(); err != nil {
		return err
	}
	i.receiver = receiver
	return nil
}

// setStatus validates and sets the lifecycle status during restoration.
func (i *Item) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	i.status = status
	return nil
}
