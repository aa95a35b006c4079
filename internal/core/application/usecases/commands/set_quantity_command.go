package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

var (
	ErrSetQuantityCommandIsNotConstructed = errors.New(
		"SetQuantityCommand must be created via NewSetQuantityCommand constructor",
	)
)

// SetQuantityCommand represents a request to overwrite an item's quantity
// with an absolute value. Only the current owner may issue it.
type SetQuantityCommand struct { //nolint:recvcheck //using for validation
	itemID   kernel.ItemID
	caller   kernel.Identity
	quantity int

	guard guard.ConstructorGuard
}

// NewSetQuantityCommand creates a command to set an item's quantity.
// The quantity must be zero or positive.
func NewSetQuantityCommand(itemID kernel.ItemID, caller kernel.Identity, quantity int) (SetQuantityCommand, error) {
	cmd := SetQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setCaller(caller),
		cmd.setQuantity(quantity),
	); err != nil {
		return SetQuantityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetQuantityCommand) Validate() error {
	return c.guard.Validate(ErrSetQuantityCommandIsNotConstructed)
}

// ItemID returns the target item.
func (c SetQuantityCommand) ItemID() kernel.ItemID {
	return c.itemID
}

// Caller returns the authenticated party issuing the command.
func (c SetQuantityCommand) Caller() kernel.Identity {
	return c.caller
}

// Quantity returns the replacement quantity.
func (c SetQuantityCommand) Quantity() int {
	return c.quantity
}

func (c *SetQuantityCommand) setItemID(itemID kernel.ItemID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *SetQuantityCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *SetQuantityCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	c.quantity = quantity
	return nil
}
