package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var (
	ErrMarkDeliveredCommandIsNotConstructed = errors.New(
		"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
	)
)

// MarkDeliveredCommand represents a request to advance an item from InTransit
// to Delivered, the terminal lifecycle state. Only the current owner of the
// item may issue it.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.ItemID
	caller kernel.Identity

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command to mark an item delivered.
// Validates that the item id and the caller identity are well-formed.
func NewMarkDeliveredCommand(itemID kernel.ItemID, caller kernel.Identity) (MarkDeliveredCommand, error) {
	cmd := MarkDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setCaller(caller),
	); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// ItemID returns the target item.
func (c MarkDeliveredCommand) ItemID() kernel.ItemID {
	return c.itemID
}

// Caller returns the authenticated party issuing the command.
func (c MarkDeliveredCommand) Caller() kernel.Identity {
	return c.caller
}

func (c *MarkDeliveredCommand) setItemID(itemID kernel.ItemID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *MarkDeliveredCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}
