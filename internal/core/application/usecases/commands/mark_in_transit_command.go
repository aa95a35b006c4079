package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var (
	ErrMarkInTransitCommandIsNotConstructed = errors.New(
		"MarkInTransitCommand must be created via NewMarkInTransitCommand constructor",
	)
)

// MarkInTransitCommand represents a request to advance an item from Created
// to InTransit. Only the current owner of the item may issue it.
type MarkInTransitCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.ItemID
	caller kernel.Identity

	guard guard.ConstructorGuard
}

// NewMarkInTransitCommand creates a command to mark an item in transit.
// Validates that the item id and the caller identity are well-formed.
func NewMarkInTransitCommand(itemID kernel.ItemID, caller kernel.Identity) (MarkInTransitCommand, error) {
	cmd := MarkInTransitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setCaller(caller),
	); err != nil {
		return MarkInTransitCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkInTransitCommand) Validate() error {
	return c.guard.Validate(ErrMarkInTransitCommandIsNotConstructed)
}

// ItemID returns the target item.
func (c MarkInTransitCommand) ItemID() kernel.ItemID {
	return c.itemID
}

// Caller returns the authenticated party issuing the command.
func (c MarkInTransitCommand) Caller() kernel.Identity {
	return c.caller
}

func (c *MarkInTransitCommand) setItemID(itemID kernel.ItemID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *MarkInTransitCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}
