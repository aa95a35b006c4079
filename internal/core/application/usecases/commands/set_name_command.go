package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var (
	ErrSetNameCommandIsNotConstructed = errors.New(
		"SetNameCommand must be created via NewSetNameCommand constructor",
	)
)

// SetNameCommand represents a request to overwrite an item's label. Any
// string is accepted, including the empty string. Only the current owner may
// issue it.
type SetNameCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.ItemID
	caller kernel.Identity
	name   string

	guard guard.ConstructorGuard
}

// NewSetNameCommand creates a command to rename an item.
func NewSetNameCommand(itemID kernel.ItemID, caller kernel.Identity, name string) (SetNameCommand, error) {
	cmd := SetNameCommand{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setCaller(caller),
	); err != nil {
		return SetNameCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetNameCommand) Validate() error {
	return c.guard.Validate(ErrSetNameCommandIsNotConstructed)
}

// ItemID returns the target item.
func (c SetNameCommand) ItemID() kernel.ItemID {
	return c.itemID
}

// Caller returns the authenticated party issuing the command.
func (c SetNameCommand) Caller() kernel.Identity {
	return c.caller
}

// Name returns the replacement label.
func (c SetNameCommand) Name() string {
	return c.name
}

func (c *SetNameCommand) setItemID(itemID kernel.ItemID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *SetNameCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}
