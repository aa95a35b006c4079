package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var (
	ErrTransferOwnershipCommandIsNotConstructed = errors.New(
		"TransferOwnershipCommand must be created via NewTransferOwnershipCommand constructor",
	)
)

// TransferOwnershipCommand represents a request to hand control of an item
// from its current owner to another party. The caller must be the current
// owner. Transferring to oneself is legal and refreshes the grant timestamp.
type TransferOwnershipCommand struct { //nolint:recvcheck //using for validation
	itemID   kernel.ItemID
	caller   kernel.Identity
	newOwner kernel.Identity

	guard guard.ConstructorGuard
}

// NewTransferOwnershipCommand creates a command to transfer ownership of an
// item. Validates the item id, the caller, and the new owner identity.
func NewTransferOwnershipCommand(
	itemID kernel.ItemID,
	caller kernel.Identity,
	newOwner kernel.Identity,
) (TransferOwnershipCommand, error) {
	cmd := TransferOwnershipCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setCaller(caller),
		cmd.setNewOwner(newOwner),
	); err != nil {
		return TransferOwnershipCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransferOwnershipCommand) Validate() error {
	return c.guard.Validate(ErrTransferOwnershipCommandIsNotConstructed)
}

// ItemID returns the target item.
func (c TransferOwnershipCommand) ItemID() kernel.ItemID {
	return c.itemID
}

// Caller returns the authenticated party issuing the command.
func (c TransferOwnershipCommand) Caller() kernel.Identity {
	return c.caller
}

// NewOwner returns the party receiving control of the item.
func (c TransferOwnershipCommand) NewOwner() kernel.Identity {
	return c.newOwner
}

func (c *TransferOwnershipCommand) setItemID(itemID kernel.ItemID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *TransferOwnershipCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *TransferOwnershipCommand) setNewOwner(newOwner kernel.Identity) error {
	if err := newOwner.Validate(); err != nil {
		return err
	}

	c.newOwner = newOwner
	return nil
}
