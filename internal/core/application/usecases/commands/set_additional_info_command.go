package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var (
	ErrSetAdditionalInfoCommandIsNotConstructed = errors.New(
		"SetAdditionalInfoCommand must be created via NewSetAdditionalInfoCommand constructor",
	)
)

// SetAdditionalInfoCommand represents a request to overwrite an item's
// free-form description. Any string is accepted, including the empty string.
// Only the current owner may issue it.
type SetAdditionalInfoCommand struct { //nolint:recvcheck //using for validation
	itemID         kernel.ItemID
	caller         kernel.Identity
	additionalInfo string

	guard guard.ConstructorGuard
}

// NewSetAdditionalInfoCommand creates a command to replace an item's
// description.
func NewSetAdditionalInfoCommand(
	itemID kernel.ItemID,
	caller kernel.Identity,
	additionalInfo string,
) (SetAdditionalInfoCommand, error) {
	cmd := SetAdditionalInfoCommand{
		additionalInfo: additionalInfo,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setCaller(caller),
	); err != nil {
		return SetAdditionalInfoCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetAdditionalInfoCommand) Validate() error {
	return c.guard.Validate(ErrSetAdditionalInfoCommandIsNotConstructed)
}

// ItemID returns the target item.
func (c SetAdditionalInfoCommand) ItemID() kernel.ItemID {
	return c.itemID
}

// Caller returns the authenticated party issuing the command.
func (c SetAdditionalInfoCommand) Caller() kernel.Identity {
	return c.caller
}

// AdditionalInfo returns the replacement description.
func (c SetAdditionalInfoCommand) AdditionalInfo() string {
	return c.additionalInfo
}

func (c *SetAdditionalInfoCommand) setItemID(itemID kernel.ItemID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *SetAdditionalInfoCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}
