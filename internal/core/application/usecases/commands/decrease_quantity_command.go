package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

var (
	ErrDecreaseQuantityCommandIsNotConstructed = errors.New(
		"DecreaseQuantityCommand must be created via NewDecreaseQuantityCommand constructor",
	)
)

// DecreaseQuantityCommand represents a request to remove stock from an item.
// Only the current owner may issue it, and the removal must not drive the
// quantity below zero.
type DecreaseQuantityCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.ItemID
	caller kernel.Identity
	amount int

	guard guard.ConstructorGuard
}

// NewDecreaseQuantityCommand creates a command to remove the given amount
// from an item's quantity. The amount must be zero or positive.
func NewDecreaseQuantityCommand(itemID kernel.ItemID, caller kernel.Identity, amount int) (DecreaseQuantityCommand, error) {
	cmd := DecreaseQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setCaller(caller),
		cmd.setAmount(amount),
	); err != nil {
		return DecreaseQuantityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DecreaseQuantityCommand) Validate() error {
	return c.guard.Validate(ErrDecreaseQuantityCommandIsNotConstructed)
}

// ItemID returns the target item.
func (c DecreaseQuantityCommand) ItemID() kernel.ItemID {
	return c.itemID
}

// Caller returns the authenticated party issuing the command.
func (c DecreaseQuantityCommand) Caller() kernel.Identity {
	return c.caller
}

// Amount returns how much to remove.
func (c DecreaseQuantityCommand) Amount() int {
	return c.amount
}

func (c *DecreaseQuantityCommand) setItemID(itemID kernel.ItemID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *DecreaseQuantityCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *DecreaseQuantityCommand) setAmount(amount int) error {
	if amount < 0 {
		return errs.NewValueIsInvalidError("amount")
	}

	c.amount = amount
	return nil
}
