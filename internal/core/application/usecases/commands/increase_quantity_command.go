package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

var (
	ErrIncreaseQuantityCommandIsNotConstructed = errors.New(
		"IncreaseQuantityCommand must be created via NewIncreaseQuantityCommand constructor",
	)
)

// IncreaseQuantityCommand represents a request to add stock to an item.
// Only the current owner may issue it.
type IncreaseQuantityCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.ItemID
	caller kernel.Identity
	amount int

	guard guard.ConstructorGuard
}

// NewIncreaseQuantityCommand creates a command to add the given amount to an
// item's quantity. The amount must be zero or positive.
func NewIncreaseQuantityCommand(itemID kernel.ItemID, caller kernel.Identity, amount int) (IncreaseQuantityCommand, error) {
	cmd := IncreaseQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setCaller(caller),
		cmd.setAmount(amount),
	); err != nil {
		return IncreaseQuantityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c IncreaseQuantityCommand) Validate() error {
	return c.guard.Validate(ErrIncreaseQuantityCommandIsNotConstructed)
}

// ItemID returns the target item.
func (c IncreaseQuantityCommand) ItemID() kernel.ItemID {
	return c.itemID
}

// Caller returns the authenticated party issuing the command.
func (c IncreaseQuantityCommand) Caller() kernel.Identity {
	return c.caller
}

// Amount returns how much to add.
func (c IncreaseQuantityCommand) Amount() int {
	return c.amount
}

func (c *IncreaseQuantityCommand) setItemID(itemID kernel.ItemID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *IncreaseQuantityCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *IncreaseQuantityCommand) setAmount(amount int) error {
	if amount < 0 {
		return errs.NewValueIsInvalidError("amount")
	}

	c.amount = amount
	return nil
}
