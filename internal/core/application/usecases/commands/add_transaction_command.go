package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var (
	ErrAddTransactionCommandIsNotConstructed = errors.New(
		"AddTransactionCommand must be created via NewAddTransactionCommand constructor",
	)
)

// AddTransactionCommand represents a request to append a note to an item's
// transaction log. The note is stored under the current time truncated to
// whole seconds, so a later note recorded within the same second replaces
// the earlier one. Only the current owner may issue it.
type AddTransactionCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.ItemID
	caller kernel.Identity
	note   string

	guard guard.ConstructorGuard
}

// NewAddTransactionCommand creates a command to record a transaction note.
// Any note is accepted, including the empty string.
func NewAddTransactionCommand(itemID kernel.ItemID, caller kernel.Identity, note string) (AddTransactionCommand, error) {
	cmd := AddTransactionCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setCaller(caller),
	); err != nil {
		return AddTransactionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddTransactionCommand) Validate() error {
	return c.guard.Validate(ErrAddTransactionCommandIsNotConstructed)
}

// ItemID returns the target item.
func (c AddTransactionCommand) ItemID() kernel.ItemID {
	return c.itemID
}

// Caller returns the authenticated party issuing the command.
func (c AddTransactionCommand) Caller() kernel.Identity {
	return c.caller
}

// Note returns the text to record.
func (c AddTransactionCommand) Note() string {
	return c.note
}

func (c *AddTransactionCommand) setItemID(itemID kernel.ItemID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *AddTransactionCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}
