package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

var (
	ErrCreateItemCommandIsNotConstructed = errors.New(
		"CreateItemCommand must be created via NewCreateItemCommand constructor",
	)
)

// CreateItemCommand represents a request to register a new tracked item.
// The caller becomes both the sender and the initial owner of the item.
//
// Example:
//
//	caller, _ := kernel.NewIdentity("org1-warehouse")
//	receiver, _ := kernel.NewIdentity("org2-store")
//	cmd, err := NewCreateItemCommand(caller, "Widget", 10, receiver, "fragile")
//	if err != nil {
//	    return fmt.Errorf("invalid item data: %w", err)
//	}
//
//	handler := NewCreateItemCommandHandler(uowFactory, clock)
//	itemID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create item: %w", err)
//	}
//	fmt.Printf("Item %s registered", itemID)
type CreateItemCommand struct { //nolint:recvcheck //using for validation
	caller         kernel.Identity
	name           string
	quantity       int
	receiver       kernel.Identity
	additionalInfo string

	guard guard.ConstructorGuard
}

// NewCreateItemCommand creates a command to register a new item.
// The caller and receiver must be valid identities and the quantity must not
// be negative. The name and additional info carry no constraints; the
// receiver may be any identity, including one the ledger has never seen.
func NewCreateItemCommand(
	caller kernel.Identity,
	name string,
	quantity int,
	receiver kernel.Identity,
	additionalInfo string,
) (CreateItemCommand, error) {
	itemCommand := CreateItemCommand{
		name:           name,
		additionalInfo: additionalInfo,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setCaller(caller),
		itemCommand.setQuantity(quantity),
		itemCommand.setReceiver(receiver),
	); err != nil {
		return CreateItemCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateItemCommandIsNotConstructed if validation fails.
func (c CreateItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateItemCommandIsNotConstructed)
}

// Caller returns the authenticated party registering the item.
func (c CreateItemCommand) Caller() kernel.Identity {
	return c.caller
}

// Name returns the item label.
func (c CreateItemCommand) Name() string {
	return c.name
}

// Quantity returns the initial unit count.
func (c CreateItemCommand) Quantity() int {
	return c.quantity
}

// Receiver returns the intended recipient.
func (c CreateItemCommand) Receiver() kernel.Identity {
	return c.receiver
}

// AdditionalInfo returns the free text attached to the item.
func (c CreateItemCommand) AdditionalInfo() string {
	return c.additionalInfo
}

func (c *CreateItemCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *CreateItemCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	c.quantity = quantity
	return nil
}

func (c *CreateItemCommand) setReceiver(receiver kernel.Identity) error {
	if err := receiver.Validate(); err != nil {
		return err
	}

	c.receiver = receiver
	return nil
}
