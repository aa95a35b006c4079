package commands

import (
	"context"

	"supplychain/internal/core/domain/model/notification"
	"supplychain/internal/core/ports"
)

// SetQuantityCommandHandler overwrites an item's quantity with an absolute
// value on behalf of its owner.
type SetQuantityCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

// NewSetQuantityCommandHandler creates a handler for absolute quantity
// updates.
func NewSetQuantityCommandHandler(uowFactory UoWFactory, clock ports.Clock) SetQuantityCommandHandler {
	return SetQuantityCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the quantity update command. The notification carries the
// resulting total.
func (h SetQuantityCommandHandler) Handle(ctx context.Context, cmd SetQuantityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := authorizeCaller(ctx, uow.OwnershipRepository(), cmd.ItemID(), cmd.Caller()); err != nil {
		return err
	}

	items := uow.ItemRepository()
	aggregate, err := items.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if err = aggregate.SetQuantity(cmd.Quantity()); err != nil {
		return err
	}

	if err = items.Update(ctx, aggregate); err != nil {
		return err
	}

	changed, err := notification.NewQuantityChanged(aggregate.ID(), aggregate.Quantity(), h.clock.Now())
	if err != nil {
		return err
	}

	if err = uow.NotificationLog().Append(ctx, changed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
