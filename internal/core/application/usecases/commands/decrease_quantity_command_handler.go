package commands

import (
	"context"

	"supplychain/internal/core/domain/model/notification"
	"supplychain/internal/core/ports"
)

// DecreaseQuantityCommandHandler removes stock from an item on behalf of its
// owner. The aggregate rejects removals that exceed the current quantity, in
// which case nothing is persisted.
type DecreaseQuantityCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

// NewDecreaseQuantityCommandHandler creates a handler for relative quantity
// decreases.
func NewDecreaseQuantityCommandHandler(uowFactory UoWFactory, clock ports.Clock) DecreaseQuantityCommandHandler {
	return DecreaseQuantityCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the decrease command. The notification carries the
// resulting total, not the delta.
func (h DecreaseQuantityCommandHandler) Handle(ctx context.Context, cmd DecreaseQuantityCommand) error {
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

	if err = aggregate.DecreaseQuantity(cmd.Amount()); err != nil {
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
