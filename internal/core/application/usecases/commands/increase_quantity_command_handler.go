package commands

import (
	"context"

	"supplychain/internal/core/domain/model/notification"
	"supplychain/internal/core/ports"
)

// IncreaseQuantityCommandHandler adds stock to an item on behalf of its
// owner.
type IncreaseQuantityCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

// NewIncreaseQuantityCommandHandler creates a handler for relative quantity
// increases.
func NewIncreaseQuantityCommandHandler(uowFactory UoWFactory, clock ports.Clock) IncreaseQuantityCommandHandler {
	return IncreaseQuantityCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the increase command. The notification carries the
// resulting total, not the delta.
func (h IncreaseQuantityCommandHandler) Handle(ctx context.Context, cmd IncreaseQuantityCommand) error {
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

	if err = aggregate.IncreaseQuantity(cmd.Amount()); err != nil {
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
