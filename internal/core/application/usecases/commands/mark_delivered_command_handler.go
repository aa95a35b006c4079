package commands

import (
	"context"

	"supplychain/internal/core/domain/model/notification"
	"supplychain/internal/core/ports"
)

// MarkDeliveredCommandHandler advances an item from InTransit to Delivered.
// The caller must hold the live ownership record; the transition itself is
// enforced by the item aggregate's status ratchet.
type MarkDeliveredCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

// NewMarkDeliveredCommandHandler creates a handler for the InTransit ->
// Delivered transition.
func NewMarkDeliveredCommandHandler(uowFactory UoWFactory, clock ports.Clock) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the transition command. On success the item is Delivered
// and an ItemDelivered notification carrying the receiver has been appended.
// On any failure nothing is persisted.
func (h MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
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

	if err = aggregate.MarkDelivered(); err != nil {
		return err
	}

	if err = items.Update(ctx, aggregate); err != nil {
		return err
	}

	delivered, err := notification.NewItemDelivered(aggregate.ID(), aggregate.Receiver(), h.clock.Now())
	if err != nil {
		return err
	}

	if err = uow.NotificationLog().Append(ctx, delivered); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
