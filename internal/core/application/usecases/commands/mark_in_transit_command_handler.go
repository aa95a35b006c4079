package commands

import (
	"context"

	"supplychain/internal/core/domain/model/notification"
	"supplychain/internal/core/ports"
)

// MarkInTransitCommandHandler advances an item from Created to InTransit.
// The caller must hold the live ownership record; the transition itself is
// enforced by the item aggregate's status ratchet.
//
// Example:
//
//	handler := NewMarkInTransitCommandHandler(uowFactory, clock)
//	cmd, _ := NewMarkInTransitCommand(itemID, caller)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrUnauthorized):
//	    log.Println("caller does not own the item")
//	case errors.Is(err, item.ErrInvalidTransition):
//	    log.Println("item already left Created status")
//	}
type MarkInTransitCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

// NewMarkInTransitCommandHandler creates a handler for the Created ->
// InTransit transition.
func NewMarkInTransitCommandHandler(uowFactory UoWFactory, clock ports.Clock) MarkInTransitCommandHandler {
	return MarkInTransitCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the transition command. On success the item is InTransit
// and an ItemInTransit notification carrying sender and receiver has been
// appended. On any failure nothing is persisted.
func (h MarkInTransitCommandHandler) Handle(ctx context.Context, cmd MarkInTransitCommand) error {
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

	if err = aggregate.MarkInTransit(); err != nil {
		return err
	}

	if err = items.Update(ctx, aggregate); err != nil {
		return err
	}

	inTransit, err := notification.NewItemInTransit(aggregate.ID(), aggregate.Sender(), aggregate.Receiver(), h.clock.Now())
	if err != nil {
		return err
	}

	if err = uow.NotificationLog().Append(ctx, inTransit); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
