package commands

import (
	"context"

	"supplychain/internal/core/domain/model/notification"
	"supplychain/internal/core/ports"
)

// SetNameCommandHandler overwrites an item's label on behalf of its owner.
// Renaming is available in every lifecycle status, including Delivered.
type SetNameCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

// NewSetNameCommandHandler creates a handler for item renames.
func NewSetNameCommandHandler(uowFactory UoWFactory, clock ports.Clock) SetNameCommandHandler {
	return SetNameCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the rename command.
func (h SetNameCommandHandler) Handle(ctx context.Context, cmd SetNameCommand) error {
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

	aggregate.SetName(cmd.Name())

	if err = items.Update(ctx, aggregate); err != nil {
		return err
	}

	renamed, err := notification.NewNameChanged(aggregate.ID(), cmd.Name(), h.clock.Now())
	if err != nil {
		return err
	}

	if err = uow.NotificationLog().Append(ctx, renamed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
