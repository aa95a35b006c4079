package commands

import (
	"context"

	"supplychain/internal/core/domain/model/notification"
	"supplychain/internal/core/ports"
)

// SetAdditionalInfoCommandHandler overwrites an item's free-form description
// on behalf of its owner.
type SetAdditionalInfoCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

// NewSetAdditionalInfoCommandHandler creates a handler for description
// updates.
func NewSetAdditionalInfoCommandHandler(uowFactory UoWFactory, clock ports.Clock) SetAdditionalInfoCommandHandler {
	return SetAdditionalInfoCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the description update command.
func (h SetAdditionalInfoCommandHandler) Handle(ctx context.Context, cmd SetAdditionalInfoCommand) error {
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

	aggregate.SetAdditionalInfo(cmd.AdditionalInfo())

	if err = items.Update(ctx, aggregate); err != nil {
		return err
	}

	changed, err := notification.NewAdditionalInfoChanged(aggregate.ID(), cmd.AdditionalInfo(), h.clock.Now())
	if err != nil {
		return err
	}

	if err = uow.NotificationLog().Append(ctx, changed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
