package commands

import (
	"context"

	"supplychain/internal/core/domain/model/item"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/notification"
	"supplychain/internal/core/domain/model/ownership"
	"supplychain/internal/core/ports"
)

// CreateItemCommandHandler handles the business logic for item registration.
// Reserves the next sequential item id, creates the item in Created status,
// grants the initial ownership record to the caller, and appends the
// creation notification, all within one transaction.
type CreateItemCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

// NewCreateItemCommandHandler creates a handler for item registration.
// Requires a UoWFactory for transactional persistence and a Clock for the
// ownership grant timestamp.
func NewCreateItemCommandHandler(uowFactory UoWFactory, clock ports.Clock) CreateItemCommandHandler {
	return CreateItemCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the item registration command and returns the assigned
// item id. Registration has no precondition failures: any valid command
// succeeds barring storage errors.
func (h CreateItemCommandHandler) Handle(ctx context.Context, cmd CreateItemCommand) (kernel.ItemID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.ItemID{}, err
	}

	now := h.clock.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.ItemID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	items := uow.ItemRepository()
	id, err := items.NextID(ctx)
	if err != nil {
		return kernel.ItemID{}, err
	}

	aggregate, err := item.NewItem(id, cmd.Name(), cmd.Quantity(), cmd.Caller(), cmd.Receiver(), cmd.AdditionalInfo())
	if err != nil {
		return kernel.ItemID{}, err
	}

	if err = items.Add(ctx, aggregate); err != nil {
		return kernel.ItemID{}, err
	}

	record, err := ownership.NewRecord(id, cmd.Caller(), now)
	if err != nil {
		return kernel.ItemID{}, err
	}

	if err = uow.OwnershipRepository().Add(ctx, record); err != nil {
		return kernel.ItemID{}, err
	}

	created, err := notification.NewItemCreated(id, cmd.Name(), cmd.Quantity(), cmd.Caller(), now)
	if err != nil {
		return kernel.ItemID{}, err
	}

	if err = uow.NotificationLog().Append(ctx, created); err != nil {
		return kernel.ItemID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.ItemID{}, err
	}

	return id, nil
}
