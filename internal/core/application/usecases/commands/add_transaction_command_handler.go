package commands

import (
	"context"

	"supplychain/internal/core/domain/model/notification"
	"supplychain/internal/core/ports"
)

// AddTransactionCommandHandler appends a timestamped note to an item's
// transaction log on behalf of its owner. Returns the unix-second key the
// note was stored under.
type AddTransactionCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

// NewAddTransactionCommandHandler creates a handler for transaction notes.
func NewAddTransactionCommandHandler(uowFactory UoWFactory, clock ports.Clock) AddTransactionCommandHandler {
	return AddTransactionCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the note command and returns the timestamp key assigned
// to the note.
func (h AddTransactionCommandHandler) Handle(ctx context.Context, cmd AddTransactionCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := authorizeCaller(ctx, uow.OwnershipRepository(), cmd.ItemID(), cmd.Caller()); err != nil {
		return 0, err
	}

	items := uow.ItemRepository()
	aggregate, err := items.Get(ctx, cmd.ItemID())
	if err != nil {
		return 0, err
	}

	now := h.clock.Now()
	recordedAt := aggregate.AddTransaction(now, cmd.Note())

	if err = items.Update(ctx, aggregate); err != nil {
		return 0, err
	}

	recorded, err := notification.NewTransactionRecorded(aggregate.ID(), recordedAt, cmd.Note(), now)
	if err != nil {
		return 0, err
	}

	if err = uow.NotificationLog().Append(ctx, recorded); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return recordedAt, nil
}
