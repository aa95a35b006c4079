package commands

import (
	"context"

	"supplychain/internal/core/domain/model/notification"
	"supplychain/internal/core/domain/model/ownership"
	"supplychain/internal/core/ports"
)

// TransferOwnershipCommandHandler replaces the item's live ownership record.
// The caller's record is removed and a fresh record is granted to the new
// owner, so a self-transfer simply re-stamps the caller's grant.
type TransferOwnershipCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

// NewTransferOwnershipCommandHandler creates a handler for ownership
// transfers.
func NewTransferOwnershipCommandHandler(uowFactory UoWFactory, clock ports.Clock) TransferOwnershipCommandHandler {
	return TransferOwnershipCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the transfer command. After a successful transfer the
// previous owner loses all control over the item, including the ability to
// transfer it back.
func (h TransferOwnershipCommandHandler) Handle(ctx context.Context, cmd TransferOwnershipCommand) error {
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

	records := uow.OwnershipRepository()
	if _, err := authorizeCaller(ctx, records, cmd.ItemID(), cmd.Caller()); err != nil {
		return err
	}

	// The caller's record goes first so that a self-transfer ends with the
	// freshly stamped grant, not with no grant at all.
	if err := records.Delete(ctx, cmd.ItemID(), cmd.Caller()); err != nil {
		return err
	}

	granted, err := ownership.NewRecord(cmd.ItemID(), cmd.NewOwner(), h.clock.Now())
	if err != nil {
		return err
	}

	if err = records.Add(ctx, granted); err != nil {
		return err
	}

	transferred, err := notification.NewOwnershipTransferred(cmd.ItemID(), cmd.Caller(), cmd.NewOwner(), h.clock.Now())
	if err != nil {
		return err
	}

	if err = uow.NotificationLog().Append(ctx, transferred); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
