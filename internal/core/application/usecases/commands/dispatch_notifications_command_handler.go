package commands

import (
	"context"
	"errors"

	"supplychain/internal/core/ports"

	"github.com/google/uuid"
)

var (
	ErrNoPendingNotifications = errors.New("no pending notifications")
)

// dispatchBatchSize caps how many notifications one dispatch run relays.
const dispatchBatchSize = 100

// DispatchNotificationsCommandHandler relays pending notifications from the
// log to the publisher and marks them dispatched. Publishing happens inside
// the transaction, so a failed publish leaves the batch pending for the next
// run.
type DispatchNotificationsCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.NotificationPublisher
}

// NewDispatchNotificationsCommandHandler creates a handler for notification
// dispatch operations.
func NewDispatchNotificationsCommandHandler(
	uowFactory UoWFactory,
	publisher ports.NotificationPublisher,
) DispatchNotificationsCommandHandler {
	return DispatchNotificationsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the dispatch command. Retrieves the oldest pending
// notifications, publishes each in append order, and marks the batch
// dispatched within a single transaction. Returns ErrNoPendingNotifications
// when the log has nothing to relay.
func (h DispatchNotificationsCommandHandler) Handle(ctx context.Context, cmd DispatchNotificationsCommand) error {
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

	log := uow.NotificationLog()

	pending, err := log.GetUndispatched(ctx, dispatchBatchSize)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return ErrNoPendingNotifications
	}

	dispatched := make([]uuid.UUID, 0, len(pending))
	for _, pendingNotification := range pending {
		if err = h.publisher.Publish(ctx, pendingNotification); err != nil {
			return err
		}

		dispatched = append(dispatched, pendingNotification.ID())
	}

	if err = log.MarkDispatched(ctx, dispatched); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
