package commands

import (
	"errors"

	"supplychain/internal/pkg/guard"
)

var (
	ErrDispatchNotificationsCommandIsNotConstructed = errors.New(
		"DispatchNotificationsCommand must be created via NewDispatchNotificationsCommand constructor",
	)
)

// DispatchNotificationsCommand triggers delivery of pending notifications to
// the configured publisher. This batch operation drains the notification log
// in append order.
//
// Example:
//
//	cmd := NewDispatchNotificationsCommand()
//	handler := NewDispatchNotificationsCommandHandler(uowFactory, publisher)
//
//	// Run periodically to relay notifications
//	ticker := time.NewTicker(time.Second)
//	for range ticker.C {
//	    if err := handler.Handle(ctx, cmd); err != nil {
//	        log.Printf("Notification dispatch failed: %v", err)
//	    }
//	}
type DispatchNotificationsCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchNotificationsCommand creates a command to trigger notification
// dispatch. This is a parameterless command that processes pending
// notifications in batches.
func NewDispatchNotificationsCommand() DispatchNotificationsCommand {
	command := DispatchNotificationsCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
func (c *DispatchNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrDispatchNotificationsCommandIsNotConstructed)
}
