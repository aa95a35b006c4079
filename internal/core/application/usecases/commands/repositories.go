// Package commands contains business operations that modify ledger state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// authorization against current ownership, transaction management, and
// notification emission within the same transaction.
package commands

import (
	"context"

	"supplychain/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ItemRepoFactory provides access to the item repository within a transaction.
	ItemRepoFactory interface {
		ItemRepository() ports.ItemRepository
	}

	// OwnershipRepoFactory provides access to the ownership repository within a transaction.
	OwnershipRepoFactory interface {
		OwnershipRepository() ports.OwnershipRepository
	}

	// NotificationLogFactory provides access to the notification log within a transaction.
	NotificationLogFactory interface {
		NotificationLog() ports.NotificationLog
	}

	// UoW manages transactions across the item table, the ownership table,
	// and the notification feed. Every ledger mutation touches at least the
	// ownership table (for the owner gate) and the feed, so a single unit of
	// work shape serves all command handlers.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   items := uow.ItemRepository()
	//   records := uow.OwnershipRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ItemRepoFactory
		OwnershipRepoFactory
		NotificationLogFactory
	}

	// UoWFactory creates new unit of work instances for ledger operations.
	UoWFactory interface {
		Create() UoW
	}
)
