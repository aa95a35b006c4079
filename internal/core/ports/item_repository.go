// Package ports defines the contracts between the ledger core and
// infrastructure. These interfaces establish the persistence and publishing
// boundaries, enabling dependency inversion and testability.
package ports

import (
	"context"

	"supplychain/internal/core/domain/model/item"
	"supplychain/internal/core/domain/model/kernel"
)

// ItemRepository defines the persistence contract for item aggregates.
// Provides methods for storing, retrieving, and identifying item entities
// including their transaction logs.
type ItemRepository interface {
	// NextID reserves and returns the next sequential item identifier.
	// Ids start at 1 and are never reused, even when the item creation that
	// reserved one subsequently fails.
	NextID(ctx context.Context) (kernel.ItemID, error)

	// Add persists a new item aggregate to storage.
	// The item must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *item.Item) error

	// Update persists changes to an existing item aggregate, including any
	// transaction-log entries added since it was loaded. An entry at an
	// already-persisted timestamp overwrites the stored text.
	Update(ctx context.Context, aggregate *item.Item) error

	// Get retrieves an item aggregate by its identifier.
	// Returns the complete item with its transaction log.
	Get(ctx context.Context, id kernel.ItemID) (*item.Item, error)
}
