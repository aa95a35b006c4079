package ports

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/ownership"
)

// OwnershipRepository defines the persistence contract for ownership records.
// Records are keyed by (itemID, owner); the presence of a record is what makes
// an ownership live.
type OwnershipRepository interface {
	// Add persists a new ownership grant.
	Add(ctx context.Context, record *ownership.Record) error

	// Delete removes the grant keyed by (itemID, owner), superseding it.
	// Returns an ObjectNotFoundError when no such grant exists.
	Delete(ctx context.Context, itemID kernel.ItemID, owner kernel.Identity) error

	// Get retrieves the grant keyed by (itemID, owner).
	// Returns an ObjectNotFoundError when the identity holds no live grant
	// for the item.
	Get(ctx context.Context, itemID kernel.ItemID, owner kernel.Identity) (*ownership.Record, error)
}
