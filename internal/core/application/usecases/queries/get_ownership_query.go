package queries

import (
	"errors"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var (
	ErrGetOwnershipQueryIsNotConstructed = errors.New(
		"GetOwnershipQuery must be created via NewGetOwnershipQuery constructor",
	)
)

// GetOwnershipQuery retrieves the caller's own ownership record for an item.
// The view is caller-relative: an identity can see whether it holds the
// item, not who else does.
type GetOwnershipQuery struct {
	itemID kernel.ItemID
	caller kernel.Identity

	guard guard.ConstructorGuard
}

// NewGetOwnershipQuery creates a query for the caller's grant on an item.
func NewGetOwnershipQuery(itemID kernel.ItemID, caller kernel.Identity) (GetOwnershipQuery, error) {
	if err := errors.Join(itemID.Validate(), caller.Validate()); err != nil {
		return GetOwnershipQuery{}, err
	}

	return GetOwnershipQuery{itemID: itemID, caller: caller, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOwnershipQuery) Validate() error {
	return q.guard.Validate(ErrGetOwnershipQueryIsNotConstructed)
}

// ItemID returns the item being asked about.
func (q GetOwnershipQuery) ItemID() kernel.ItemID {
	return q.itemID
}

// Caller returns the identity whose grant is being looked up.
func (q GetOwnershipQuery) Caller() kernel.Identity {
	return q.caller
}

// GetOwnershipQueryResponse represents the caller's grant on an item.
// When the caller holds no live grant the zero value is returned: IsOwner
// false and a zero timestamp.
type GetOwnershipQueryResponse struct {
	IsOwner   bool
	GrantedAt time.Time
}
