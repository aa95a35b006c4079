package queries

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var (
	ErrGetAdditionalInfoQueryIsNotConstructed = errors.New(
		"GetAdditionalInfoQuery must be created via NewGetAdditionalInfoQuery constructor",
	)
)

// GetAdditionalInfoQuery retrieves the free-form description of an item.
type GetAdditionalInfoQuery struct {
	itemID kernel.ItemID

	guard guard.ConstructorGuard
}

// NewGetAdditionalInfoQuery creates a query for an item's description.
func NewGetAdditionalInfoQuery(itemID kernel.ItemID) (GetAdditionalInfoQuery, error) {
	if err := itemID.Validate(); err != nil {
		return GetAdditionalInfoQuery{}, err
	}

	return GetAdditionalInfoQuery{itemID: itemID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAdditionalInfoQuery) Validate() error {
	return q.guard.Validate(ErrGetAdditionalInfoQueryIsNotConstructed)
}

// ItemID returns the item being asked about.
func (q GetAdditionalInfoQuery) ItemID() kernel.ItemID {
	return q.itemID
}
