// Package queries contains read operations against the ledger state.
// Queries bypass the domain model and read the database directly, per the
// CQRS split. Reads are open to any caller and never fail on absent data:
// asking about an unknown item yields zero values.
package queries

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var (
	ErrGetItemDetailsQueryIsNotConstructed = errors.New(
		"GetItemDetailsQuery must be created via NewGetItemDetailsQuery constructor",
	)
)

// GetItemDetailsQuery retrieves the full record of a single item.
//
// Example:
//
//	query, _ := NewGetItemDetailsQuery(itemID)
//	handler := NewGetItemDetailsQueryHandler(db)
//
//	details, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get item details: %w", err)
//	}
//	fmt.Printf("%s x%d (%s)\n", details.Name, details.Quantity, details.Status)
type GetItemDetailsQuery struct {
	itemID kernel.ItemID

	guard guard.ConstructorGuard
}

// NewGetItemDetailsQuery creates a query for one item's details.
func NewGetItemDetailsQuery(itemID kernel.ItemID) (GetItemDetailsQuery, error) {
	if err := itemID.Validate(); err != nil {
		return GetItemDetailsQuery{}, err
	}

	return GetItemDetailsQuery{itemID: itemID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetItemDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetItemDetailsQueryIsNotConstructed)
}

// ItemID returns the item being asked about.
func (q GetItemDetailsQuery) ItemID() kernel.ItemID {
	return q.itemID
}

// GetItemDetailsQueryResponse represents one item's full record.
// A query for an unknown item yields the zero value of this struct.
type GetItemDetailsQueryResponse struct {
	ID             int64
	Name           string
	Quantity       int
	Sender         string
	Receiver       string
	Status         string
	AdditionalInfo string
}
