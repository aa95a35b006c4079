package queries

import (
	"errors"

	"supplychain/internal/pkg/guard"
)

var (
	ErrGetUndeliveredItemsQueryIsNotConstructed = errors.New(
		"GetUndeliveredItemsQuery must be created via NewGetUndeliveredItemsQuery constructor",
	)
)

// GetUndeliveredItemsQuery retrieves every item that has not reached the
// delivered status yet.
type GetUndeliveredItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUndeliveredItemsQuery creates a query for all undelivered items.
func NewGetUndeliveredItemsQuery() GetUndeliveredItemsQuery {
	return GetUndeliveredItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUndeliveredItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetUndeliveredItemsQueryIsNotConstructed)
}

// GetUndeliveredItemsQueryResponse represents the collection of items still
// in flight.
type GetUndeliveredItemsQueryResponse struct {
	Items []ItemSummaryResponse
}

// ItemSummaryResponse is one undelivered item in the listing.
type ItemSummaryResponse struct {
	ID       int64
	Name     string
	Quantity int
	Status   string
}
