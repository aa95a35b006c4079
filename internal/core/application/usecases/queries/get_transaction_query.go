package queries

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

var (
	ErrGetTransactionQueryIsNotConstructed = errors.New(
		"GetTransactionQuery must be created via NewGetTransactionQuery constructor",
	)
)

// GetTransactionQuery retrieves the note recorded for an item at a given
// unix second.
type GetTransactionQuery struct {
	itemID     kernel.ItemID
	recordedAt int64

	guard guard.ConstructorGuard
}

// NewGetTransactionQuery creates a query for a single transaction note.
// The timestamp is the unix second the note was recorded under.
func NewGetTransactionQuery(itemID kernel.ItemID, recordedAt int64) (GetTransactionQuery, error) {
	if err := itemID.Validate(); err != nil {
		return GetTransactionQuery{}, err
	}

	if recordedAt < 0 {
		return GetTransactionQuery{}, errs.NewValueIsInvalidError("recordedAt")
	}

	return GetTransactionQuery{
		itemID:     itemID,
		recordedAt: recordedAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTransactionQuery) Validate() error {
	return q.guard.Validate(ErrGetTransactionQueryIsNotConstructed)
}

// ItemID returns the item being asked about.
func (q GetTransactionQuery) ItemID() kernel.ItemID {
	return q.itemID
}

// RecordedAt returns the unix second being looked up.
func (q GetTransactionQuery) RecordedAt() int64 {
	return q.recordedAt
}
