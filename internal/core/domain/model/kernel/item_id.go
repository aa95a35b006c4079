package kernel

import (
	"fmt"

	"supplychain/internal/pkg/errs"
)

// ErrItemIDIsNotConstructed indicates that an ItemID was not initialized
// through NewItemID. Item ids are assigned sequentially starting at 1, so the
// zero value never names a real item.
var ErrItemIDIsNotConstructed = errs.NewValueIsRequiredError("ItemID must be created via NewItemID")

// ItemID is a value object identifying a tracked item. Ids are positive
// integers handed out sequentially by the store, starting at 1, and are never
// reused.
//
// Example usage:
//
//	id, err := kernel.NewItemID(42)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(id.String()) // "42"
type ItemID struct {
	value int64
}

// NewItemID creates an ItemID from its integer form.
// Returns an error if the value is not positive.
func NewItemID(value int64) (ItemID, error) {
	if value <= 0 {
		return ItemID{}, errs.NewValueIsInvalidErrorWithCause("itemId",
			fmt.Errorf("%d is not a positive identifier", value))
	}
	return ItemID{value: value}, nil
}

// Int64 returns the integer form of the id.
func (id ItemID) Int64() int64 {
	return id.value
}

// String returns the decimal string form of the id.
func (id ItemID) String() string {
	return fmt.Sprintf("%d", id.value)
}

// IsEqual compares two item ids for equality.
func (id ItemID) IsEqual(other ItemID) bool {
	return id.value == other.value
}

// Validate checks that the id was properly constructed.
// Returns ErrItemIDIsNotConstructed for the zero value.
func (id ItemID) Validate() error {
	if id.value <= 0 {
		return ErrItemIDIsNotConstructed
	}
	return nil
}
