package notification

import (
	"fmt"

	"supplychain/internal/pkg/errs"
)

// Kind identifies the ledger operation a notification reports.
type Kind int

const (
	// UnknownKind represents an invalid or undefined kind.
	UnknownKind Kind = iota

	// ItemCreated reports a new item registration.
	ItemCreated

	// ItemInTransit reports the Created -> InTransit transition.
	ItemInTransit

	// ItemDelivered reports the InTransit -> Delivered transition.
	ItemDelivered

	// OwnershipTransferred reports an ownership transfer.
	OwnershipTransferred

	// NameChanged reports an item label overwrite.
	NameChanged

	// QuantityChanged reports a quantity mutation with the new total.
	QuantityChanged

	// AdditionalInfoChanged reports an additional-info overwrite.
	AdditionalInfoChanged

	// TransactionRecorded reports an entry added to the transaction log.
	TransactionRecorded
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind:           "Unknown",
		ItemCreated:           "ItemCreated",
		ItemInTransit:         "ItemInTransit",
		ItemDelivered:         "ItemDelivered",
		OwnershipTransferred:  "OwnershipTransferred",
		NameChanged:           "NameChanged",
		QuantityChanged:       "QuantityChanged",
		AdditionalInfoChanged: "AdditionalInfoChanged",
		TransactionRecorded:   "TransactionRecorded",
	}
}

// Validate checks that the kind is one of the defined operation kinds.
func (k Kind) Validate() error {
	if k == UnknownKind {
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid", fmt.Errorf("%d is not a valid kind", k))
	}
	if _, ok := getKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

// String returns the symbolic name of the kind. Implements fmt.Stringer and
// is safe to call on any Kind value.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}
