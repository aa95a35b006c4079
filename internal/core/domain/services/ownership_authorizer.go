package services

import (
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/ownership"
	"supplychain/internal/pkg/errs"
)

// OwnershipAuthorizer evaluates the owner-gate predicate protecting mutating
// item operations: the caller must hold the live ownership record for the
// exact item being mutated. The predicate is a pure function of the record
// and the caller; it is re-evaluated independently on every gated call, with
// no session or cache of "current owner".
type OwnershipAuthorizer struct{}

// NewOwnershipAuthorizer creates an OwnershipAuthorizer.
func NewOwnershipAuthorizer() OwnershipAuthorizer {
	return OwnershipAuthorizer{}
}

// Authorize returns nil when record is a valid live grant for itemID held by
// caller, and an UnauthorizedError otherwise. A missing record (nil) means
// the caller never held the item or has been superseded by a transfer.
func (OwnershipAuthorizer) Authorize(record *ownership.Record, itemID kernel.ItemID, caller kernel.Identity) error {
	if err := record.Validate(); err != nil {
		return errs.NewUnauthorizedErrorWithCause(caller.String(), itemID.Int64(), err)
	}
	if !record.ItemID().IsEqual(itemID) || !record.IsHeldBy(caller) {
		return errs.NewUnauthorizedError(caller.String(), itemID.Int64())
	}
	return nil
}
