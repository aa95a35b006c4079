package ownership

import (
	"errors"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

// ErrRecordIsNotConstructed is returned when a Record instance was not created
// through the NewRecord factory method.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")

// Record is an ownership grant associating one identity with one item at one
// point in time. A record is created when an item is registered (granting
// ownership to the creator) and on every transfer (granting ownership to the
// new owner); the superseded record is deleted in the same operation.
//
// The record keyed by (itemID, owner) being present is what makes an
// ownership "live": the authorization predicate for every gated operation is
// exactly "a record for (itemID, caller) exists and names the caller".
type Record struct {
	// itemID is the item the grant applies to
	itemID kernel.ItemID

	// owner is the granted party (redundant with the lookup key but carried
	// for symmetry with it)
	owner kernel.Identity

	// grantedAt is the time of the grant
	grantedAt time.Time

	// isConstructed ensures the record was created via NewRecord
	isConstructed bool
}

// NewRecord creates an ownership grant for owner on the given item.
//
// Parameters:
//   - itemID: The item the grant applies to (must be valid)
//   - owner: The granted party (must be a valid identity)
//   - grantedAt: The time of the grant (must not be the zero time)
//
// Returns the record, or a validation error if any parameter is invalid.
func NewRecord(itemID kernel.ItemID, owner kernel.Identity, grantedAt time.Time) (*Record, error) {
	record := &Record{
		grantedAt:     grantedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		record.setItemID(itemID),
		record.setOwner(owner),
	); err != nil {
		return nil, err
	}

	if grantedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("grantedAt")
	}

	return record, nil
}

// Validate ensures the Record instance was properly constructed through
// NewRecord.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// ItemID returns the item the grant applies to.
func (r *Record) ItemID() kernel.ItemID {
	return r.itemID
}

// Owner returns the granted party.
func (r *Record) Owner() kernel.Identity {
	return r.owner
}

// GrantedAt returns the time of the grant.
func (r *Record) GrantedAt() time.Time {
	return r.grantedAt
}

// IsHeldBy reports whether the grant names the given identity.
func (r *Record) IsHeldBy(identity kernel.Identity) bool {
	return r.owner.IsEqual(identity)
}

func (r *Record) setItemID(itemID kernel.ItemID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	r.itemID = itemID
	return nil
}

func (r *Record) setOwner(owner kernel.Identity) error {
	if err := owner.Validate(); err != nil {
		return err
	}
	r.owner = owner
	return nil
}
