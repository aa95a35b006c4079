package kernel

import (
	"strings"

	"supplychain/internal/pkg/errs"
)

// ErrIdentityIsNotConstructed indicates that an Identity was not initialized
// through NewIdentity. This error is returned when validating a zero-value
// Identity.
var ErrIdentityIsNotConstructed = errs.NewValueIsRequiredError("Identity must be created via NewIdentity")

// Identity is a value object representing an authenticated party. The host
// environment authenticates callers and hands their identity to the ledger;
// the ledger treats it as opaque and compares it only for equality.
//
// The zero value of Identity is invalid and must be constructed through
// NewIdentity.
//
// Example usage:
//
//	caller, err := kernel.NewIdentity("org1-warehouse")
//	if err != nil {
//	    // handle error
//	}
//	if caller.IsEqual(owner) {
//	    // caller holds the ownership record
//	}
type Identity struct {
	value string
}

// NewIdentity creates an Identity from its opaque string form.
// Surrounding whitespace is not trimmed; the host is expected to deliver
// identities verbatim. Returns an error for an empty or blank string.
func NewIdentity(value string) (Identity, error) {
	if strings.TrimSpace(value) == "" {
		return Identity{}, errs.NewValueIsRequiredError("identity")
	}
	return Identity{value: value}, nil
}

// String returns the opaque string form of the identity.
func (i Identity) String() string {
	return i.value
}

// IsEqual compares two identities for equality. Equality is the only
// comparison the ledger ever performs on identities.
func (i Identity) IsEqual(other Identity) bool {
	return i.value == other.value
}

// IsZero reports whether the identity is the (invalid) zero value.
func (i Identity) IsZero() bool {
	return i.value == ""
}

// Validate checks that the identity was properly constructed.
// Returns ErrIdentityIsNotConstructed for the zero value.
func (i Identity) Validate() error {
	if i.value == "" {
		return ErrIdentityIsNotConstructed
	}
	return nil
}
