package item

import (
	"errors"
	"fmt"

	"supplychain/internal/pkg/errs"
)

// ErrInvalidTransition is returned when a status change is requested that the
// lifecycle does not allow. The lifecycle is a one-way ratchet: a status never
// regresses and never skips a step.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of a tracked item.
// It implements a state machine with defined transitions to ensure
// items follow the correct shipping workflow.
//
// State transitions:
//
//	Created ──> InTransit ──> Delivered
//
// Each transition is one-way; there is no regression and no skipping.
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an item is first registered.
	// Items in this status are with the sender, waiting for shipment.
	Created

	// InTransit indicates the item has left the sender and is being moved.
	InTransit

	// Delivered indicates the item has reached the receiver.
	// This is a final state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		InTransit: "InTransit",
		Delivered: "Delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "Created",
		InTransit: "InTransit",
		Delivered: "Delivered",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Created, InTransit, Delivered.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns "Created", "InTransit", or "Delivered" for valid statuses and
// "Unknown" for invalid status values. Implements the fmt.Stringer interface
// and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// MarkInTransit transitions the status to InTransit.
//
// The only valid transition is Created -> InTransit. Any other starting
// status, including InTransit itself, yields ErrInvalidTransition.
//
// Returns:
//   - (InTransit, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) MarkInTransit() (Status, error) {
	if s != Created {
		return 0, fmt.Errorf("%w: cannot mark %s item in transit", ErrInvalidTransition, s)
	}
	return InTransit, nil
}

// MarkDelivered transitions the status to Delivered.
//
// The only valid transition is InTransit -> Delivered. An item cannot be
// delivered straight from Created, and a Delivered item stays Delivered.
//
// Returns:
//   - (Delivered, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) MarkDelivered() (Status, error) {
	if s != InTransit {
		return 0, fmt.Errorf("%w: cannot mark %s item delivered", ErrInvalidTransition, s)
	}
	return Delivered, nil
}
