// Package kernel provides core domain primitives for the supply-chain ledger.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - Identity: A value object for the authenticated party on whose behalf an operation executes
//   - ItemID: A value object for the sequential positive identifier of a tracked item
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
