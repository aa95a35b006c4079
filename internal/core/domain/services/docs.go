// Package services provides domain services that implement business rules
// spanning multiple domain entities in the supply-chain ledger.
//
// The package includes:
//   - OwnershipAuthorizer: A domain service evaluating the owner-gate predicate
//     that protects every mutating item operation
//
// Domain services keep cross-aggregate logic out of the aggregates themselves,
// following Domain-Driven Design principles.
package services
