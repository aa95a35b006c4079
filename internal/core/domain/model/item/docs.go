// Package item implements the Item aggregate, the central entity of the
// supply-chain ledger. An item is a tracked unit of goods with an identity,
// a quantity, immutable sender and receiver parties, a one-way lifecycle
// (Created -> InTransit -> Delivered), free-text additional info, and a
// timestamp-keyed transaction log.
//
// The aggregate enforces the lifecycle ratchet and the non-negative quantity
// invariant itself; ownership-based authorization is evaluated by the
// application layer before any mutating method is invoked.
package item
