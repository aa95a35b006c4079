// Package notification implements the structured records emitted for every
// successful ledger mutation. Notifications exist purely for external
// observers: the ledger appends them in the same transaction as the mutation
// (so a failed operation emits nothing) and a relay drains them outward in
// execution order.
package notification
