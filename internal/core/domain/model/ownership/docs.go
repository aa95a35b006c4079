// Package ownership implements the ownership Record, the grant that ties an
// identity to an item at a point in time. The data structure itself does not
// enforce single ownership; the transfer operation preserves it by granting
// the new owner and deleting the superseded record atomically.
package ownership
