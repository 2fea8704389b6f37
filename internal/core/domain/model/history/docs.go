// Package history models the append-only audit trail of an order item.
//
// A Record is either a progress record (a workflow step was reached) or a
// cancellation record. The kind is explicit: cancellation is never inferred
// from the status ID alone, although cancellation records always carry
// status.CancelSentinelID so they can be resolved against the catalog like
// any other record. At most one cancellation record exists per order item.
//
// Records are immutable once created. Timestamps are UTC and truncated to
// microseconds, the precision the postgres store keeps.
package history
