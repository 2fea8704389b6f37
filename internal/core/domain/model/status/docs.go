// Package status models the status nodes of the fulfillment workflow catalog.
//
// A Status is one step of a fulfillment workflow. Statuses may depend on a
// parent status, forming a forest: the dependency is held as the parent's
// identifier only, never as a pointer to the parent, so the catalog can be
// loaded and listed without ownership cycles.
//
// The status with CancelSentinelID is reserved. It tags cancellation history
// records, is seeded by the storage migrations and is never listed, updated
// or removed through the catalog.
package status
