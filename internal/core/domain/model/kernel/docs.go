// Package kernel provides the identifier primitives shared by every aggregate
// of the fulfillment domain.
//
// The package includes:
//   - ID: the positive numeric identifier of statuses, roles, workflows,
//     order items and actors
//   - UUID: a validated wrapper over github.com/google/uuid used for history records
//
// Both types are immutable values and safe for concurrent use.
package kernel
