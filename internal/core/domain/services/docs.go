// Package services provides the domain services of the fulfillment core,
// the logic that spans more than one aggregate.
//
// The package includes:
//   - RoleVisibilityIndex: which roles may view a status
//   - HistoryLedger: the append-only audit trail with its single-cancellation rule
//   - WorkflowProjector: the caller-facing workflow view of an order item
//   - DependencyGuard: keeps the status dependency forest acyclic
package services
