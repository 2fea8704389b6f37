// Package orderitem provides the OrderItem aggregate and its lifecycle
// state machine.
//
// Order items are created by order placement with a Workflow, the ordered
// plan of status steps they will go through, and start Active.
//
// Lifecycle transitions:
//
//	Active ──┬──> Completed
//	         └──> Cancelled
//
// Completed and Cancelled are terminal. Cancelling a completed item is a
// bad request; cancelling a cancelled item is a conflict.
package orderitem
