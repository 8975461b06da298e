// Package delivery contains the Delivery aggregate: the tracked unit of work
// representing the transport of one order from restaurant to customer.
//
// The aggregate owns the dispatch state machine (Pending, Assigned, PickedUp,
// Delivered, Cancelled), the stage timestamps, the fee, and the heuristic
// time estimates. Transitions that must ripple into the owning order (pickup
// and completion) are recorded as domain events rather than mutating the
// order directly; the application layer applies them inside the same
// transaction as the delivery write.
package delivery
