// Package order models the dispatch-facing slice of the food order aggregate.
// Only the fulfilment status and the actual delivery timestamp are in scope;
// both are driven exclusively by delivery lifecycle transitions.
package order
