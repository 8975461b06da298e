// Package kernel contains shared value objects used across the domain model.
//
// The kernel holds types that do not belong to any single aggregate but are
// required by all of them, currently the UUID identifier value object. Types
// in this package are immutable and safe for concurrent use.
package kernel
