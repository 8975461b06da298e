// Package user models the dispatch-facing slice of a platform user: identity
// and role. The courier role gates delivery assignment.
package user
