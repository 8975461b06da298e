package user

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New(
	"User must be created via NewUser or RestoreUser constructor",
)

// Role classifies what a user may do in the platform. Dispatch only cares
// whether a user carries the courier capability.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	UnknownRole Role = iota

	// Customer places orders.
	Customer

	// Courier transports orders and may be assigned deliveries.
	Courier

	// Manager administers the platform.
	Manager
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "UNKNOWN",
		Customer:    "CUSTOMER",
		Courier:     "COURIER",
		Manager:     "MANAGER",
	}
}

// RoleFromString parses a role name as stored in the users table.
func RoleFromString(s string) (Role, error) {
	for role, name := range getRoleStrings() {
		if role != UnknownRole && name == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause(
		"role is invalid",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks that the Role is one of the defined roles.
func (r Role) Validate() error {
	if r != Customer && r != Courier && r != Manager {
		return errs.NewValueIsInvalidErrorWithCause(
			"role is invalid",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the canonical upper-case name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// User is the dispatch-facing slice of a platform user. Dispatch reads the
// identity, display name, and role; everything else about users lives in the
// accounts subsystem.
type User struct {
	id   kernel.UUID
	name string
	role Role

	guard guard.ConstructorGuard
}

// NewUser creates a user with the given identity, name, and role.
func NewUser(id kernel.UUID, name string, role Role) (*User, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &User{
		id:    id,
		name:  name,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(id kernel.UUID, name string, role Role) (*User, error) {
	return NewUser(id, name, role)
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

// IsCourier reports whether the user may be assigned deliveries.
func (u *User) IsCourier() bool {
	return u.role == Courier
}
