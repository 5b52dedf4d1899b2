package user

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrUsernameIsRequired   = errs.NewValueIsRequiredError("username")
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")
)

// User is the account read model. It is created by signup/seed and only read
// by the booking core, which needs the role for capability checks and the
// display name and phone for provider listings.
type User struct {
	id          kernel.UUID
	username    string
	displayName string
	phone       string
	role        Role
	active      bool
	guard       guard.ConstructorGuard
}

// NewUser creates an active account. An empty display name falls back to the username.
func NewUser(id kernel.UUID, username, displayName, phone string, role Role) (*User, error) {
	return RestoreUser(id, username, displayName, phone, role, true)
}

// RestoreUser rebuilds a User from storage.
func RestoreUser(
	id kernel.UUID,
	username, displayName, phone string,
	role Role,
	active bool,
) (*User, error) {
	u := &User{
		phone:  strings.TrimSpace(phone),
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setRole(role),
	); err != nil {
		return nil, err
	}
	u.displayName = strings.TrimSpace(displayName)
	if u.displayName == "" {
		u.displayName = u.username
	}

	return u, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.UUID     { return u.id }
func (u *User) Username() string    { return u.username }
func (u *User) DisplayName() string { return u.displayName }
func (u *User) Phone() string       { return u.phone }
func (u *User) Role() Role          { return u.role }
func (u *User) IsActive() bool      { return u.active }

// ValidateProvider checks that the account can be assigned bookings or own a
// provider profile.
func (u *User) ValidateProvider() error {
	if !u.role.IsProvider() {
		return errs.NewValueIsInvalidErrorWithCause(
			"provider",
			fmt.Errorf("user %s has role %s", u.id, u.role),
		)
	}
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrUsernameIsRequired
	}
	u.username = username
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
