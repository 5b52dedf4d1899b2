package user

import (
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
)

// Role is the closed set of account kinds. Capabilities are derived from it
// by the transport layer; the domain only asks "is this a provider?".
type Role int

const (
	UnknownRole Role = iota
	Admin
	Customer
	Provider
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "UNKNOWN",
		Admin:       "ADMIN",
		Customer:    "CUSTOMER",
		Provider:    "PROVIDER",
	}
}

// ParseRole accepts the persisted/claim form, case-insensitively.
func ParseRole(s string) (Role, error) {
	needle := strings.ToUpper(strings.TrimSpace(s))
	for role, str := range getRoleStrings() {
		if role != UnknownRole && str == needle {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

func (r Role) Validate() error {
	if r < Admin || r > Provider {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

func (r Role) IsAdmin() bool    { return r == Admin }
func (r Role) IsCustomer() bool { return r == Customer }
func (r Role) IsProvider() bool { return r == Provider }
