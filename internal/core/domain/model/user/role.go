package user

import (
	"fmt"

	"appraise/internal/pkg/errs"
)

// Role represents a participant's role in the appraisal flow.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// Client requests and pays for appraisals.
	Client

	// Appraiser performs appraisals and submits reports.
	Appraiser
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		Client:    "CLIENT",
		Appraiser: "APPRAISER",
	}
}

// Validate checks that the Role is one of the defined roles.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire token for the role: "CLIENT" or "APPRAISER".
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "UNKNOWN"
}

// RoleFromString parses a wire token into a Role.
func RoleFromString(s string) (Role, error) {
	for role, token := range getRoleStrings() {
		if token == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}
