package domain

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Role is the closed set of account roles
type Role string

const (
	RoleAdmin Role = "admin" // Full access, including the admin subtree
	RoleUser  Role = "user"  // Regular visitor account
)

// ParseRole converts a raw value into a Role
func ParseRole(raw string) (Role, error) {
	switch r := Role(raw); r {
	case RoleAdmin, RoleUser:
		return r, nil
	}
	return "", errors.Wrapf(ErrUnknownRole, "%q", raw)
}

// User Model
type User struct {
	ID       string `json:"id"`       // Opaque identifier
	Username string `json:"username"` // Unique, matched case-sensitively at login
	Email    string `json:"email"`    // Contact address
	Role     Role   `json:"role"`     // admin or user
	Blocked  bool   `json:"blocked"`  // Displayed in the admin table, not enforced at login
}

// IsAdmin reports whether the user holds the admin role
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Initial returns the upper-cased first letter of the username, used as an avatar
func (u User) Initial() string {
	r, _ := utf8.DecodeRuneInString(u.Username)
	if r == utf8.RuneError {
		return "?"
	}
	return strings.ToUpper(string(r))
}
