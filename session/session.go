// Package session holds the device-local login state: the bearer token
// issued by the backend and the last-fetched profile snapshot. It is the
// single source of truth for "is the user logged in, and as whom".
package session

import (
	"github.com/hemoglobin-nil/hemoglobin-go/users"
)

// Session is the persisted shape: token and user are independently
// nullable. A token can exist with a stale or absent user snapshot, so
// role decisions must never assume User is populated.
type Session struct {
	Token string      `json:"token,omitempty"`
	User  *users.User `json:"user,omitempty"`
}

// IsAuthenticated reports whether a token is present. It says nothing
// about token validity; the backend remains the authority on that.
func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}
