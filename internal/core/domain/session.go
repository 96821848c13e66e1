package domain

import "time"

// Session is the authenticated-identity state bound to one client.
type Session struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Authenticated bool      `json:"authenticated"`
	CreatedAt     time.Time `json:"created_at"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its lifetime at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// SessionStatus is the answer to "is this caller authenticated, and as whom".
type SessionStatus struct {
	LoggedIn bool    `json:"loggedIn"`
	Email    *string `json:"email"`
}
