package domain

import (
	"strings"
	"time"
)

// Role tags a registrant as a general user or an advocate.
type Role string

const (
	RoleUser     Role = "User"
	RoleAdvocate Role = "Advocate"
)

// ParseRole matches s case-insensitively against the known roles.
// An empty string yields RoleUser.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "user":
		return RoleUser, true
	case "advocate":
		return RoleAdvocate, true
	default:
		return "", false
	}
}

// UnmarshalText normalises stored roles. Values outside the closed set are
// read as RoleUser so they never reach the advocate directory.
func (r *Role) UnmarshalText(b []byte) error {
	parsed, ok := ParseRole(string(b))
	if !ok {
		parsed = RoleUser
	}
	*r = parsed
	return nil
}

// UserRecord is one registrant's stored profile and credential hash.
type UserRecord struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"password"`
	Fullname       string    `json:"fullname"`
	Mobile         string    `json:"mobile"`
	City           string    `json:"city"`
	State          string    `json:"state"`
	Pincode        string    `json:"pincode"`
	Role           Role      `json:"role"`
	BarID          string    `json:"barid"`
	Specialization string    `json:"specialization"`
	Experience     string    `json:"experience"`
	AttachmentRef  string    `json:"image"`
	CreatedAt      time.Time `json:"created_at,omitzero"`
}

// RecordCollection is the full, ordered set of user records.
type RecordCollection []UserRecord

// FindByEmail returns the record with exactly the given email.
func (rc RecordCollection) FindByEmail(email string) (UserRecord, bool) {
	for _, u := range rc {
		if u.Email == email {
			return u, true
		}
	}
	return UserRecord{}, false
}

// UserSummary is the only user view echoed back by signup and login.
type UserSummary struct {
	Email    string `json:"email"`
	Fullname string `json:"fullname"`
}

// Summary projects the record to its public echo.
func (u UserRecord) Summary() UserSummary {
	return UserSummary{Email: u.Email, Fullname: u.Fullname}
}

// AdvocateSummary is a public directory entry.
type AdvocateSummary struct {
	Fullname       string `json:"fullname"`
	Email          string `json:"email"`
	Specialization string `json:"specialization"`
	Experience     string `json:"experience"`
	City           string `json:"city"`
	State          string `json:"state"`
	BarID          string `json:"barid"`
	Image          string `json:"image"`
}
