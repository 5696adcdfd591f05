package auth

import (
	"errors"
	"regexp"
	"time"
)

// emailPattern is a light-touch format check: one @, no whitespace, a
// dot in the domain. Real validation is delivery, not regex.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// maxEmailLength is the maximum allowed email length.
const maxEmailLength = 254

// IsValidEmail checks if an email meets format requirements.
func IsValidEmail(email string) bool {
	return len(email) <= maxEmailLength && emailPattern.MatchString(email)
}

// User represents a registered account holder.
//
// Email uniquely identifies exactly one user and is stored case-sensitive.
// PasswordHash is set at creation and never serialised outward.
type User struct {
	ID           string    `json:"userId"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never serialised
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Organisation represents a tenant grouping of users.
// Every user belongs to at least one organisation: registration creates
// a personal one ("<FirstName>'s Organisation").
type Organisation struct {
	ID          string    `json:"orgId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Sentinel errors for auth operations.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("email already exists")
	ErrOrgNotFound  = errors.New("organisation not found")

	// ErrInvalidHash marks a stored password hash that cannot be decoded.
	// This is a data-integrity fault, not a failed login.
	ErrInvalidHash = errors.New("invalid password hash format")

	// ErrTokenInvalid is the single outward rejection signal for token
	// verification. The sub-reasons below are wrapped inside it.
	ErrTokenInvalid = errors.New("invalid token")

	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenTampered  = errors.New("token signature mismatch")
	ErrTokenExpired   = errors.New("token has expired")
)
