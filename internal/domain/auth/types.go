package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import "time"

// Role represents an application's authorization role.
// Keep string form for easy persistence and cookies.
// Valid values are defined as constants below.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleGuest Role = "guest"
)

// IsAdmin is the single authorization predicate for admin-gated actions.
// Every admin-only surface consults this; the role comparison literal is
// never duplicated elsewhere.
func IsAdmin(r Role) bool { return r == RoleAdmin }

// ParseRole normalizes a stored role string. Anything other than exactly
// "admin" clamps to RoleUser; the guest role is never read from storage.
func ParseRole(s string) Role {
	if Role(s) == RoleAdmin {
		return RoleAdmin
	}
	return RoleUser
}

// Identity represents the authenticated principal returned by an IdP.
// Adapters map provider-specific claims into this shape.
type Identity struct {
	UserID    string // stable user identifier (provider sub)
	Name      string
	Email     string
	Picture   string
	ExpiresAt time.Time // absolute expiry from IdP token
}

// Session is the server-side record we persist for a signed-in user.
// ID is an opaque session identifier. Role is a snapshot taken at login
// time; the profiles table remains the durable source of truth.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Picture   string    `json:"picture"`
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsGuest returns true if the session role is guest.
func (s Session) IsGuest() bool { return s.Role == RoleGuest }

// IsAdmin reports whether the session carries the admin role.
func (s Session) IsAdmin() bool { return IsAdmin(s.Role) }

// Fixed shape of the local-only guest identity. Guests never come from a
// provider and never carry elevated permissions.
const (
	GuestUserID = "guest_user_01"
	GuestName   = "Guest User"
	GuestEmail  = "guest@example.com"
)

// AvatarURL returns the default avatar-generator URL for a display name.
func AvatarURL(seed string) string {
	if seed == "" {
		seed = "User"
	}
	return "https://api.dicebear.com/8.x/initials/svg?seed=" + seed
}
