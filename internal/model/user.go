package model

import "time"

// UserRole enumerates the capability levels of an account.  Managers
// may mutate plot status and create bookings; viewers are read-only.
type UserRole string

const (
	RoleManager UserRole = "manager"
	RoleViewer  UserRole = "viewer"
)

// Valid reports whether r is a known role.
func (r UserRole) Valid() bool {
	return r == RoleManager || r == RoleViewer
}

// User is an application account.  The bcrypt credential hash is kept
// out of JSON output; response payloads never carry it.
//
// Fields:
//  ID             – primary key identifier.
//  Username       – unique login name.
//  Email          – unique email address.
//  FullName       – display name.
//  Role           – capability level, defaults to viewer.
//  IsActive       – whether the account may authenticate.
//  HashedPassword – bcrypt hash, never serialized.
//  CreatedAt      – creation timestamp.
//  UpdatedAt      – last update timestamp (nil when never updated).
type User struct {
	ID             int        `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	FullName       string     `json:"full_name"`
	Role           UserRole   `json:"role"`
	IsActive       bool       `json:"is_active"`
	HashedPassword string     `json:"-"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}
