package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// User represents an account that can own dashboards and author queries.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	RoleID       *uuid.UUID
	IsActive     bool
	DeletedAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsDeleted reports whether the user has been soft-deleted.
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// Role is a named set of permission strings.
type Role struct {
	ID          uuid.UUID
	Name        string
	Description string
	Permissions []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasPermission reports whether the role grants perm.
func (r *Role) HasPermission(perm string) bool {
	return slices.Contains(r.Permissions, perm)
}

// Principal is the authenticated caller of a request. It is built once by
// the transport layer and passed by value; it is never mutated afterwards.
type Principal struct {
	UserID      uuid.UUID
	Username    string
	RoleID      *uuid.UUID
	Permissions []string
	Dev         bool
}

// Has reports whether the principal holds perm.
func (p Principal) Has(perm string) bool {
	return slices.Contains(p.Permissions, perm)
}

// HasAny reports whether the principal holds at least one of perms.
func (p Principal) HasAny(perms ...string) bool {
	for _, perm := range perms {
		if p.Has(perm) {
			return true
		}
	}
	return false
}
