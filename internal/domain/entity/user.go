// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a staff account able to sign in to the back office.
//
// Two credential columns coexist for historical reasons: Password is the
// legacy column and may hold plaintext or a hash, PasswordHash is the
// dedicated hash-only column. Verification prefers PasswordHash when it
// holds a recognizable hash; migration only ever moves plaintext towards
// a hash, never the other way.
type User struct {
	ID           uuid.UUID  // The unique identifier for the account.
	Username     string     // Unique login name.
	Password     string     // Legacy credential column: plaintext or hash.
	PasswordHash string     // Dedicated hash column; empty when not yet migrated.
	RawRoles     string     // Role encoding as stored; normalized via ParseRoleSet.
	Active       bool       // Only active users are authenticable.
	LastLogin    *time.Time // Updated on every successful authentication.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Roles returns the user's normalized role set.
func (u *User) Roles() RoleSet {
	return ParseRoleSet(u.RawRoles)
}
