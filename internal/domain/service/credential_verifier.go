// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit
// within a single entity.
package service

import "backoffice/internal/domain/entity"

// CredentialVerifier checks a candidate password against a user's stored
// credential, whatever scheme it is stored under, and produces new
// hashes for the upgrade path. Verification never mutates storage and a
// malformed stored hash is a non-match, not an error.
type CredentialVerifier interface {
	// Verify reports whether password matches the user's credential.
	// The dedicated hash column wins when it holds a recognizable hash;
	// otherwise the legacy column is checked, hashed or byte-equal.
	Verify(password string, user *entity.User) bool

	// Hash produces a bcrypt hash at the configured work factor.
	Hash(password string) (string, error)
}
