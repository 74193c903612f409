// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"backoffice/config"
	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"
)

// credentialVerifier implements service.CredentialVerifier over the two
// credential columns described by entity.User.
type credentialVerifier struct {
	cost int
}

// NewCredentialVerifier is the constructor for credentialVerifier.
func NewCredentialVerifier(cfg *config.Config) service.CredentialVerifier {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	return &credentialVerifier{cost: cost}
}

// Verify checks password against the user's stored credential. The
// dedicated hash column takes precedence when it holds a recognizable
// hash; otherwise the legacy column is checked under its own scheme,
// falling back to byte-equality for plaintext.
func (v *credentialVerifier) Verify(password string, user *entity.User) bool {
	if user == nil {
		return false
	}

	if user.PasswordHash != "" {
		if scheme := entity.ClassifyCredential(user.PasswordHash); scheme.Hashed() {
			return verifyHashed(password, user.PasswordHash, scheme)
		}
	}

	if scheme := entity.ClassifyCredential(user.Password); scheme.Hashed() {
		return verifyHashed(password, user.Password, scheme)
	}

	// Constant-time plaintext comparison; length leaks are acceptable
	// for a credential that is about to be migrated away anyway.
	return subtle.ConstantTimeCompare([]byte(password), []byte(user.Password)) == 1
}

// Hash produces a bcrypt hash at the configured work factor. New hashes
// are always bcrypt; argon2 appears only in records written by earlier
// systems.
func (v *credentialVerifier) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), v.cost)

	return string(bytes), err
}

// verifyHashed dispatches to the scheme's verification function. A
// malformed stored hash verifies false rather than failing.
func verifyHashed(password, stored string, scheme entity.CredentialScheme) bool {
	switch scheme {
	case entity.SchemeBcrypt:
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	case entity.SchemeArgon2:
		return verifyArgon2(password, stored)
	default:
		return false
	}
}
