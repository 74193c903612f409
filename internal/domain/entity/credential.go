package entity

import "strings"

// CredentialScheme is the tagged variant behind a stored credential
// string. The scheme is resolved once per read by structural prefix
// inspection; call sites never re-test prefixes themselves.
type CredentialScheme int

const (
	// SchemePlaintext marks a credential stored as the raw password.
	SchemePlaintext CredentialScheme = iota
	// SchemeBcrypt marks a bcrypt hash ($2a$ / $2b$ / $2y$).
	SchemeBcrypt
	// SchemeArgon2 marks an argon2 encoded hash ($argon2id$ / $argon2i$).
	SchemeArgon2
)

// String returns the scheme name, mainly for logging.
func (s CredentialScheme) String() string {
	switch s {
	case SchemeBcrypt:
		return "bcrypt"
	case SchemeArgon2:
		return "argon2"
	default:
		return "plaintext"
	}
}

// Hashed reports whether the scheme is a one-way hash.
func (s CredentialScheme) Hashed() bool {
	return s == SchemeBcrypt || s == SchemeArgon2
}

// ClassifyCredential determines a stored credential's scheme by prefix
// inspection only; it performs no decoding.
func ClassifyCredential(value string) CredentialScheme {
	switch {
	case strings.HasPrefix(value, "$2a$"),
		strings.HasPrefix(value, "$2b$"),
		strings.HasPrefix(value, "$2y$"):
		return SchemeBcrypt
	case strings.HasPrefix(value, "$argon2"):
		return SchemeArgon2
	default:
		return SchemePlaintext
	}
}
