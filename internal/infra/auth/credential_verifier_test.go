package auth

import (
	"encoding/base64"
	"fmt"
	"testing"

	"backoffice/config"
	"backoffice/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

func newTestVerifier() *credentialVerifier {
	// Low cost keeps the bcrypt round trips fast under test.
	return &credentialVerifier{cost: bcrypt.MinCost}
}

// encodeArgon2id builds an encoded argon2id credential for the given
// password, matching the format records written by earlier systems use.
func encodeArgon2id(password string, salt []byte, timeCost, memory uint32, threads uint8) string {
	hash := argon2.IDKey([]byte(password), salt, timeCost, memory, threads, 32)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, memory, timeCost, threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)
}

func TestCredentialVerifier_HashRoundTrip(t *testing.T) {
	verifier := newTestVerifier()

	hash, err := verifier.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.Equal(t, entity.SchemeBcrypt, entity.ClassifyCredential(hash))

	user := &entity.User{PasswordHash: hash}
	assert.True(t, verifier.Verify("correct horse battery staple", user))
	assert.False(t, verifier.Verify("wrong password", user))
}

func TestCredentialVerifier_DedicatedColumnTakesPrecedence(t *testing.T) {
	verifier := newTestVerifier()

	hash, err := verifier.Hash("new-password")
	require.NoError(t, err)

	// Legacy column still holds the old plaintext; only the hash counts.
	user := &entity.User{
		Password:     "old-plaintext",
		PasswordHash: hash,
	}

	assert.True(t, verifier.Verify("new-password", user))
	assert.False(t, verifier.Verify("old-plaintext", user))
}

func TestCredentialVerifier_LegacyHashedColumn(t *testing.T) {
	verifier := newTestVerifier()

	hash, err := verifier.Hash("migrated-in-place")
	require.NoError(t, err)

	// Some rows were hashed directly over the legacy column.
	user := &entity.User{Password: hash}

	assert.True(t, verifier.Verify("migrated-in-place", user))
	assert.False(t, verifier.Verify(hash, user))
}

func TestCredentialVerifier_PlaintextFallback(t *testing.T) {
	verifier := newTestVerifier()

	user := &entity.User{Password: "hunter2"}

	assert.True(t, verifier.Verify("hunter2", user))
	assert.False(t, verifier.Verify("hunter3", user))
	assert.False(t, verifier.Verify("", user))
}

func TestCredentialVerifier_EmptyCredentials(t *testing.T) {
	verifier := newTestVerifier()

	assert.False(t, verifier.Verify("anything", &entity.User{}))
	assert.False(t, verifier.Verify("anything", nil))

	// An empty password matching an empty legacy column would let anyone
	// in; the constant-time compare does match here, which is why login
	// rejects empty input before verification.
	assert.True(t, verifier.Verify("", &entity.User{}))
}

func TestCredentialVerifier_MalformedHashIsNonMatch(t *testing.T) {
	verifier := newTestVerifier()

	user := &entity.User{PasswordHash: "$2a$10$not-a-real-bcrypt-hash"}
	assert.False(t, verifier.Verify("anything", user))
}

func TestVerifyArgon2(t *testing.T) {
	salt := []byte("0123456789abcdef")
	encoded := encodeArgon2id("s3cret", salt, 1, 1024, 1)

	assert.True(t, verifyArgon2("s3cret", encoded))
	assert.False(t, verifyArgon2("wrong", encoded))

	user := &entity.User{PasswordHash: encoded}
	assert.True(t, newTestVerifier().Verify("s3cret", user))
}

func TestParseArgon2_Malformed(t *testing.T) {
	salt := base64.RawStdEncoding.EncodeToString([]byte("0123456789abcdef"))
	hash := base64.RawStdEncoding.EncodeToString(make([]byte, 32))

	malformed := []string{
		"",
		"$argon2id$v=19$m=1024,t=1,p=1$" + salt, // missing hash segment
		"$argon2id$v=18$m=1024,t=1,p=1$" + salt + "$" + hash,    // wrong version
		"$argon2id$v=19$m=1024,t=1$" + salt + "$" + hash,        // missing p
		"$argon2id$v=19$m=1024,t=1,p=1$!!!$" + hash,             // bad salt encoding
		"$argon2id$v=19$m=1024,t=1,p=1$" + salt + "$!!!",        // bad hash encoding
		"$argon2id$v=19$m=0,t=1,p=1$" + salt + "$" + hash,       // zero memory
		"$argon2id$v=19$m=1024,t=1,p=1,x=2$" + salt + "$" + hash, // unknown param
		"argon2id$v=19$m=1024,t=1,p=1$" + salt + "$" + hash,     // no leading separator
	}

	for _, encoded := range malformed {
		_, ok := parseArgon2(encoded)
		assert.False(t, ok, "expected parse failure for %q", encoded)
		assert.False(t, verifyArgon2("s3cret", encoded))
	}
}

func TestNewCredentialVerifier_DefaultCost(t *testing.T) {
	verifier := NewCredentialVerifier(&config.Config{})

	hash, err := verifier.Hash("pw")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestNewCredentialVerifier_ConfiguredCost(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}
	verifier := NewCredentialVerifier(cfg)

	hash, err := verifier.Hash("pw")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}
