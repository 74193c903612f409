package impl

import (
	"context"
	"testing"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(repo *fakeUserRepo, migrate, overwrite bool) usecase.AuthUsecase {
	return NewAuthService(AuthServiceParams{
		UserRepo:     repo,
		Verifier:     &stubVerifier{accept: "correct", hash: "$2a$10$stubhash"},
		TokenService: &stubTokenService{token: "signed-token"},
		Config:       newTestConfig(migrate, overwrite),
		Logger:       newDiscardLogger(),
	})
}

func activeUser(username string) *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Username: username,
		Password: "correct",
		RawRoles: `["Admin","manager"]`,
		Active:   true,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newFakeUserRepo(activeUser("alice"))
	service := newAuthService(repo, false, false)

	output, err := service.Login(context.Background(), &usecase.LoginInput{
		Username: "alice",
		Password: "correct",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, "alice", output.User.Username)
	assert.Equal(t, []string{"admin", "manager"}, output.User.Roles)
	assert.NotNil(t, output.User.LastLogin)
	assert.Equal(t, 1, repo.lastLoginCalls)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	service := newAuthService(newFakeUserRepo(), false, false)

	output, err := service.Login(context.Background(), &usecase.LoginInput{
		Username: "nobody",
		Password: "correct",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo(activeUser("alice"))
	service := newAuthService(repo, true, true)

	output, err := service.Login(context.Background(), &usecase.LoginInput{
		Username: "alice",
		Password: "wrong",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	// A failed verification never triggers a credential write.
	assert.Empty(t, repo.hashWrites)
	assert.Empty(t, repo.legacyWrites)
	assert.Equal(t, 0, repo.lastLoginCalls)
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	user := activeUser("alice")
	user.Active = false
	service := newAuthService(newFakeUserRepo(user), false, false)

	output, err := service.Login(context.Background(), &usecase.LoginInput{
		Username: "alice",
		Password: "correct",
	})

	assert.Nil(t, output)
	// Indistinguishable from a bad password on purpose.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_LastLoginWriteFailureTolerated(t *testing.T) {
	repo := newFakeUserRepo(activeUser("alice"))
	repo.lastLoginErr = errors.New("connection reset")
	service := newAuthService(repo, false, false)

	output, err := service.Login(context.Background(), &usecase.LoginInput{
		Username: "alice",
		Password: "correct",
	})

	require.NoError(t, err)
	assert.Nil(t, output.User.LastLogin)
}

func TestAuthService_Login_TokenIssueFailure(t *testing.T) {
	repo := newFakeUserRepo(activeUser("alice"))
	service := NewAuthService(AuthServiceParams{
		UserRepo:     repo,
		Verifier:     &stubVerifier{accept: "correct"},
		TokenService: &stubTokenService{err: errors.New("signing failed")},
		Config:       newTestConfig(false, false),
		Logger:       newDiscardLogger(),
	})

	output, err := service.Login(context.Background(), &usecase.LoginInput{
		Username: "alice",
		Password: "correct",
	})

	assert.Nil(t, output)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_CredentialUpgrade_DisabledByDefault(t *testing.T) {
	repo := newFakeUserRepo(activeUser("alice"))
	service := newAuthService(repo, false, true)

	_, err := service.Login(context.Background(), &usecase.LoginInput{
		Username: "alice",
		Password: "correct",
	})

	require.NoError(t, err)
	assert.Empty(t, repo.hashWrites)
	assert.Empty(t, repo.legacyWrites)
}

func TestAuthService_CredentialUpgrade_DedicatedColumnUnhashed(t *testing.T) {
	user := activeUser("alice")
	user.PasswordHash = "correct" // plaintext leaked into the hash column
	repo := newFakeUserRepo(user)
	service := newAuthService(repo, true, false)

	_, err := service.Login(context.Background(), &usecase.LoginInput{
		Username: "alice",
		Password: "correct",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"$2a$10$stubhash"}, repo.hashWrites)
	assert.Empty(t, repo.legacyWrites)
}

func TestAuthService_CredentialUpgrade_DedicatedColumnAlreadyHashed(t *testing.T) {
	user := activeUser("alice")
	user.Password = ""
	user.PasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	repo := newFakeUserRepo(user)
	service := NewAuthService(AuthServiceParams{
		UserRepo:     repo,
		Verifier:     &stubVerifier{accept: "correct", hash: "$2a$10$stubhash"},
		TokenService: &stubTokenService{token: "signed-token"},
		Config:       newTestConfig(true, true),
		Logger:       newDiscardLogger(),
	})

	_, err := service.Login(context.Background(), &usecase.LoginInput{
		Username: "alice",
		Password: "correct",
	})

	require.NoError(t, err)
	// Nothing to migrate: the upgrade is idempotent.
	assert.Empty(t, repo.hashWrites)
	assert.Empty(t, repo.legacyWrites)
}

func TestAuthService_CredentialUpgrade_LegacyPlaintextWithOverwrite(t *testing.T) {
	repo := newFakeUserRepo(activeUser("alice"))
	service := newAuthService(repo, true, true)

	_, err := service.Login(context.Background(), &usecase.LoginInput{
		Username: "alice",
		Password: "correct",
	})

	require.NoError(t, err)
	assert.Empty(t, repo.hashWrites)
	assert.Equal(t, []string{"$2a$10$stubhash"}, repo.legacyWrites)
}

func TestAuthService_CredentialUpgrade_LegacyPlaintextWithoutOverwrite(t *testing.T) {
	repo := newFakeUserRepo(activeUser("alice"))
	service := newAuthService(repo, true, false)

	_, err := service.Login(context.Background(), &usecase.LoginInput{
		Username: "alice",
		Password: "correct",
	})

	require.NoError(t, err)
	assert.Empty(t, repo.hashWrites)
	assert.Empty(t, repo.legacyWrites)
}

func TestAuthService_CredentialUpgrade_LegacyAlreadyHashed(t *testing.T) {
	user := activeUser("alice")
	user.Password = "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"
	repo := newFakeUserRepo(user)
	service := NewAuthService(AuthServiceParams{
		UserRepo:     repo,
		Verifier:     &stubVerifier{accept: "correct", hash: "$2a$10$stubhash"},
		TokenService: &stubTokenService{token: "signed-token"},
		Config:       newTestConfig(true, true),
		Logger:       newDiscardLogger(),
	})

	_, err := service.Login(context.Background(), &usecase.LoginInput{
		Username: "alice",
		Password: "correct",
	})

	require.NoError(t, err)
	assert.Empty(t, repo.hashWrites)
	assert.Empty(t, repo.legacyWrites)
}

func TestAuthService_CredentialUpgrade_WriteFailureTolerated(t *testing.T) {
	user := activeUser("alice")
	user.PasswordHash = "correct"
	repo := newFakeUserRepo(user)
	repo.hashWriteErr = errors.New("deadlock detected")
	service := newAuthService(repo, true, false)

	output, err := service.Login(context.Background(), &usecase.LoginInput{
		Username: "alice",
		Password: "correct",
	})

	// The upgrade is best effort; login still succeeds.
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
}
