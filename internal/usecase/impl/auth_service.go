// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"backoffice/config"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo         repository.UserRepository
	verifier         service.CredentialVerifier
	tokenService     service.TokenService
	migratePlaintext bool
	overwriteLegacy  bool
	logger           *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Verifier     service.CredentialVerifier
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	migratePlaintext := false
	overwriteLegacy := false
	if params.Config != nil && params.Config.Auth != nil {
		migratePlaintext = params.Config.Auth.MigratePlaintext
		overwriteLegacy = params.Config.Auth.OverwriteLegacy
	}

	return &authService{
		userRepo:         params.UserRepo,
		verifier:         params.Verifier,
		tokenService:     params.TokenService,
		migratePlaintext: migratePlaintext,
		overwriteLegacy:  overwriteLegacy,
		logger:           params.Logger,
	}
}

// Login verifies the credentials and issues a session token. Unknown
// user, wrong password, and inactive account all collapse into
// ErrInvalidCredentials so callers learn nothing from the distinction.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Warn("Login failed", slog.String("username", input.Username))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !user.Active {
		srv.logger.Warn("Login rejected for inactive user", slog.String("username", input.Username))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	// Password check runs outside any transaction: hashing is CPU-bound.
	if !srv.verifier.Verify(input.Password, user) {
		srv.logger.Warn("Login failed", slog.String("username", input.Username))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	// Best-effort writes: the login read and these updates share no
	// transaction. A lost update under concurrent logins is tolerated;
	// the upgrade retries on the next successful login.
	now := time.Now()
	if err := srv.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		srv.logger.Warn("Failed to stamp last login", slog.Any("userID", user.ID), slog.Any("error", err))
	} else {
		user.LastLogin = &now
	}

	srv.maybeUpgradeCredential(ctx, user, input.Password)

	token, err := srv.tokenService.Issue(user.ID, user.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.logger.Debug("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		Token: token,
		User:  usecase.NewUserView(user),
	}, nil
}

// maybeUpgradeCredential runs the one-way credential upgrade after a
// successful verification:
//
//   - dedicated column holds an unhashed value: rehash into it
//   - dedicated column empty, legacy column plaintext: hash over the
//     legacy column, if the overwrite policy allows
//   - anything already hashed: no-op
//
// The write is best-effort; a failure is logged and the login still
// succeeds, the upgrade retried on the next login.
func (srv *authService) maybeUpgradeCredential(ctx context.Context, user *entity.User, password string) {
	if !srv.migratePlaintext {
		return
	}

	if user.PasswordHash != "" {
		if entity.ClassifyCredential(user.PasswordHash).Hashed() {
			return
		}

		srv.upgrade(ctx, user, password, srv.userRepo.UpdatePasswordHash, "dedicated")

		return
	}

	if entity.ClassifyCredential(user.Password).Hashed() {
		return
	}

	if !srv.overwriteLegacy {
		return
	}

	srv.upgrade(ctx, user, password, srv.userRepo.UpdateLegacyPassword, "legacy")
}

func (srv *authService) upgrade(
	ctx context.Context,
	user *entity.User,
	password string,
	write func(context.Context, uuid.UUID, string) error,
	column string,
) {
	hash, err := srv.verifier.Hash(password)
	if err != nil {
		srv.logger.Warn("Credential upgrade hashing failed",
			slog.Any("userID", user.ID), slog.Any("error", err))

		return
	}

	if err := write(ctx, user.ID, hash); err != nil {
		srv.logger.Warn("Credential upgrade write failed",
			slog.Any("userID", user.ID), slog.String("column", column), slog.Any("error", err))

		return
	}

	srv.logger.Info("Upgraded stored credential",
		slog.Any("userID", user.ID), slog.String("column", column))
}
