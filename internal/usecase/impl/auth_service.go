// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"tasktrack/config"
	deliverycontext "tasktrack/internal/delivery/context"
	"tasktrack/internal/domain/entity"
	domainerrors "tasktrack/internal/domain/errors"
	"tasktrack/internal/domain/repository"
	"tasktrack/internal/domain/service"
	"tasktrack/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new identity with a hashed password. The plaintext
// password is hashed before the transaction opens (bcrypt is CPU-bound) and
// is never logged.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Username:     input.Username,
		PasswordHash: hashedPassword,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// Fast-path existence check. The unique index on username remains the
		// authority: a concurrent registration slipping past this check still
		// fails on Create with ErrDuplicateUsername.
		_, err := userRepo.FindByUsername(ctx, input.Username)
		if err == nil {
			return errors.Wrap(domainerrors.ErrDuplicateUsername, "username already registered")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check username availability")
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			if errors.Is(err, repository.ErrDuplicateUsername) {
				return errors.Wrap(domainerrors.ErrDuplicateUsername, "username already registered")
			}

			return errors.Wrap(err, "failed to create user during registration")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.String("username", input.Username), slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login verifies the credentials and issues a bearer token. An unknown
// username and a wrong password take the same path out: one generic
// ErrInvalidCredentials, so responses stay bit-identical and usernames
// cannot be enumerated.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("username", input.Username))

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, err := srv.tokenService.Issue(user.Username)
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Debug("Login completed", slog.String("username", input.Username))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}
