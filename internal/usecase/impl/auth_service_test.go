package impl

import (
	"context"
	"testing"

	"tasktrack/internal/domain/entity"
	domainerrors "tasktrack/internal/domain/errors"
	"tasktrack/internal/domain/repository"
	mockRepo "tasktrack/internal/mocks/repository"
	mockSvc "tasktrack/internal/mocks/service"
	"tasktrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

// expectTransaction makes the mocked transaction manager run the registration
// callback against a factory returning txUserRepo, propagating its error.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, txUserRepo *mockRepo.MockUserRepository) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("UserRepo").Return(txUserRepo)

	txManager.
		On("Execute", mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestAuthService_Register_Success(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	txUserRepo := mockRepo.NewMockUserRepository(t)
	expectTransaction(t, fixtures.txManager, txUserRepo)

	fixtures.hasher.On("Hash", "pw1").Return("hashed_pw", nil)
	txUserRepo.On("FindByUsername", ctx, "bob").Return(nil, repository.ErrUserNotFound)
	txUserRepo.
		On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = uuid.New()
		}).
		Return(nil)

	output, err := fixtures.service.Register(ctx, &usecase.RegisterInput{Username: "bob", Password: "pw1"})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "bob", output.User.Username)
	assert.Equal(t, "hashed_pw", output.User.PasswordHash)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	txUserRepo := mockRepo.NewMockUserRepository(t)
	expectTransaction(t, fixtures.txManager, txUserRepo)

	fixtures.hasher.On("Hash", "pw1").Return("hashed_pw", nil)
	txUserRepo.On("FindByUsername", ctx, "bob").Return(&entity.User{Username: "bob"}, nil)

	output, err := fixtures.service.Register(ctx, &usecase.RegisterInput{Username: "bob", Password: "pw1"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateUsername))
}

func TestAuthService_Register_DuplicateRace(t *testing.T) {
	// A concurrent registration can pass the existence check and lose the
	// insert race: the unique constraint is the authority.
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	txUserRepo := mockRepo.NewMockUserRepository(t)
	expectTransaction(t, fixtures.txManager, txUserRepo)

	fixtures.hasher.On("Hash", "pw1").Return("hashed_pw", nil)
	txUserRepo.On("FindByUsername", ctx, "bob").Return(nil, repository.ErrUserNotFound)
	txUserRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrDuplicateUsername)

	output, err := fixtures.service.Register(ctx, &usecase.RegisterInput{Username: "bob", Password: "pw1"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateUsername))
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	fixtures.hasher.On("Hash", "pw1").Return("", errors.New("bcrypt exploded"))

	output, err := fixtures.service.Register(ctx, &usecase.RegisterInput{Username: "bob", Password: "pw1"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestAuthService_Login_Success(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Username: "bob", PasswordHash: "hashed_pw"}
	fixtures.userRepo.On("FindByUsername", ctx, "bob").Return(user, nil)
	fixtures.hasher.On("Check", "pw1", "hashed_pw").Return(true)
	fixtures.tokenService.On("Issue", "bob").Return("signed.jwt.token", nil)

	output, err := fixtures.service.Login(ctx, &usecase.LoginInput{Username: "bob", Password: "pw1"})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed.jwt.token", output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
}

func TestAuthService_Login_UniformFailure(t *testing.T) {
	// Unknown username and wrong password must be indistinguishable.
	t.Run("unknown username", func(t *testing.T) {
		fixtures := createTestAuthService(t)
		ctx := context.Background()

		fixtures.userRepo.On("FindByUsername", ctx, "ghost").Return(nil, repository.ErrUserNotFound)

		output, err := fixtures.service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "pw1"})

		require.Error(t, err)
		assert.Nil(t, output)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("wrong password", func(t *testing.T) {
		fixtures := createTestAuthService(t)
		ctx := context.Background()

		user := &entity.User{ID: uuid.New(), Username: "bob", PasswordHash: "hashed_pw"}
		fixtures.userRepo.On("FindByUsername", ctx, "bob").Return(user, nil)
		fixtures.hasher.On("Check", "wrong", "hashed_pw").Return(false)

		output, err := fixtures.service.Login(ctx, &usecase.LoginInput{Username: "bob", Password: "wrong"})

		require.Error(t, err)
		assert.Nil(t, output)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

func TestAuthService_Login_TokenIssueFailure(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Username: "bob", PasswordHash: "hashed_pw"}
	fixtures.userRepo.On("FindByUsername", ctx, "bob").Return(user, nil)
	fixtures.hasher.On("Check", "pw1", "hashed_pw").Return(true)
	fixtures.tokenService.On("Issue", "bob").Return("", errors.New("no signing key"))

	output, err := fixtures.service.Login(ctx, &usecase.LoginInput{Username: "bob", Password: "pw1"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}
