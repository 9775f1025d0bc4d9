package impl

import (
	"context"
	"testing"
	"time"

	"identity/internal/domain/entity"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/repository"
	"identity/internal/domain/service"
	"identity/internal/errors"
	mockRepo "identity/internal/mocks/repository"
	mockSvc "identity/internal/mocks/service"
	"identity/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	accountRepo  *mockRepo.MockAccountRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	svc := NewAccountService(AccountServiceParams{
		AccountRepo:  accountRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:      svc,
		accountRepo:  accountRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

var (
	testHash = []byte("hash-bytes")
	testSalt = []byte("salt-bytes")
)

func storedAccount() *entity.Account {
	return &entity.Account{
		ID:           1,
		FirstName:    "John",
		LastName:     "Doe",
		Email:        "john@x.com",
		PasswordHash: testHash,
		PasswordSalt: testSalt,
		CreatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestAccountService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("stores lower-cased email and issues token", func(t *testing.T) {
		fx := createTestAccountService(t)
		input := &usecase.RegisterInput{FirstName: "John", LastName: "Doe", Email: "JOHN@X.com", Password: "P@ssw0rd!"}

		fx.hasher.On("Hash", "P@ssw0rd!").Return(testHash, testSalt, nil).Once()
		fx.accountRepo.On("Insert", ctx, mock.MatchedBy(func(a *entity.Account) bool {
			return a.FirstName == "John" &&
				a.LastName == "Doe" &&
				a.Email == "john@x.com" &&
				assert.ObjectsAreEqual(testHash, a.PasswordHash) &&
				assert.ObjectsAreEqual(testSalt, a.PasswordSalt)
		})).Return(storedAccount(), nil).Once()
		fx.tokenService.On("IssueToken", storedAccount()).
			Return(service.TokenResult{Success: true, Message: service.MsgTokenCreated, Token: "a.b.c"}).Once()

		result, err := fx.service.Register(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, &usecase.AuthResult{
			Success:   true,
			Message:   usecase.MsgUserRegistered,
			FirstName: "John",
			LastName:  "Doe",
			UserEmail: "john@x.com",
			Token:     "a.b.c",
		}, result)
		assert.True(t, result.Valid())
		fx.accountRepo.AssertNumberOfCalls(t, "Insert", 1)
	})

	t.Run("does not trim the email", func(t *testing.T) {
		fx := createTestAccountService(t)
		input := &usecase.RegisterInput{FirstName: "John", LastName: "Doe", Email: " John@X.com ", Password: "pw"}

		fx.hasher.On("Hash", "pw").Return(testHash, testSalt, nil).Once()
		fx.accountRepo.On("Insert", ctx, mock.MatchedBy(func(a *entity.Account) bool {
			return a.Email == " john@x.com "
		})).Return(storedAccount(), nil).Once()
		fx.tokenService.On("IssueToken", mock.Anything).
			Return(service.TokenResult{Success: true, Token: "a.b.c"}).Once()

		_, err := fx.service.Register(ctx, input)
		require.NoError(t, err)
	})

	t.Run("hash failure is an error and nothing is stored", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.hasher.On("Hash", "").Return(nil, nil, errors.New("password must not be empty")).Once()

		result, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "a@b.c"})
		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
		fx.accountRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("store error is returned unchanged", func(t *testing.T) {
		fx := createTestAccountService(t)
		storeErr := domainerrors.ErrEmailAlreadyTaken

		fx.hasher.On("Hash", "pw").Return(testHash, testSalt, nil).Once()
		fx.accountRepo.On("Insert", ctx, mock.Anything).Return(nil, storeErr).Once()

		result, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "john@x.com", Password: "pw"})
		assert.Nil(t, result)
		assert.Same(t, storeErr, err)
		fx.tokenService.AssertNotCalled(t, "IssueToken", mock.Anything)
	})

	t.Run("issuer failure message is propagated", func(t *testing.T) {
		fx := createTestAccountService(t)

		fx.hasher.On("Hash", "pw").Return(testHash, testSalt, nil).Once()
		fx.accountRepo.On("Insert", ctx, mock.Anything).Return(storedAccount(), nil).Once()
		fx.tokenService.On("IssueToken", mock.Anything).
			Return(service.TokenResult{Success: false, Message: service.MsgTokenKeyTooShort}).Once()

		result, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "john@x.com", Password: "pw"})
		require.NoError(t, err)
		assert.Equal(t, &usecase.AuthResult{Success: false, Message: service.MsgTokenKeyTooShort}, result)
		assert.False(t, result.Valid())
	})
}

func TestAccountService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("trims and lower-cases the email before lookup", func(t *testing.T) {
		fx := createTestAccountService(t)
		account := storedAccount()

		fx.accountRepo.On("FindByEmail", ctx, "john@x.com").Return(account, nil).Once()
		fx.hasher.On("Verify", "P@ssw0rd!", testHash, testSalt).Return(true).Once()
		fx.tokenService.On("IssueToken", account).
			Return(service.TokenResult{Success: true, Message: service.MsgTokenCreated, Token: "a.b.c"}).Once()

		result, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "  John@X.com  ", Password: "P@ssw0rd!"})
		require.NoError(t, err)
		assert.Equal(t, &usecase.AuthResult{
			Success:   true,
			Message:   usecase.MsgUserLoggedIn,
			FirstName: "John",
			LastName:  "Doe",
			UserEmail: "john@x.com",
			Token:     "a.b.c",
		}, result)
	})

	t.Run("unknown email short-circuits", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.accountRepo.On("FindByEmail", ctx, "nobody@x.com").Return(nil, repository.ErrAccountNotFound).Once()

		result, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@x.com", Password: "pw"})
		require.NoError(t, err)
		assert.Equal(t, &usecase.AuthResult{Success: false, Message: usecase.MsgInvalidEmail}, result)
		fx.hasher.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything, mock.Anything)
		fx.tokenService.AssertNotCalled(t, "IssueToken", mock.Anything)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.accountRepo.On("FindByEmail", ctx, "john@x.com").Return(storedAccount(), nil).Once()
		fx.hasher.On("Verify", "wrong", testHash, testSalt).Return(false).Once()

		result, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "john@x.com", Password: "wrong"})
		require.NoError(t, err)
		assert.Equal(t, &usecase.AuthResult{Success: false, Message: usecase.MsgInvalidPassword}, result)
		fx.tokenService.AssertNotCalled(t, "IssueToken", mock.Anything)
	})

	t.Run("store failure is returned unchanged", func(t *testing.T) {
		fx := createTestAccountService(t)
		storeErr := errors.New("connection refused")
		fx.accountRepo.On("FindByEmail", ctx, "john@x.com").Return(nil, storeErr).Once()

		result, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "john@x.com", Password: "pw"})
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Same(t, storeErr, err)
	})

	t.Run("empty token without message becomes token access error", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.accountRepo.On("FindByEmail", ctx, "john@x.com").Return(storedAccount(), nil).Once()
		fx.hasher.On("Verify", "pw", testHash, testSalt).Return(true).Once()
		fx.tokenService.On("IssueToken", mock.Anything).Return(service.TokenResult{}).Once()

		result, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "john@x.com", Password: "pw"})
		require.NoError(t, err)
		assert.Equal(t, &usecase.AuthResult{Success: false, Message: usecase.MsgTokenAccessError}, result)
	})

	t.Run("successful issuance with empty token is a failure", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.accountRepo.On("FindByEmail", ctx, "john@x.com").Return(storedAccount(), nil).Once()
		fx.hasher.On("Verify", "pw", testHash, testSalt).Return(true).Once()
		fx.tokenService.On("IssueToken", mock.Anything).
			Return(service.TokenResult{Success: true, Message: service.MsgTokenCreated}).Once()

		result, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "john@x.com", Password: "pw"})
		require.NoError(t, err)
		assert.Equal(t, usecase.MsgTokenAccessError, result.Message)
		assert.False(t, result.Success)
	})
}

func TestAccountService_UserExists(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes before delegating", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.accountRepo.On("Exists", ctx, "john@x.com").Return(true, nil).Once()

		exists, err := fx.service.UserExists(ctx, " JOHN@x.com")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("store failure is returned unchanged", func(t *testing.T) {
		fx := createTestAccountService(t)
		storeErr := errors.New("timeout")
		fx.accountRepo.On("Exists", ctx, "john@x.com").Return(false, storeErr).Once()

		exists, err := fx.service.UserExists(ctx, "john@x.com")
		require.Error(t, err)
		assert.False(t, exists)
		assert.Same(t, storeErr, err)
	})
}

func TestAccountService_Login_AccountWithoutCredentials(t *testing.T) {
	ctx := context.Background()
	fx := createTestAccountService(t)

	account := storedAccount()
	account.PasswordSalt = nil
	fx.accountRepo.On("FindByEmail", ctx, "john@x.com").Return(account, nil).Once()

	result, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "john@x.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, usecase.MsgInvalidPassword, result.Message)
	fx.hasher.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything, mock.Anything)
}
