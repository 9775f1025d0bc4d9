// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "identity/internal/delivery/context"
	"identity/internal/domain/entity"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/repository"
	"identity/internal/domain/service"
	"identity/internal/errors"
	"identity/internal/usecase"

	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register hashes the password, stores the account and issues its first token.
// The email is lower-cased but not trimmed.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthResult, error) {
	email := entity.LowerEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	hash, salt, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	account, err := srv.accountRepo.Insert(ctx, &entity.Account{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        email,
		PasswordHash: hash,
		PasswordSalt: salt,
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to store account", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	result, ok := srv.issue(ctx, account)
	if !ok {
		return result, nil
	}
	result.Message = usecase.MsgUserRegistered
	srv.log(ctx).Debug("Registration completed", slog.Int64("accountID", account.ID))

	return result, nil
}

// Login verifies the credentials of an existing account and issues a token.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthResult, error) {
	email := entity.NormalizeEmail(input.Email)

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrAccountNotFound) {
		srv.log(ctx).Info("Login attempt for unknown email", slog.String("email", email))

		return &usecase.AuthResult{Success: false, Message: usecase.MsgInvalidEmail}, nil
	}
	if err != nil {
		srv.log(ctx).Error("Failed to load account for login", slog.Any("error", err))

		return nil, err
	}

	if !account.HasCredentials() || !srv.hasher.Verify(input.Password, account.PasswordHash, account.PasswordSalt) {
		srv.log(ctx).Info("Password mismatch on login", slog.Int64("accountID", account.ID))

		return &usecase.AuthResult{Success: false, Message: usecase.MsgInvalidPassword}, nil
	}

	result, ok := srv.issue(ctx, account)
	if !ok {
		return result, nil
	}
	result.Message = usecase.MsgUserLoggedIn

	return result, nil
}

// UserExists reports whether the trimmed, lower-cased email is already registered.
func (srv *accountService) UserExists(ctx context.Context, email string) (bool, error) {
	exists, err := srv.accountRepo.Exists(ctx, entity.NormalizeEmail(email))
	if err != nil {
		return false, err
	}

	return exists, nil
}

// issue asks the token service for a token. On failure the returned result carries the
// issuer's message, or MsgTokenAccessError when it gave none.
func (srv *accountService) issue(ctx context.Context, account *entity.Account) (*usecase.AuthResult, bool) {
	token := srv.tokenService.IssueToken(account)
	if !token.Success || token.Token == "" {
		message := usecase.MsgTokenAccessError
		if !token.Success && token.Message != "" {
			message = token.Message
		}
		srv.log(ctx).Error("Token issuance failed", slog.String("reason", message))

		return &usecase.AuthResult{Success: false, Message: message}, false
	}

	return &usecase.AuthResult{
		Success:   true,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		UserEmail: account.Email,
		Token:     token.Token,
	}, true
}
