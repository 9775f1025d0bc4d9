package impl

import (
	"context"
	"log/slog"

	deliverycontext "identity/internal/delivery/context"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/repository"
	"identity/internal/errors"
	"identity/internal/usecase"

	"go.uber.org/fx"
)

type usersService struct {
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// UsersServiceParams holds dependencies for UsersService, injected by Fx.
type UsersServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Logger      *slog.Logger
}

// NewUsersService is the constructor for the read-only account directory.
func NewUsersService(params UsersServiceParams) usecase.UsersUsecase {
	return &usersService{
		accountRepo: params.AccountRepo,
		logger:      params.Logger,
	}
}

func (srv *usersService) ListUsers(ctx context.Context) ([]*usecase.UserView, error) {
	accounts, err := srv.accountRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	views := make([]*usecase.UserView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, usecase.NewUserView(account))
	}

	return views, nil
}

func (srv *usersService) GetUser(ctx context.Context, id int64) (*usecase.UserView, error) {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("no account with the requested id")
	}
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Failed to load account", slog.Int64("accountID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return usecase.NewUserView(account), nil
}
