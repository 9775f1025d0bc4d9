// Package persistence selects the account store implementation.
package persistence

import (
	"log/slog"

	"identity/config"
	"identity/internal/domain/repository"
	"identity/internal/infra/persistence/memory"
	"identity/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the dependencies of the account store provider.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewAccountRepository builds the store named by storage.driver.
func NewAccountRepository(params Params) (repository.AccountRepository, error) {
	switch params.Config.Storage.Driver {
	case config.StorageDriverMemory, "":
		params.Logger.Info("Using in-memory account store")

		return memory.NewAccountRepository(), nil
	case config.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Using PostgreSQL account store")

		return postgres.NewAccountRepository(db), nil
	default:
		return nil, errors.Errorf("unknown storage driver %q", params.Config.Storage.Driver)
	}
}
