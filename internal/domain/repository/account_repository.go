// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"identity/internal/domain/entity"
)

// ErrAccountNotFound is returned by lookups when no account matches.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository is the account store consumed by the application layer.
// Emails passed in are already normalized by the caller.
type AccountRepository interface {
	// FindByEmail retrieves the account with the given normalized email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Exists reports whether an account with the given normalized email is stored.
	Exists(ctx context.Context, email string) (bool, error)

	// Insert persists a new account, assigning its ID and CreatedAt.
	// A duplicate email is rejected atomically with domainerrors.ErrEmailAlreadyTaken.
	Insert(ctx context.Context, account *entity.Account) (*entity.Account, error)

	// FindByID retrieves a single account by its store-assigned ID.
	FindByID(ctx context.Context, id int64) (*entity.Account, error)

	// List returns every account ordered by ID.
	List(ctx context.Context) ([]*entity.Account, error)
}
