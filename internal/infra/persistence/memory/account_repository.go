// Package memory implements an in-memory account store for local runs and tests.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"identity/internal/domain/entity"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/repository"
)

// AccountStore keeps accounts in a map keyed by normalized email.
type AccountStore struct {
	mu      sync.RWMutex
	byEmail map[string]*entity.Account
	byID    map[int64]*entity.Account
	nextID  int64
	now     func() time.Time
}

var _ repository.AccountRepository = (*AccountStore)(nil)

// NewAccountStore creates an empty store.
func NewAccountStore() *AccountStore {
	return &AccountStore{
		byEmail: make(map[string]*entity.Account),
		byID:    make(map[int64]*entity.Account),
		now:     time.Now,
	}
}

// NewAccountRepository returns an empty store as a repository.AccountRepository.
func NewAccountRepository() repository.AccountRepository {
	return NewAccountStore()
}

// FindByEmail returns a copy of the stored account.
func (s *AccountStore) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.byEmail[email]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return clone(account), nil
}

func (s *AccountStore) Exists(_ context.Context, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.byEmail[email]

	return ok, nil
}

// Insert checks and stores under one lock, so two concurrent inserts of the
// same email cannot both succeed.
func (s *AccountStore) Insert(_ context.Context, account *entity.Account) (*entity.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byEmail[account.Email]; taken {
		return nil, domainerrors.ErrEmailAlreadyTaken.WrapMessage("email already exists")
	}

	s.nextID++
	stored := clone(account)
	stored.ID = s.nextID
	stored.CreatedAt = s.now().UTC()

	s.byEmail[stored.Email] = stored
	s.byID[stored.ID] = stored

	return clone(stored), nil
}

func (s *AccountStore) FindByID(_ context.Context, id int64) (*entity.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.byID[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return clone(account), nil
}

// List returns copies of all accounts ordered by ID.
func (s *AccountStore) List(_ context.Context) ([]*entity.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]*entity.Account, 0, len(s.byID))
	for _, account := range s.byID {
		accounts = append(accounts, clone(account))
	}
	slices.SortFunc(accounts, func(a, b *entity.Account) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	})

	return accounts, nil
}

func clone(account *entity.Account) *entity.Account {
	c := *account
	c.PasswordHash = slices.Clone(account.PasswordHash)
	c.PasswordSalt = slices.Clone(account.PasswordSalt)

	return &c
}
