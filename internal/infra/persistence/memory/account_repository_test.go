package memory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"identity/internal/domain/entity"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/repository"
	"identity/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccount(email string) *entity.Account {
	return &entity.Account{
		FirstName:    "John",
		LastName:     "Doe",
		Email:        email,
		PasswordHash: []byte{1, 2, 3},
		PasswordSalt: []byte{4, 5, 6},
	}
}

func TestAccountStore_InsertAndFind(t *testing.T) {
	ctx := context.Background()
	store := NewAccountStore()

	stored, err := store.Insert(ctx, newAccount("john@x.com"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.ID)
	assert.False(t, stored.CreatedAt.IsZero())

	found, err := store.FindByEmail(ctx, "john@x.com")
	require.NoError(t, err)
	assert.Equal(t, stored, found)

	byID, err := store.FindByID(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored, byID)

	exists, err := store.Exists(ctx, "john@x.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = store.Exists(ctx, "jane@x.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestAccountStore_NotFound(t *testing.T) {
	ctx := context.Background()
	store := NewAccountStore()

	_, err := store.FindByEmail(ctx, "nobody@x.com")
	assert.True(t, errors.Is(err, repository.ErrAccountNotFound))

	_, err = store.FindByID(ctx, 7)
	assert.True(t, errors.Is(err, repository.ErrAccountNotFound))
}

func TestAccountStore_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	store := NewAccountStore()

	_, err := store.Insert(ctx, newAccount("john@x.com"))
	require.NoError(t, err)

	_, err = store.Insert(ctx, newAccount("john@x.com"))
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyTaken))

	accounts, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestAccountStore_ConcurrentDuplicateInsert(t *testing.T) {
	ctx := context.Background()
	store := NewAccountStore()

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
	)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.Insert(ctx, newAccount("race@x.com")); err == nil {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
}

func TestAccountStore_ListOrderedByID(t *testing.T) {
	ctx := context.Background()
	store := NewAccountStore()

	for i := range 5 {
		_, err := store.Insert(ctx, newAccount(fmt.Sprintf("user%d@x.com", i)))
		require.NoError(t, err)
	}

	accounts, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 5)
	for i, account := range accounts {
		assert.Equal(t, int64(i+1), account.ID)
	}
}

func TestAccountStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewAccountStore()

	input := newAccount("john@x.com")
	_, err := store.Insert(ctx, input)
	require.NoError(t, err)
	input.PasswordHash[0] = 99

	found, err := store.FindByEmail(ctx, "john@x.com")
	require.NoError(t, err)
	found.FirstName = "Mutated"
	assert.Equal(t, byte(1), found.PasswordHash[0])

	again, err := store.FindByEmail(ctx, "john@x.com")
	require.NoError(t, err)
	assert.Equal(t, "John", again.FirstName)
}
