package usecase

import (
	"context"
	"time"

	"identity/internal/domain/entity"
)

// UserView is the public projection of an account; credentials are never included.
type UserView struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUserView projects an account for API responses.
func NewUserView(account *entity.Account) *UserView {
	return &UserView{
		ID:        account.ID,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Email:     account.Email,
		CreatedAt: account.CreatedAt,
	}
}

// UsersUsecase is the read-only account directory.
type UsersUsecase interface {
	ListUsers(ctx context.Context) ([]*UserView, error)
	GetUser(ctx context.Context, id int64) (*UserView, error)
}
