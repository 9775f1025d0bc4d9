// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"strings"
)

// Messages carried by AuthResult.
const (
	MsgUserRegistered   = "user registered"
	MsgUserLoggedIn     = "user logged in"
	MsgInvalidEmail     = "invalid email"
	MsgInvalidPassword  = "invalid password"
	MsgTokenAccessError = "token access error"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// Field rules are enforced by the delivery layer's validator.
type RegisterInput struct {
	FirstName string `json:"firstName" validate:"required,min=2,max=100,personname"`
	LastName  string `json:"lastName" validate:"required,min=2,max=100,personname"`
	Email     string `json:"email" validate:"required,email,max=100"`
	Password  string `json:"password" validate:"required,min=8,max=100,strongpassword"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// AuthResult is the outcome of a register or login attempt. Domain failures
// (unknown email, wrong password, token problems) are reported here with
// Success=false; infrastructure failures are returned as errors instead.
type AuthResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	UserEmail string `json:"userEmail,omitempty"`
	Token     string `json:"token,omitempty"`
}

// Valid reports whether r is a complete success. A result flagged successful
// but missing any identity field or the token must be treated as a failure.
func (r *AuthResult) Valid() bool {
	if r == nil || !r.Success {
		return false
	}

	for _, field := range []string{r.FirstName, r.LastName, r.UserEmail, r.Token} {
		if strings.TrimSpace(field) == "" {
			return false
		}
	}

	return true
}

// AccountUsecase defines the registration and login operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Register stores a new account and issues its first token. The caller is
	// expected to have checked UserExists first.
	Register(ctx context.Context, input *RegisterInput) (*AuthResult, error)

	// Login verifies credentials and issues a token.
	Login(ctx context.Context, input *LoginInput) (*AuthResult, error)

	// UserExists reports whether an account with the trimmed, lower-cased email exists.
	UserExists(ctx context.Context, email string) (bool, error)
}
