package service

import (
	"identity/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Messages reported in TokenResult.
const (
	MsgTokenKeyMissing  = "cannot access token key from configuration"
	MsgTokenKeyTooShort = "token key must be at least 64 characters long"
	MsgTokenCreated     = "token created successfully"
)

// MinTokenKeyLength is the minimum signing key length in characters.
const MinTokenKeyLength = 64

// TokenResult is the outcome of issuing a token. Configuration problems are
// reported here rather than as errors.
type TokenResult struct {
	Success bool
	Message string
	Token   string
}

// Claims are the claims carried by issued tokens. The subject is the account's normalized email.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService issues and validates bearer tokens.
type TokenService interface {
	// IssueToken signs a token bound to the account.
	IssueToken(account *entity.Account) TokenResult

	// ValidateToken parses a token string and checks its signature and expiry.
	ValidateToken(tokenString string) (*Claims, error)
}
