package auth

import (
	"time"
	"unicode/utf8"

	"identity/config"
	"identity/internal/domain/entity"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/service"
	"identity/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// jwtService is a concrete implementation of the TokenService interface using HS512 JWTs.
type jwtService struct {
	tokenKey string           // Signing secret; validated on every use.
	ttl      time.Duration    // Token lifetime.
	now      func() time.Time // Clock for iat/exp, replaceable in tests.
}

// NewJWTService is the constructor for jwtService.
// The signing key is not checked here; IssueToken reports a missing or short key.
func NewJWTService(cfg *config.Config) service.TokenService {
	return newJWTService(cfg.JWT, time.Now)
}

func newJWTService(jwtCfg config.JWTConfig, now func() time.Time) *jwtService {
	return &jwtService{
		tokenKey: jwtCfg.TokenKey,
		ttl:      jwtCfg.Lifetime(),
		now:      now,
	}
}

// IssueToken signs a token whose subject is the account's email.
func (s *jwtService) IssueToken(account *entity.Account) service.TokenResult {
	if ok, msg := s.checkKey(); !ok {
		return service.TokenResult{Success: false, Message: msg}
	}
	if account == nil || account.Email == "" {
		return service.TokenResult{Success: false, Message: "cannot issue a token without an account email"}
	}

	issuedAt := s.now()
	claims := service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.Email,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(s.tokenKey))
	if err != nil {
		return service.TokenResult{Success: false, Message: err.Error()}
	}

	return service.TokenResult{
		Success: true,
		Message: service.MsgTokenCreated,
		Token:   signed,
	}
}

// ValidateToken parses tokenString, accepting only HS512 tokens signed with the configured key.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	if ok, msg := s.checkKey(); !ok {
		return nil, domainerrors.ErrInvalidToken.WrapMessage(msg)
	}

	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return []byte(s.tokenKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, err.Error())
	}
	if !token.Valid || claims.Subject == "" {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("token has no subject")
	}

	return claims, nil
}

func (s *jwtService) checkKey() (bool, string) {
	if s.tokenKey == "" {
		return false, service.MsgTokenKeyMissing
	}
	if utf8.RuneCountInString(s.tokenKey) < service.MinTokenKeyLength {
		return false, service.MsgTokenKeyTooShort
	}

	return true, ""
}
