// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "identity/internal/delivery/context"
	"identity/internal/delivery/http/response"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler serves registration and login.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the account registration request. An email that is already
// registered is rejected before any hashing happens.
func (h *AccountHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	ctx := c.Request().Context()
	exists, err := h.uc.UserExists(ctx, input.Email)
	if err != nil {
		return errors.WithStack(err)
	}
	if exists {
		return response.AppError(c, domainerrors.ErrEmailAlreadyTaken)
	}

	result, err := h.uc.Register(ctx, &input)
	if err != nil {
		return errors.WithStack(err)
	}
	if !result.Valid() {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Registration rejected", slog.String("reason", result.Message))

		return response.BadRequest(c, domainerrors.ErrInvalidRegister.ErrorCode(), messageOr(result, domainerrors.ErrInvalidRegister.Message()))
	}

	return response.Success(c, http.StatusOK, result, result.Message)
}

// Login handles the login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	result, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}
	if !result.Valid() {
		return response.Unauthorized(c, domainerrors.ErrInvalidLogin.ErrorCode(), messageOr(result, domainerrors.ErrInvalidLogin.Message()))
	}

	return response.Success(c, http.StatusOK, result, result.Message)
}

func messageOr(result *usecase.AuthResult, fallback string) string {
	if result == nil || result.Message == "" {
		return fallback
	}

	return result.Message
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
