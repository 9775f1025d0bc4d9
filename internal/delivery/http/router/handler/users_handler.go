package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "identity/internal/delivery/context"
	"identity/internal/delivery/http/response"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UsersHandler serves the account directory to authenticated callers.
type UsersHandler struct {
	uc     usecase.UsersUsecase
	logger *slog.Logger
}

// NewUsersHandler is the constructor for UsersHandler, injected by Fx.
func NewUsersHandler(uc usecase.UsersUsecase, logger *slog.Logger) *UsersHandler {
	return &UsersHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListUsers returns every account without credentials.
func (h *UsersHandler) ListUsers(c echo.Context) error {
	subject, ok := deliverycontext.GetSubject(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrInvalidToken.ErrorCode(), domainerrors.ErrInvalidToken.Message())
	}

	ctx := c.Request().Context()
	users, err := h.uc.ListUsers(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Debug("Directory listed",
		slog.String("subject", subject),
		slog.Int("count", len(users)),
	)

	return response.Success(c, http.StatusOK, users, "")
}

// GetUser returns one account by numeric ID. An ID that cannot name an account is reported as not found.
func (h *UsersHandler) GetUser(c echo.Context) error {
	subject, ok := deliverycontext.GetSubject(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrInvalidToken.ErrorCode(), domainerrors.ErrInvalidToken.Message())
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.NotFound(c, domainerrors.ErrUserNotFound.ErrorCode(), domainerrors.ErrUserNotFound.Message())
	}

	ctx := c.Request().Context()
	user, err := h.uc.GetUser(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Debug("Directory entry read",
		slog.String("subject", subject),
		slog.Int64("userID", id),
	)

	return response.Success(c, http.StatusOK, user, "")
}
