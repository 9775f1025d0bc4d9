package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "identity/internal/delivery/context"
	"identity/internal/delivery/http/response"
	"identity/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUsersUsecase struct {
	mock.Mock
}

func (m *mockUsersUsecase) ListUsers(ctx context.Context) ([]*usecase.UserView, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*usecase.UserView), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUsersUsecase) GetUser(ctx context.Context, id int64) (*usecase.UserView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*usecase.UserView), args.Error(1)
	}

	return nil, args.Error(1)
}

func newUsersRequest(path string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func TestUsersHandler_RequiresSubject(t *testing.T) {
	uc := &mockUsersUsecase{}
	h := NewUsersHandler(uc, slog.New(slog.DiscardHandler))

	c, rec := newUsersRequest("/api/users")
	require.NoError(t, h.ListUsers(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", decodeResponse(t, rec).Error.Code)

	c, rec = newUsersRequest("/api/users/1")
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.GetUser(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	uc.AssertNotCalled(t, "ListUsers", mock.Anything)
	uc.AssertNotCalled(t, "GetUser", mock.Anything, mock.Anything)
}

func TestUsersHandler_ListUsersLogsSubject(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	uc := &mockUsersUsecase{}
	uc.On("ListUsers", mock.Anything).Return([]*usecase.UserView{{ID: 1, Email: "john@x.com"}}, nil).Once()
	h := NewUsersHandler(uc, logger)

	c, rec := newUsersRequest("/api/users")
	deliverycontext.SetSubject(c, "42")

	require.NoError(t, h.ListUsers(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, buf.String(), `"subject":"42"`)
	assert.Contains(t, buf.String(), `"count":1`)
	uc.AssertExpectations(t)
}

func TestUsersHandler_GetUserNonNumericIDIsNotFound(t *testing.T) {
	uc := &mockUsersUsecase{}
	h := NewUsersHandler(uc, slog.New(slog.DiscardHandler))

	c, rec := newUsersRequest("/api/users/abc")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	deliverycontext.SetSubject(c, "42")

	require.NoError(t, h.GetUser(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "user not found", resp.Message)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "USER_NOT_FOUND", resp.Error.Code)
	uc.AssertNotCalled(t, "GetUser", mock.Anything, mock.Anything)
}
