package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utsavhq/utsav/internal/utils"
)

const testSecret = "test-secret"

func runChain(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	handler := mw(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec, c, reached
}

func TestJWTAuth_ValidToken(t *testing.T) {
	access, err := utils.NewAccessToken(testSecret, 7, utils.RoleOrganizer, 15)
	require.NoError(t, err)

	rec, c, reached := runChain(t, JWTAuth(testSecret), "Bearer "+access.Token)

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint64(7), c.Get("user_id"))
	assert.Equal(t, utils.RoleOrganizer, c.Get("role"))
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	rec, _, reached := runChain(t, JWTAuth(testSecret), "")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	access, err := utils.NewAccessToken("other-secret", 7, utils.RoleAttendee, 15)
	require.NoError(t, err)

	rec, _, reached := runChain(t, JWTAuth(testSecret), "Bearer "+access.Token)
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	access, err := utils.NewAccessToken(testSecret, 7, utils.RoleAttendee, -1)
	require.NoError(t, err)

	rec, _, reached := runChain(t, JWTAuth(testSecret), "Bearer "+access.Token)
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	e := echo.New()

	run := func(role string, allowed ...string) int {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if role != "" {
			c.Set("role", role)
		}
		handler := RequireRole(allowed...)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		require.NoError(t, handler(c))
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, run(utils.RoleOrganizer, utils.RoleOrganizer))
	assert.Equal(t, http.StatusForbidden, run(utils.RoleAttendee, utils.RoleOrganizer))
	assert.Equal(t, http.StatusForbidden, run("", utils.RoleOrganizer))
	assert.Equal(t, http.StatusOK, run(utils.RoleAttendee, utils.RoleOrganizer, utils.RoleAttendee))
}
