package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utsavhq/utsav/internal/config"
	"github.com/utsavhq/utsav/internal/store"
	"github.com/utsavhq/utsav/internal/utils"
)

func testConfig() config.Config {
	return config.Config{
		Env:            "test",
		Port:           "0",
		JWTSecret:      "test-secret",
		AccessTTLMin:   15,
		RefreshTTLDays: 7,
		BcryptCost:     4, // minimum cost keeps the test fast
	}
}

type authRespBody struct {
	User struct {
		ID          uint64 `json:"id"`
		Username    string `json:"username"`
		FullName    string `json:"fullName"`
		IsOrganizer bool   `json:"isOrganizer"`
	} `json:"user"`
	Access struct {
		Token string `json:"token"`
	} `json:"access"`
	Refresh struct {
		Token string `json:"token"`
	} `json:"refresh"`
}

func TestRegister(t *testing.T) {
	env := newTestEnv(t)
	h := NewAuthHandler(testConfig(), env.store)

	body := `{"username":"Hari","password":"secret1","fullName":"Hari Prasad","isOrganizer":true}`
	c, rec := env.request(http.MethodPost, "/api/v1/auth/register", body, 0)

	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp authRespBody
	decodeBody(t, rec, &resp)
	assert.Equal(t, "hari", resp.User.Username) // usernames normalize to lowercase
	assert.True(t, resp.User.IsOrganizer)
	assert.NotEmpty(t, resp.Access.Token)
	assert.NotEmpty(t, resp.Refresh.Token)
	// The password hash never leaves the server.
	assert.NotContains(t, rec.Body.String(), "secret1")
	assert.NotContains(t, rec.Body.String(), "password")

	u, err := env.store.GetUserByUsername("hari")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", u.Password)
	assert.True(t, utils.VerifyPassword(u.Password, "secret1"))
}

func TestRegister_DuplicateUsername(t *testing.T) {
	env := newTestEnv(t)
	h := NewAuthHandler(testConfig(), env.store)

	body := `{"username":"organizer","password":"secret1","fullName":"Clone"}`
	c, rec := env.request(http.MethodPost, "/api/v1/auth/register", body, 0)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	cfg := testConfig()
	h := NewAuthHandler(cfg, env.store)

	hash, err := utils.HashPassword("secret1", cfg.BcryptCost)
	require.NoError(t, err)
	_, err = env.store.CreateUser(store.User{Username: "maya", Password: hash, FullName: "Maya"})
	require.NoError(t, err)

	c, rec := env.request(http.MethodPost, "/api/v1/auth/login", `{"username":"maya","password":"secret1"}`, 0)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = env.request(http.MethodPost, "/api/v1/auth/login", `{"username":"maya","password":"wrong"}`, 0)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	c, rec = env.request(http.MethodPost, "/api/v1/auth/login", `{"username":"ghost","password":"secret1"}`, 0)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefresh_RotatesToken(t *testing.T) {
	env := newTestEnv(t)
	h := NewAuthHandler(testConfig(), env.store)

	c, rec := env.request(http.MethodPost, "/api/v1/auth/register", `{"username":"nabin","password":"secret1","fullName":"Nabin"}`, 0)
	require.NoError(t, h.Register(c))
	var first authRespBody
	decodeBody(t, rec, &first)

	c, rec = env.request(http.MethodPost, "/api/v1/auth/refresh", `{"refresh_token":"`+first.Refresh.Token+`"}`, 0)
	require.NoError(t, h.Refresh(c))
	require.Equal(t, http.StatusOK, rec.Code)
	var second authRespBody
	decodeBody(t, rec, &second)
	assert.NotEqual(t, first.Refresh.Token, second.Refresh.Token)

	// The old token was revoked by the rotation.
	c, rec = env.request(http.MethodPost, "/api/v1/auth/refresh", `{"refresh_token":"`+first.Refresh.Token+`"}`, 0)
	require.NoError(t, h.Refresh(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)
	h := NewAuthHandler(testConfig(), env.store)

	c, rec := env.request(http.MethodPost, "/api/v1/auth/register", `{"username":"bina","password":"secret1","fullName":"Bina"}`, 0)
	require.NoError(t, h.Register(c))
	var resp authRespBody
	decodeBody(t, rec, &resp)

	c, rec = env.request(http.MethodPost, "/api/v1/auth/logout", `{"refresh_token":"`+resp.Refresh.Token+`"}`, 0)
	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	c, rec = env.request(http.MethodPost, "/api/v1/auth/refresh-access", `{"refresh_token":"`+resp.Refresh.Token+`"}`, 0)
	require.NoError(t, h.RefreshAccess(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe(t *testing.T) {
	env := newTestEnv(t)
	h := NewAuthHandler(testConfig(), env.store)

	c, rec := env.request(http.MethodGet, "/api/v1/me", "", env.attendee.ID)
	require.NoError(t, h.Me(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"attendee"`)
}
