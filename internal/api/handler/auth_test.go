package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/trendyreports/trendyreports/internal/api/middleware"
	"github.com/trendyreports/trendyreports/internal/config"
)

func testAuthConfig(t *testing.T, password string) *config.Config {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Admin = &config.AdminConfig{
		Enabled:         true,
		Username:        "admin",
		PasswordHash:    string(hash),
		JWTSecret:       "0123456789abcdef0123456789abcdef",
		TokenExpiration: 24,
	}
	return cfg
}

func TestLogin_Success(t *testing.T) {
	cfg := testAuthConfig(t, "hunter2hunter2")
	h := NewAuthHandler(cfg)

	r := SetupTestRouter()
	r.POST("/login", h.Login)

	w := PerformRequest(r, CreateTestRequest("POST", "/login", LoginRequest{
		Username: "admin",
		Password: "hunter2hunter2",
	}))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := DecodeJSON(w)
	token, _ := resp["token"].(string)
	require.NotEmpty(t, token)

	username, err := h.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
}

func TestLogin_RememberMe(t *testing.T) {
	cfg := testAuthConfig(t, "hunter2hunter2")
	h := NewAuthHandler(cfg)

	r := SetupTestRouter()
	r.POST("/login", h.Login)

	w := PerformRequest(r, CreateTestRequest("POST", "/login", LoginRequest{
		Username:   "admin",
		Password:   "hunter2hunter2",
		RememberMe: true,
	}))
	require.Equal(t, http.StatusOK, w.Code)

	resp := DecodeJSON(w)
	expiresAt, err := time.Parse(time.RFC3339, resp["expires_at"].(string))
	require.NoError(t, err)
	assert.Greater(t, time.Until(expiresAt), 6*24*time.Hour)
}

func TestLogin_WrongPassword(t *testing.T) {
	cfg := testAuthConfig(t, "hunter2hunter2")
	h := NewAuthHandler(cfg)

	r := SetupTestRouter()
	r.POST("/login", h.Login)

	w := PerformRequest(r, CreateTestRequest("POST", "/login", LoginRequest{
		Username: "admin",
		Password: "wrong",
	}))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_UnknownUsername(t *testing.T) {
	cfg := testAuthConfig(t, "hunter2hunter2")
	h := NewAuthHandler(cfg)

	r := SetupTestRouter()
	r.POST("/login", h.Login)

	w := PerformRequest(r, CreateTestRequest("POST", "/login", LoginRequest{
		Username: "root",
		Password: "hunter2hunter2",
	}))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_AdminDisabled(t *testing.T) {
	cfg := testAuthConfig(t, "hunter2hunter2")
	cfg.Admin.Enabled = false
	h := NewAuthHandler(cfg)

	r := SetupTestRouter()
	r.POST("/login", h.Login)

	w := PerformRequest(r, CreateTestRequest("POST", "/login", LoginRequest{
		Username: "admin",
		Password: "hunter2hunter2",
	}))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMe_WithToken(t *testing.T) {
	cfg := testAuthConfig(t, "hunter2hunter2")
	h := NewAuthHandler(cfg)

	r := SetupTestRouter()
	r.POST("/login", h.Login)
	r.GET("/me", middleware.JWTAuth(h), h.Me)

	w := PerformRequest(r, CreateTestRequest("POST", "/login", LoginRequest{
		Username: "admin",
		Password: "hunter2hunter2",
	}))
	require.Equal(t, http.StatusOK, w.Code)
	token := DecodeJSON(w)["token"].(string)

	req := CreateTestRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = PerformRequest(r, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", DecodeJSON(w)["username"])
}

func TestMe_WithoutToken(t *testing.T) {
	cfg := testAuthConfig(t, "hunter2hunter2")
	h := NewAuthHandler(cfg)

	r := SetupTestRouter()
	r.GET("/me", middleware.JWTAuth(h), h.Me)

	w := PerformRequest(r, CreateTestRequest("GET", "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := testAuthConfig(t, "hunter2hunter2")
	h := NewAuthHandler(cfg)

	claims := &Claims{
		Username: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.Admin.JWTSecret))
	require.NoError(t, err)

	_, err = h.ValidateToken(signed)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	cfg := testAuthConfig(t, "hunter2hunter2")
	h := NewAuthHandler(cfg)

	_, err := h.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := testAuthConfig(t, "hunter2hunter2")
	h := NewAuthHandler(cfg)

	claims := &Claims{
		Username: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("a-completely-different-signing-key"))
	require.NoError(t, err)

	_, err = h.ValidateToken(signed)
	assert.Error(t, err)
}
