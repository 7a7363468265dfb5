package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/trendyreports/trendyreports/internal/config"
	"github.com/trendyreports/trendyreports/internal/store"
	"github.com/trendyreports/trendyreports/pkg/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init(logger.Config{Level: "error", Format: "text"})
	defer logger.Sync()
	m.Run()
}

func setupRouter(t *testing.T) (*gin.Engine, *config.Config, func()) {
	s, cleanup := store.SetupTestDB(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Admin = &config.AdminConfig{
		Enabled:         true,
		Username:        "admin",
		PasswordHash:    string(hash),
		JWTSecret:       "0123456789abcdef0123456789abcdef",
		TokenExpiration: 24,
	}

	r := gin.New()
	Setup(r, cfg, s)
	return r, cfg, cleanup
}

func perform(r *gin.Engine, method, url string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, url, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r, _, cleanup := setupRouter(t)
	defer cleanup()

	w := perform(r, "GET", "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestPublicRoutes(t *testing.T) {
	r, _, cleanup := setupRouter(t)
	defer cleanup()

	w := perform(r, "GET", "/preview/branding", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	w = perform(r, "GET", "/api/v1/report-types", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = perform(r, "POST", "/api/v1/leads", map[string]string{
		"name":  "Jordan Avery",
		"email": "jordan.avery@example.com",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r, _, cleanup := setupRouter(t)
	defer cleanup()

	for _, route := range []struct {
		method string
		url    string
	}{
		{"POST", "/api/v1/renders"},
		{"GET", "/api/v1/reports"},
		{"GET", "/api/v1/templates"},
		{"GET", "/api/v1/brands"},
		{"GET", "/api/v1/leads"},
		{"GET", "/api/v1/auth/me"},
	} {
		w := perform(r, route.method, route.url, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.url)
	}
}

func TestLoginThenAccessProtectedRoute(t *testing.T) {
	r, _, cleanup := setupRouter(t)
	defer cleanup()

	w := perform(r, "POST", "/api/v1/auth/login", map[string]string{
		"username": "admin",
		"password": "hunter2hunter2",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	req := httptest.NewRequest("GET", "/api/v1/reports", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
