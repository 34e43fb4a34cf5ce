package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/xxxsen/webgate/internal/pkg/session"
	"github.com/xxxsen/webgate/internal/service"
	"github.com/xxxsen/webgate/internal/store"
)

func setupRouter(t *testing.T) (http.Handler, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	usersPath := filepath.Join(t.TempDir(), "users.json")
	authService := service.NewAuthService(store.NewFileStore(usersPath))
	sessions := session.NewManager([]byte("test-secret"), time.Hour)

	router := NewRouter(RouterDeps{
		Auth:          NewAuthHandler(authService, sessions),
		Pages:         NewPageHandler(authService),
		Sessions:      sessions,
		TemplatesGlob: "../../web/templates/*.html",
	})
	return router, usersPath
}

func postJSON(t *testing.T, router http.Handler, path string, body map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeResult(t *testing.T, resp *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	return result
}

func sessionCookie(t *testing.T, resp *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range resp.Result().Cookies() {
		if cookie.Name == session.CookieName {
			return cookie
		}
	}
	return nil
}

func TestRegisterLoginFlow(t *testing.T) {
	router, usersPath := setupRouter(t)

	resp := postJSON(t, router, "/api/register", map[string]string{
		"name": "Ana", "email": "ANA@Example.com", "phone": "123", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	result := decodeResult(t, resp)
	require.Equal(t, true, result["success"])
	require.Equal(t, "/index", result["redirect"])
	cookie := sessionCookie(t, resp)
	require.NotNil(t, cookie)
	require.NotEmpty(t, cookie.Value)

	stored, err := os.ReadFile(usersPath)
	require.NoError(t, err)
	require.Contains(t, string(stored), `"ana@example.com"`)
	require.NotContains(t, string(stored), "secret1")

	resp = postJSON(t, router, "/api/register", map[string]string{
		"name": "Other", "email": "ana@example.com", "phone": "456", "password": "secret2",
	})
	require.Equal(t, http.StatusBadRequest, resp.Code)
	require.Equal(t, "Email already registered.", decodeResult(t, resp)["message"])

	resp = postJSON(t, router, "/api/login", map[string]string{
		"email": "ana@example.com", "password": "wrong!!",
	})
	require.Equal(t, http.StatusUnauthorized, resp.Code)
	require.Equal(t, "Invalid credentials.", decodeResult(t, resp)["message"])

	resp = postJSON(t, router, "/api/login", map[string]string{
		"email": "ana@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, true, decodeResult(t, resp)["success"])
	require.NotNil(t, sessionCookie(t, resp))
}

func TestRegisterFirstFailingCheckWins(t *testing.T) {
	router, _ := setupRouter(t)

	resp := postJSON(t, router, "/api/register", map[string]string{
		"name": "", "email": "bad", "phone": "", "password": "12",
	})
	require.Equal(t, http.StatusBadRequest, resp.Code)
	require.Equal(t, "Name required.", decodeResult(t, resp)["message"])
}

func TestRegisterMalformedBody(t *testing.T) {
	router, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestLogoutWithoutSession(t *testing.T) {
	router, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusFound, resp.Code)
	require.Equal(t, "/", resp.Header().Get("Location"))
	cookie := sessionCookie(t, resp)
	require.NotNil(t, cookie)
	require.Empty(t, cookie.Value)
	require.Negative(t, cookie.MaxAge)
}

func TestIndexPersonalization(t *testing.T) {
	router, _ := setupRouter(t)

	resp := postJSON(t, router, "/api/register", map[string]string{
		"name": "Ana", "email": "ana@example.com", "phone": "123", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	cookie := sessionCookie(t, resp)
	require.NotNil(t, cookie)

	req := httptest.NewRequest(http.MethodGet, "/index", nil)
	req.AddCookie(cookie)
	page := httptest.NewRecorder()
	router.ServeHTTP(page, req)
	require.Equal(t, http.StatusOK, page.Code)
	require.Contains(t, page.Body.String(), "Welcome back, Ana")

	req = httptest.NewRequest(http.MethodGet, "/index", nil)
	page = httptest.NewRecorder()
	router.ServeHTTP(page, req)
	require.Equal(t, http.StatusOK, page.Code)
	require.NotContains(t, page.Body.String(), "Welcome back")
}

func TestProfileAnonymous(t *testing.T) {
	router, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), "Sign in")
}

func TestTamperedSessionCookieIsIgnored(t *testing.T) {
	router, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/index", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "tampered"})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)
	require.NotContains(t, resp.Body.String(), "Welcome back")
}
