package authcontroller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kursatemre/qr-menu-api/middleware"
)

func authTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/auth/login", Login())
	r.POST("/api/auth/logout", Logout())
	r.GET("/api/auth/check", Check())
	return r
}

func setTestCredentials(t *testing.T, username, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	t.Setenv("ADMIN_USERNAME", username)
	t.Setenv("ADMIN_PASSWORD_HASH", string(hash))
}

func doLogin(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLoginSuccessSetsSessionCookie(t *testing.T) {
	setTestCredentials(t, "admin", "correct-horse")
	r := authTestRouter()

	w := doLogin(r, `{"username":"admin","password":"correct-horse"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, middleware.AdminCookieName, cookie.Name)
	assert.Equal(t, middleware.AdminCookieValue, cookie.Value)
	assert.Equal(t, 60*60*24*7, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.False(t, cookie.Secure, "cookie must not be Secure outside production")
}

func TestLoginWrongPassword(t *testing.T) {
	setTestCredentials(t, "admin", "correct-horse")
	r := authTestRouter()

	w := doLogin(r, `{"username":"admin","password":"battery-staple"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Kullanıcı adı veya şifre hatalı")
	assert.Empty(t, w.Result().Cookies())
}

func TestLoginWrongUsername(t *testing.T) {
	setTestCredentials(t, "admin", "correct-horse")
	r := authTestRouter()

	w := doLogin(r, `{"username":"root","password":"correct-horse"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginWithoutConfiguredCredentials(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	r := authTestRouter()

	w := doLogin(r, `{"username":"admin","password":"anything"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestLogoutExpiresCookie(t *testing.T) {
	r := authTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.AdminCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestCheckReportsSessionState(t *testing.T) {
	r := authTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/check", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/auth/check", nil)
	req.AddCookie(&http.Cookie{Name: middleware.AdminCookieName, Value: middleware.AdminCookieValue})
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":true`)
}
