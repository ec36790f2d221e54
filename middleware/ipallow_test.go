package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func tvTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	tv := r.Group("/tv")
	tv.Use(TVAccessGate())
	tv.GET("/menu", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestTVAccessGateAllowsListedIP(t *testing.T) {
	t.Setenv("ALLOWED_TV_IPS", "10.0.0.1,10.0.0.2")
	r := tvTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tv/menu", nil)
	req.Header.Set("X-Forwarded-For", "10.0.0.1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTVAccessGateDeniesUnlistedIP(t *testing.T) {
	t.Setenv("ALLOWED_TV_IPS", "10.0.0.1,10.0.0.2")
	r := tvTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tv/menu", nil)
	req.Header.Set("X-Forwarded-For", "192.168.1.50")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, w.Body.String(), "Access Denied")
}

func TestTVAccessGateEmptyListAllowsAll(t *testing.T) {
	t.Setenv("ALLOWED_TV_IPS", "")
	r := tvTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tv/menu", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTVAccessGateUsesFirstForwardedEntry(t *testing.T) {
	t.Setenv("ALLOWED_TV_IPS", "10.0.0.1")
	r := tvTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tv/menu", nil)
	req.Header.Set("X-Forwarded-For", "10.0.0.1, 172.16.0.1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestClientIPFallbackOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func() *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/tv/menu", nil)
		return c
	}

	c := newCtx()
	c.Request.Header.Set("X-Forwarded-For", " 10.1.1.1 , 10.2.2.2")
	c.Request.Header.Set("X-Real-IP", "10.3.3.3")
	assert.Equal(t, "10.1.1.1", ClientIP(c))

	c = newCtx()
	c.Request.Header.Set("X-Real-IP", "10.3.3.3")
	assert.Equal(t, "10.3.3.3", ClientIP(c))

	c = newCtx()
	assert.Equal(t, "unknown", ClientIP(c))
}
