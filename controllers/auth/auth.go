package authcontroller

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/kursatemre/qr-menu-api/middleware"
)

// Session cookie lifetime: 7 days.
const cookieMaxAge = 60 * 60 * 24 * 7

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifies the admin credentials and issues the session cookie.
// The username comes from ADMIN_USERNAME and the password is compared
// against the bcrypt hash in ADMIN_PASSWORD_HASH.
func Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz istek"})
			return
		}

		username := os.Getenv("ADMIN_USERNAME")
		passwordHash := os.Getenv("ADMIN_PASSWORD_HASH")
		if username == "" || passwordHash == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Yönetici kimlik bilgileri yapılandırılmamış"})
			return
		}

		if req.Username != username ||
			bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Kullanıcı adı veya şifre hatalı"})
			return
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(middleware.AdminCookieName, middleware.AdminCookieValue,
			cookieMaxAge, "/", "", secureCookies(), true)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// Logout clears the session cookie.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(middleware.AdminCookieName, "", -1, "/", "", secureCookies(), true)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// Check reports whether the request carries a valid session. This endpoint
// answers with authenticated:false rather than a 401 so the admin UI can
// poll it without error handling.
func Check() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, err := c.Cookie(middleware.AdminCookieName)
		c.JSON(http.StatusOK, gin.H{
			"authenticated": err == nil && value == middleware.AdminCookieValue,
		})
	}
}

// Cookies are marked Secure everywhere except local development.
func secureCookies() bool {
	return os.Getenv("ENVIRONMENT") == "production"
}
