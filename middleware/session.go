package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Admin session cookie contract. The value is a fixed sentinel, not a
// token: the cookie either matches exactly or the request is unauthorized.
const (
	AdminCookieName  = "admin_auth"
	AdminCookieValue = "authenticated"
)

// RequireAdminSession gates the admin area. Browser navigations are sent
// to the login page; API calls get a JSON 401 so the caller can tell
// "not allowed" apart from "broken".
func RequireAdminSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, err := c.Cookie(AdminCookieName)
		if err != nil || value != AdminCookieValue {
			if wantsHTML(c) {
				c.Redirect(http.StatusFound, "/login")
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Yetkisiz erişim"})
			}
			c.Abort()
			return
		}
		c.Next()
	}
}

func wantsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}
