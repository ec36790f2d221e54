package routes

import (
	"github.com/gin-gonic/gin"

	authcontroller "github.com/kursatemre/qr-menu-api/controllers/auth"
)

// SetupAuthRoutes registers the "/api/auth/*" endpoints. These are the only
// /api paths reachable without a session cookie.
func SetupAuthRoutes(r *gin.Engine) {
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/login", authcontroller.Login())
		authGroup.POST("/logout", authcontroller.Logout())
		authGroup.GET("/check", authcontroller.Check())
	}
}
