package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	menucontroller "github.com/kursatemre/qr-menu-api/controllers/menu"
	tvcontroller "github.com/kursatemre/qr-menu-api/controllers/tv"
	"github.com/kursatemre/qr-menu-api/middleware"
)

// SetupMenuRoutes registers the customer-facing mobile menu payload.
func SetupMenuRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/menu", menucontroller.GetMenu(db))
}

// SetupTVRoutes registers the kiosk surface. Every /tv path sits behind the
// IP allow-list.
func SetupTVRoutes(r *gin.Engine, db *gorm.DB) {
	tv := r.Group("/tv")
	tv.Use(middleware.TVAccessGate())
	{
		tv.GET("/menu", tvcontroller.GetTVMenu(db))
		tv.GET("/ws", tvcontroller.StreamCarousel(db))
	}
}
