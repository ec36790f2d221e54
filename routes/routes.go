package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the public, auth,
// admin and TV route groups. uploadsDir is the directory served under
// /uploads.
func SetupRoutes(r *gin.Engine, db *gorm.DB, uploadsDir string) {
	// Public auth endpoints (no session required)
	SetupAuthRoutes(r)

	// Session-gated admin API
	SetupAdminRoutes(r, db, uploadsDir)

	// Public customer menu
	SetupMenuRoutes(r, db)

	// IP-gated TV/kiosk surface
	SetupTVRoutes(r, db)
}
