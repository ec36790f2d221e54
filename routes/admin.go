package routes

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	backendconfig "github.com/kursatemre/qr-menu-api/controllers/backendconfig"
	categorycontroller "github.com/kursatemre/qr-menu-api/controllers/category"
	migrationcontroller "github.com/kursatemre/qr-menu-api/controllers/migration"
	ordercontroller "github.com/kursatemre/qr-menu-api/controllers/order"
	productcontroller "github.com/kursatemre/qr-menu-api/controllers/product"
	qrcontroller "github.com/kursatemre/qr-menu-api/controllers/qr"
	settingscontroller "github.com/kursatemre/qr-menu-api/controllers/settings"
	uploadcontroller "github.com/kursatemre/qr-menu-api/controllers/upload"
	"github.com/kursatemre/qr-menu-api/middleware"
)

// SetupAdminRoutes registers every "/api/*" endpoint behind the session
// cookie gate (auth endpoints are registered separately and stay open).
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, uploadsDir string) {
	api := r.Group("/api")
	api.Use(middleware.RequireAdminSession())
	{
		// ─────────── Product Management ───────────
		products := api.Group("/products")
		{
			products.POST("", productcontroller.CreateProduct(db))
			products.PUT("/:id", productcontroller.UpdateProduct(db))
			products.GET("", productcontroller.GetProducts(db))
			products.DELETE("/:id", productcontroller.DeleteProduct(db))
			products.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Category Management ───────────
		categories := api.Group("/categories")
		{
			categories.POST("", categorycontroller.CreateCategory(db))
			categories.PUT("/:id", categorycontroller.UpdateCategory(db))
			categories.GET("", categorycontroller.GetCategories(db))
			categories.DELETE("/:id", categorycontroller.DeleteCategory(db))
		}

		// ─────────── Display Settings ───────────
		settings := api.Group("/settings")
		{
			settings.GET("", settingscontroller.GetSettings(db))
			settings.PUT("", settingscontroller.SaveSettings(db))
		}

		// ─────────── Orders ───────────
		orders := api.Group("/orders")
		{
			orders.GET("", ordercontroller.GetOrders(db))
			orders.POST("", ordercontroller.CreateOrder(db))
			orders.PATCH("", ordercontroller.UpdateOrderStatus(db))
			orders.GET("/ws", ordercontroller.OrderWebSocketHandler)
		}

		// ─────────── QR Management ───────────
		qrDir := filepath.Join(uploadsDir, "qrfiles")
		qr := api.Group("/qr")
		{
			qr.POST("", qrcontroller.GenerateQR(db, qrDir, "/uploads/qrfiles"))
			qr.GET("", qrcontroller.GetQRFiles(db))
			qr.DELETE("/:id", qrcontroller.DeleteQRFile(db, qrDir))
		}

		// ─────────── Operational ───────────
		api.POST("/upload", uploadcontroller.HandleImageUpload(uploadsDir, "/uploads"))
		api.POST("/run-migration", migrationcontroller.RunMigration(db))
		api.GET("/supabase-config", backendconfig.GetConfig())
	}
}
