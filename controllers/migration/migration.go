package migrationcontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Every statement is idempotent so the endpoint can be hit repeatedly; it
// exists as an operational one-off for deployments predating the ordering
// feature, not as steady-state behavior.
var migrationStatements = []string{
	`ALTER TABLE products ADD COLUMN IF NOT EXISTS order_enabled BOOLEAN DEFAULT false;`,
	`CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		product_id UUID NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		phone TEXT NOT NULL,
		quantity INTEGER NOT NULL DEFAULT 1,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		notes TEXT,
		created_by TEXT DEFAULT 'customer',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_orders_product_id ON orders(product_id);`,
	`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status);`,
	`CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at DESC);`,
}

// RunMigration applies the fixed schema migration directly against the
// store and reports the outcome.
func RunMigration(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, stmt := range migrationStatements {
			if err := db.Exec(stmt).Error; err != nil {
				log.Printf("❌ Migration error: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{
					"error":   "Migration başarısız: " + err.Error(),
					"details": "Lütfen SQL scriptini manuel olarak veritabanında çalıştırın.",
				})
				return
			}
		}

		log.Println("✅ Migration completed successfully")
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Migration başarıyla tamamlandı! Artık ön sipariş özelliğini kullanabilirsiniz.",
		})
	}
}
