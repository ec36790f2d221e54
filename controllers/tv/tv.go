package tvcontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kursatemre/qr-menu-api/carousel"
	"github.com/kursatemre/qr-menu-api/models"
	"github.com/kursatemre/qr-menu-api/theme"
)

type tvProduct struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	Price        float64 `json:"price"`
	ImageURL     *string `json:"image_url"`
	CategoryName string  `json:"category_name"`
}

// GetTVMenu returns the unattended-display payload: active products newest
// first with their category name, the resolved theme, and the rotation
// constants a client-side fallback would use.
func GetTVMenu(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		t := loadTheme(db)
		products := loadTVProducts(db)

		c.JSON(http.StatusOK, gin.H{
			"theme":       t,
			"products":    products,
			"page_size":   carousel.ProductPageSize,
			"interval_ms": carousel.ProductInterval.Milliseconds(),
			"total_pages": carousel.PageCount(len(products), carousel.ProductPageSize),
		})
	}
}

func loadTheme(db *gorm.DB) theme.Theme {
	var rows []models.DisplaySetting
	if err := db.Find(&rows).Error; err != nil {
		log.Printf("❌ Failed to load display settings for TV: %v", err)
		rows = nil
	}
	return theme.Resolve(rows)
}

func loadTVProducts(db *gorm.DB) []tvProduct {
	var products []models.Product
	if err := db.
		Preload("Category").
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		log.Printf("❌ Failed to load products for TV: %v", err)
		return []tvProduct{}
	}

	result := make([]tvProduct, 0, len(products))
	for _, p := range products {
		categoryName := "Diğer"
		if p.Category != nil {
			categoryName = p.Category.Name
		}
		result = append(result, tvProduct{
			ID:           p.ID,
			Name:         p.Name,
			Description:  p.Description,
			Price:        p.Price,
			ImageURL:     p.ImageURL,
			CategoryName: categoryName,
		})
	}
	return result
}

func loadTVCategories(db *gorm.DB) []models.Category {
	var categories []models.Category
	if err := db.Order("display_order").Find(&categories).Error; err != nil {
		log.Printf("❌ Failed to load categories for TV: %v", err)
		return []models.Category{}
	}
	return categories
}
