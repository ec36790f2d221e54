package menucontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kursatemre/qr-menu-api/models"
	"github.com/kursatemre/qr-menu-api/theme"
)

type menuCategory struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	ImageURL *string          `json:"image_url"`
	Products []models.Product `json:"products"`
}

// GetMenu builds the public mobile-menu payload: categories in display
// order with their active products, plus the resolved theme. Read failures
// degrade to defaults / empty lists so the page always renders.
func GetMenu(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rows []models.DisplaySetting
		if err := db.Find(&rows).Error; err != nil {
			log.Printf("❌ Failed to load display settings for menu: %v", err)
			rows = nil
		}
		t := theme.Resolve(rows)

		var categories []models.Category
		if err := db.Order("display_order").Find(&categories).Error; err != nil {
			log.Printf("❌ Failed to load categories for menu: %v", err)
			categories = nil
		}

		var products []models.Product
		if err := db.Where("is_active = ?", true).Order("name ASC").Find(&products).Error; err != nil {
			log.Printf("❌ Failed to load products for menu: %v", err)
			products = nil
		}

		byCategory := make(map[string][]models.Product)
		for _, p := range products {
			if p.CategoryID == nil {
				continue
			}
			byCategory[*p.CategoryID] = append(byCategory[*p.CategoryID], p)
		}

		menu := make([]menuCategory, 0, len(categories))
		for _, cat := range categories {
			items := byCategory[cat.ID]
			if items == nil {
				items = []models.Product{}
			}
			menu = append(menu, menuCategory{
				ID:       cat.ID,
				Name:     cat.Name,
				ImageURL: cat.ImageURL,
				Products: items,
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"theme":      t,
			"derived":    t.Derived(),
			"categories": menu,
		})
	}
}
