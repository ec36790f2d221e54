package categorycontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kursatemre/qr-menu-api/models"
)

type CategoryRequest struct {
	Name         *string `json:"name"`
	DisplayOrder *int    `json:"display_order"`
	ImageURL     *string `json:"image_url"`
}

func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz istek"})
			return
		}
		if req.Name == nil || *req.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Kategori adı gerekli"})
			return
		}

		category := models.Category{
			Name:     *req.Name,
			ImageURL: req.ImageURL,
		}
		if req.DisplayOrder != nil {
			category.DisplayOrder = *req.DisplayOrder
		} else {
			// Default to the end of the list.
			var count int64
			db.Model(&models.Category{}).Count(&count)
			category.DisplayOrder = int(count) + 1
		}

		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Kategori oluşturulamadı"})
			return
		}

		c.JSON(http.StatusCreated, category)
	}
}

// GetCategories lists categories in display order, each with its count of
// active products for the admin list.
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Order("display_order").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Kategoriler yüklenemedi"})
			return
		}

		type categoryWithCount struct {
			models.Category
			ProductCount int64 `json:"product_count"`
		}

		result := make([]categoryWithCount, 0, len(categories))
		for _, cat := range categories {
			var count int64
			if err := db.Model(&models.Product{}).
				Where("category_id = ? AND is_active = ?", cat.ID, true).
				Count(&count).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Kategoriler yüklenemedi"})
				return
			}
			result = append(result, categoryWithCount{Category: cat, ProductCount: count})
		}

		c.JSON(http.StatusOK, gin.H{"categories": result})
	}
}

func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Kategori bulunamadı"})
			return
		}

		var req CategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz istek"})
			return
		}

		if req.Name != nil {
			if *req.Name == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Kategori adı boş olamaz"})
				return
			}
			category.Name = *req.Name
		}
		if req.DisplayOrder != nil {
			category.DisplayOrder = *req.DisplayOrder
		}
		if req.ImageURL != nil {
			category.ImageURL = req.ImageURL
		}

		if err := db.Save(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Kategori güncellenemedi"})
			return
		}

		c.JSON(http.StatusOK, category)
	}
}

// DeleteCategory hard-deletes the category; its products go with it via
// the ON DELETE CASCADE constraint on the store side.
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Delete(&models.Category{}, "id = ?", id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Kategori silinemedi"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Kategori bulunamadı"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
