package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kursatemre/qr-menu-api/models"
)

type CreateProductRequest struct {
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	CategoryID   *string `json:"category_id"`
	Price        float64 `json:"price"`
	ImageURL     *string `json:"image_url"`
	OrderEnabled bool    `json:"order_enabled"`
}

type UpdateProductRequest struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	CategoryID   *string  `json:"category_id"`
	Price        *float64 `json:"price"`
	ImageURL     *string  `json:"image_url"`
	IsActive     *bool    `json:"is_active"`
	OrderEnabled *bool    `json:"order_enabled"`
}

// CreateProduct creates a new, active product. The image is expected to be
// uploaded beforehand via /api/upload; a failed upload aborts the save on
// the client side, so no row is ever created with a dangling image.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz istek"})
			return
		}
		if req.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ürün adı gerekli"})
			return
		}
		if req.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Fiyat negatif olamaz"})
			return
		}

		product := models.Product{
			Name:         req.Name,
			Description:  req.Description,
			CategoryID:   normalizeCategoryID(req.CategoryID),
			Price:        req.Price,
			ImageURL:     req.ImageURL,
			IsActive:     true,
			OrderEnabled: req.OrderEnabled,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ürün oluşturulamadı"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}

// UpdateProduct applies the provided fields to an existing product.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ürün ID gerekli"})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ürün bulunamadı"})
			return
		}

		var req UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz istek"})
			return
		}

		if req.Name != nil {
			if *req.Name == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Ürün adı boş olamaz"})
				return
			}
			product.Name = *req.Name
		}
		if req.Description != nil {
			product.Description = req.Description
		}
		if req.CategoryID != nil {
			product.CategoryID = normalizeCategoryID(req.CategoryID)
		}
		if req.Price != nil {
			if *req.Price < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Fiyat negatif olamaz"})
				return
			}
			product.Price = *req.Price
		}
		if req.ImageURL != nil {
			product.ImageURL = req.ImageURL
		}
		if req.IsActive != nil {
			product.IsActive = *req.IsActive
		}
		if req.OrderEnabled != nil {
			product.OrderEnabled = *req.OrderEnabled
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ürün güncellenemedi"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

// GetProducts lists products for the admin panel, active ones by default.
// ?include_inactive=true also returns soft-deleted products.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{}).Preload("Category")
		if c.Query("include_inactive") != "true" {
			query = query.Where("is_active = ?", true)
		}
		if categoryID := c.Query("category_id"); categoryID != "" {
			query = query.Where("category_id = ?", categoryID)
		}

		var products []models.Product
		if err := query.Order("name ASC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ürünler yüklenemedi"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

// DeleteProduct soft-deletes: the row stays for existing orders, but the
// product disappears from every listing.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ürün ID gerekli"})
			return
		}

		result := db.Model(&models.Product{}).Where("id = ?", id).Update("is_active", false)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ürün silinemedi"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ürün bulunamadı"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// An empty category id means "uncategorized", stored as NULL.
func normalizeCategoryID(id *string) *string {
	if id == nil || *id == "" {
		return nil
	}
	return id
}
