package settingscontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kursatemre/qr-menu-api/models"
	"github.com/kursatemre/qr-menu-api/theme"
)

// GetSettings returns the fully resolved theme plus its CSS-ready derived
// values for the admin editor. Even on a failed read the resolver yields a
// complete default theme; the error is still reported, not swallowed.
func GetSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rows []models.DisplaySetting
		if err := db.Find(&rows).Error; err != nil {
			log.Printf("❌ Failed to load display settings: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Ayarlar yüklenemedi",
				"theme": theme.Defaults(),
			})
			return
		}

		t := theme.Resolve(rows)
		c.JSON(http.StatusOK, gin.H{
			"theme":   t,
			"derived": t.Derived(),
		})
	}
}

// SaveSettings upserts the full settings object, one row per recognized
// key, keyed on setting_key. Saving the same theme twice leaves the stored
// state unchanged.
func SaveSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var t theme.Theme
		if err := c.ShouldBindJSON(&t); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz istek"})
			return
		}

		rows := t.Sanitized().Rows()
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "setting_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"setting_value", "updated_at"}),
		}).Create(&rows).Error; err != nil {
			log.Printf("❌ Failed to save display settings: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ayarlar kaydedilemedi"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
