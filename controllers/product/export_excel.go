package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/kursatemre/qr-menu-api/models"
)

// ExportProductsToExcel streams the full product list (inactive included)
// as an xlsx download for offline editing.
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Category").Order("name ASC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ürünler yüklenemedi"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Excel dosyası oluşturulamadı"})
			return
		}

		headers := []string{
			"ID", "Name", "Description", "Category", "Price",
			"ImageURL", "Active", "OrderEnabled", "CreatedAt", "UpdatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()

			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(stringOrEmpty(p.Description))

			categoryName := ""
			if p.Category != nil {
				categoryName = p.Category.Name
			}
			row.AddCell().SetValue(categoryName)

			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(stringOrEmpty(p.ImageURL))
			row.AddCell().SetValue(p.IsActive)
			row.AddCell().SetValue(p.OrderEnabled)
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(p.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Excel dosyası yazılamadı"})
			return
		}
	}
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
