package qrcontroller

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"github.com/kursatemre/qr-menu-api/models"
)

const qrImageSize = 512

type GenerateQRRequest struct {
	URL string `json:"url"`
}

// GenerateQR renders a QR code PNG for the given URL (defaulting to this
// deployment's public menu page), stores it under the uploads directory
// and records it for later listing.
func GenerateQR(db *gorm.DB, uploadDir, publicBasePath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req GenerateQRRequest
		if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz istek"})
			return
		}

		targetURL := req.URL
		if targetURL == "" {
			targetURL = menuURL(c)
		}

		if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Yükleme klasörü oluşturulamadı"})
			return
		}

		filename := fmt.Sprintf("qr_%d.png", time.Now().Unix())
		savePath := filepath.Join(uploadDir, filename)

		if err := qrcode.WriteFile(targetURL, qrcode.Medium, qrImageSize, savePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "QR kodu oluşturulamadı"})
			return
		}

		fileURL := fmt.Sprintf("%s/%s", publicBasePath, filename)
		qrFile, err := models.SaveQRFile(db, filename, fileURL, targetURL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "QR kaydı oluşturulamadı"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "file": qrFile})
	}
}

func GetQRFiles(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		files, err := models.GetAllQRFiles(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "QR dosyaları yüklenemedi"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"files": files})
	}
}

// DeleteQRFile removes the stored PNG and its bookkeeping row.
func DeleteQRFile(db *gorm.DB, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var qrFile models.QRFile
		if err := db.First(&qrFile, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "QR dosyası bulunamadı"})
			return
		}

		filePath := filepath.Join(uploadDir, filepath.Base(qrFile.FileURL))
		if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
			log.Printf("❌ Failed to remove QR file %s: %v", filePath, err)
		}

		if err := db.Delete(&qrFile).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "QR dosyası silinemedi"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// The QR target defaults to this host's public menu page.
func menuURL(c *gin.Context) string {
	if base := os.Getenv("PUBLIC_BASE_URL"); base != "" {
		return base + "/menu"
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/menu", scheme, c.Request.Host)
}
