package uploadcontroller

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
)

var unsafeChars = regexp.MustCompile(`[^\w\-_.]`)

// HandleImageUpload stores a multipart "file" under the uploads directory
// with a sanitized, timestamped name and returns its public URL. Admin
// forms upload first and only then save the data row, so a failure here
// aborts the whole save.
func HandleImageUpload(uploadDir, publicBasePath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Dosya yüklenmedi"})
			return
		}

		cleanName := unsafeChars.ReplaceAllString(file.Filename, "_")
		filename := fmt.Sprintf("%d_%s", time.Now().Unix(), cleanName)

		if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": fmt.Sprintf("Yükleme klasörü oluşturulamadı: %v", err),
			})
			return
		}

		savePath := filepath.Join(uploadDir, filename)
		if err := c.SaveUploadedFile(file, savePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": fmt.Sprintf("Dosya kaydedilemedi: %v", err),
			})
			return
		}

		fileURL := fmt.Sprintf("%s/%s", publicBasePath, filename)
		log.Printf("File uploaded: %s -> %s", file.Filename, fileURL)

		c.JSON(http.StatusOK, gin.H{"url": fileURL})
	}
}
