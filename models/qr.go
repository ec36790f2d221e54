package models

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QRFile struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	FileName  string    `gorm:"not null" json:"file_name"`
	FileURL   string    `gorm:"not null" json:"file_url"`
	TargetURL string    `json:"target_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (q *QRFile) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}

func SaveQRFile(db *gorm.DB, fileName, fileURL, targetURL string) (*QRFile, error) {
	qrFile := &QRFile{
		FileName:  fileName,
		FileURL:   fileURL,
		TargetURL: targetURL,
	}
	if err := db.Create(qrFile).Error; err != nil {
		return nil, err
	}

	log.Printf("📁 Saved QR file in DB: %s -> %s", fileName, fileURL)
	return qrFile, nil
}

func GetAllQRFiles(db *gorm.DB) ([]QRFile, error) {
	var files []QRFile
	if err := db.Order("created_at DESC").Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}
