package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Photos struct {
	ID               string    `json:"id" gorm:"type:uuid;primaryKey"`
	EventID          string    `json:"event_id" gorm:"type:uuid;index;not null"`
	StorageKey       string    `json:"storage_key" gorm:"size:500;not null"`
	PublicURL        string    `json:"public_url" gorm:"size:1000;not null"`
	OriginalFilename string    `json:"original_filename" gorm:"size:255;not null"`
	FileSize         int64     `json:"file_size" gorm:"not null"`
	ContentType      string    `json:"content_type" gorm:"size:50;not null"`
	UploadedAt       time.Time `json:"uploaded_at" gorm:"autoCreateTime;index"`
}

func (p *Photos) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

type UploadPhotoResponse struct {
	Success  bool   `json:"success"`
	PhotoID  string `json:"photo_id"`
	PhotoURL string `json:"photo_url"`
}

type PhotoResponse struct {
	ID               string    `json:"id"`
	EventID          string    `json:"event_id"`
	PublicURL        string    `json:"public_url"`
	OriginalFilename string    `json:"original_filename"`
	FileSize         int64     `json:"file_size"`
	ContentType      string    `json:"content_type"`
	UploadedAt       time.Time `json:"uploaded_at"`
}

type BulkDeleteRequest struct {
	PhotoIDs []string `json:"photo_ids"`
}

type BulkDeleteResponse struct {
	Success bool `json:"success"`
	Deleted int  `json:"deleted"`
}

type DownloadRequest struct {
	PhotoIDs []string `json:"photo_ids"`
}
