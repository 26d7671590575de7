package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Varsayılan etkinlik ömrü (oluşturma + 30 gün)
const DefaultEventLifetime = 30 * 24 * time.Hour

type Event struct {
	ID             string    `json:"id" gorm:"type:uuid;primaryKey"`
	GuestCode      string    `json:"guest_code" gorm:"size:12;uniqueIndex;not null"`
	OwnerSecret    string    `json:"-" gorm:"size:32;uniqueIndex;not null"`
	Name           string    `json:"name" gorm:"size:200;not null"`
	OwnerEmail     string    `json:"owner_email,omitempty" gorm:"size:254"`
	CreatedAt      time.Time `json:"created_at"`
	ExpiresAt      time.Time `json:"expires_at"`
	IsActive       bool      `json:"is_active" gorm:"default:true"`
	UploadsEnabled bool      `json:"uploads_enabled" gorm:"default:true"`

	Photos []Photos `json:"-" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate, kapasite kodlarını ve varsayılan son kullanma tarihini üretir.
// Kodlar her zaman sunucu tarafında oluşturulur, istemciden asla alınmaz.
func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.GuestCode == "" {
		e.GuestCode = uuid.New().String()[:12]
	}
	if e.OwnerSecret == "" {
		e.OwnerSecret = strings.ReplaceAll(uuid.New().String(), "-", "")
	}
	if e.ExpiresAt.IsZero() {
		e.ExpiresAt = time.Now().Add(DefaultEventLifetime)
	}
	return nil
}

type CreateEventRequest struct {
	EventName  string `form:"event_name" json:"event_name" validate:"required"`
	OwnerEmail string `form:"owner_email" json:"owner_email" validate:"omitempty,email"`
}

type CreateEventResponse struct {
	Success   bool   `json:"success"`
	GuestURL  string `json:"guest_url"`
	OwnerURL  string `json:"owner_url"`
	QRCode    string `json:"qr_code"`
	EventName string `json:"event_name"`
	GuestCode string `json:"guest_code"`
}

type GalleryResponse struct {
	Success        bool            `json:"success"`
	EventName      string          `json:"event_name"`
	GuestCode      string          `json:"guest_code"`
	UploadsEnabled bool            `json:"uploads_enabled"`
	ExpiresAt      time.Time       `json:"expires_at"`
	Photos         []PhotoResponse `json:"photos"`
}

type DashboardResponse struct {
	Success        bool            `json:"success"`
	EventName      string          `json:"event_name"`
	GuestCode      string          `json:"guest_code"`
	UploadsEnabled bool            `json:"uploads_enabled"`
	IsActive       bool            `json:"is_active"`
	ExpiresAt      time.Time       `json:"expires_at"`
	PhotoCount     int             `json:"photo_count"`
	Photos         []PhotoResponse `json:"photos"`
}

type ToggleUploadsResponse struct {
	Success        bool `json:"success"`
	UploadsEnabled bool `json:"uploads_enabled"`
}
