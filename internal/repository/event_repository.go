package repository

import (
	"github.com/sefazor/photobooth-backend/internal/models"
	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(event *models.Event) (*models.Event, error) {
	result := r.db.Create(event)
	if result.Error != nil {
		return nil, result.Error
	}
	return event, nil
}

// GetByGuestCode tam eşleşme ile arar; bulunamazsa gorm.ErrRecordNotFound döner.
func (r *EventRepository) GetByGuestCode(guestCode string) (*models.Event, error) {
	var event models.Event
	err := r.db.Where("guest_code = ?", guestCode).First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) GetByOwnerSecret(ownerSecret string) (*models.Event, error) {
	var event models.Event
	err := r.db.Where("owner_secret = ?", ownerSecret).First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) Update(event *models.Event) error {
	return r.db.Save(event).Error
}

// Delete etkinliği ve ona bağlı tüm fotoğraf kayıtlarını siler. Cascade
// repository sınırında, tek transaction içinde uygulanır.
func (r *EventRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&models.Photos{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Event{}).Error
	})
}
