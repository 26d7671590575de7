package repository

import (
	"github.com/sefazor/photobooth-backend/internal/models"
	"gorm.io/gorm"
)

type PhotoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) *PhotoRepository {
	return &PhotoRepository{
		db: db,
	}
}

func (r *PhotoRepository) Create(photo *models.Photos) error {
	return r.db.Create(photo).Error
}

func (r *PhotoRepository) GetByID(id string) (*models.Photos, error) {
	var photo models.Photos
	err := r.db.Where("id = ?", id).First(&photo).Error
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

// GetByEventID etkinliğin fotoğraflarını en yeniden eskiye doğru döner.
func (r *PhotoRepository) GetByEventID(eventID string) ([]models.Photos, error) {
	var photos []models.Photos
	err := r.db.
		Where("event_id = ?", eventID).
		Order("uploaded_at DESC").
		Find(&photos).Error
	return photos, err
}

// GetByEventAndID fotoğrafı yalnızca verilen etkinliğe aitse döner.
// Başka bir etkinliğin fotoğrafı için gorm.ErrRecordNotFound döner.
func (r *PhotoRepository) GetByEventAndID(eventID, photoID string) (*models.Photos, error) {
	var photo models.Photos
	err := r.db.Where("event_id = ? AND id = ?", eventID, photoID).First(&photo).Error
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

// GetByEventAndIDs id listesini etkinlik ile sınırlar; etkinlik dışı id'ler
// sessizce atlanır.
func (r *PhotoRepository) GetByEventAndIDs(eventID string, photoIDs []string) ([]models.Photos, error) {
	var photos []models.Photos
	err := r.db.
		Where("event_id = ? AND id IN ?", eventID, photoIDs).
		Order("uploaded_at DESC").
		Find(&photos).Error
	return photos, err
}

func (r *PhotoRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Photos{}).Error
}

func (r *PhotoRepository) CountByEventID(eventID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Photos{}).Where("event_id = ?", eventID).Count(&count).Error
	return count, err
}
