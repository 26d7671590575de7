package service

import (
	"archive/zip"
	"io"
	"mime/multipart"
	"path"
	"time"

	"github.com/sefazor/photobooth-backend/internal/models"
	"github.com/sefazor/photobooth-backend/internal/repository"
	"github.com/sefazor/photobooth-backend/pkg/storage"
	"github.com/sefazor/photobooth-backend/pkg/utils"
	"go.uber.org/zap"
)

// InvalidUploadError validator red sebebini taşır; handler bunu 400 olarak
// döner, diğer yükleme hataları 500'dür.
type InvalidUploadError struct {
	Reason string
}

func (e *InvalidUploadError) Error() string {
	return e.Reason
}

type PhotoService struct {
	photoRepo     *repository.PhotoRepository
	store         storage.ObjectStorage
	maxUploadSize int64
	logger        *zap.Logger
}

func NewPhotoService(
	photoRepo *repository.PhotoRepository,
	store storage.ObjectStorage,
	maxUploadSize int64,
	logger *zap.Logger,
) *PhotoService {
	return &PhotoService{
		photoRepo:     photoRepo,
		store:         store,
		maxUploadSize: maxUploadSize,
		logger:        logger,
	}
}

// UploadPhoto misafir yüklemesini doğrular, blob store'a yazar ve kaydını
// oluşturur. DB kaydı başarısız olursa yüklenen obje geri silinir.
func (s *PhotoService) UploadPhoto(event *models.Event, file *multipart.FileHeader) (*models.Photos, error) {
	contentType := file.Header.Get("Content-Type")

	s.logger.Info("upload received",
		zap.String("event_id", event.ID),
		zap.String("filename", file.Filename),
		zap.Int64("size", file.Size),
		zap.String("content_type", contentType),
	)

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	if err := utils.ValidateImageFile(src, file.Size, contentType, s.maxUploadSize); err != nil {
		s.logger.Warn("upload rejected",
			zap.String("event_id", event.ID),
			zap.String("filename", file.Filename),
			zap.Error(err),
		)
		return nil, &InvalidUploadError{Reason: err.Error()}
	}

	key := storage.ObjectKey(event.ID, file.Filename)
	url, err := s.store.Upload(key, src, contentType)
	if err != nil {
		return nil, err
	}

	photo := &models.Photos{
		EventID:          event.ID,
		StorageKey:       key,
		PublicURL:        url,
		OriginalFilename: file.Filename,
		FileSize:         file.Size,
		ContentType:      contentType,
		UploadedAt:       time.Now(),
	}

	if err := s.photoRepo.Create(photo); err != nil {
		// Cleanup: kayıt yoksa obje de kalmasın
		if delErr := s.store.Delete(key); delErr != nil {
			s.logger.Warn("orphan cleanup failed", zap.String("key", key), zap.Error(delErr))
		}
		return nil, err
	}

	return photo, nil
}

func (s *PhotoService) GetEventPhotos(eventID string) ([]models.Photos, error) {
	return s.photoRepo.GetByEventID(eventID)
}

func (s *PhotoService) CountEventPhotos(eventID string) (int64, error) {
	return s.photoRepo.CountByEventID(eventID)
}

// DeletePhoto fotoğrafı siler. Fotoğraf verilen etkinliğe ait değilse
// gorm.ErrRecordNotFound döner. Blob store silme hatası kaydın silinmesini
// engellemez; sadece loglanır.
func (s *PhotoService) DeletePhoto(event *models.Event, photoID string) error {
	photo, err := s.photoRepo.GetByEventAndID(event.ID, photoID)
	if err != nil {
		return err
	}

	s.deleteBlob(photo)

	return s.photoRepo.Delete(photo.ID)
}

// BulkDeletePhotos id listesindeki fotoğrafları siler; etkinliğe ait olmayan
// id'ler sessizce atlanır. Silinen kayıt sayısını döner.
func (s *PhotoService) BulkDeletePhotos(event *models.Event, photoIDs []string) (int, error) {
	photos, err := s.photoRepo.GetByEventAndIDs(event.ID, photoIDs)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for i := range photos {
		s.deleteBlob(&photos[i])

		if err := s.photoRepo.Delete(photos[i].ID); err != nil {
			s.logger.Error("photo record delete failed",
				zap.String("photo_id", photos[i].ID),
				zap.Error(err),
			)
			continue
		}
		deleted++
	}

	return deleted, nil
}

// WriteArchive etkinliğin fotoğraflarını zip olarak w'ye yazar. photoIDs boşsa
// tüm fotoğraflar paketlenir. Getirilemeyen fotoğraflar atlanır, arşivi
// bozmaz.
func (s *PhotoService) WriteArchive(event *models.Event, photoIDs []string, w io.Writer) error {
	var photos []models.Photos
	var err error

	if len(photoIDs) > 0 {
		photos, err = s.photoRepo.GetByEventAndIDs(event.ID, photoIDs)
	} else {
		photos, err = s.photoRepo.GetByEventID(event.ID)
	}
	if err != nil {
		return err
	}

	zw := zip.NewWriter(w)

	for i := range photos {
		if err := s.addToArchive(zw, &photos[i]); err != nil {
			s.logger.Warn("photo skipped in archive",
				zap.String("photo_id", photos[i].ID),
				zap.String("key", photos[i].StorageKey),
				zap.Error(err),
			)
		}
	}

	return zw.Close()
}

func (s *PhotoService) addToArchive(zw *zip.Writer, photo *models.Photos) error {
	body, err := s.store.Download(photo.StorageKey)
	if err != nil {
		return err
	}
	defer body.Close()

	entry, err := zw.Create(path.Base(photo.StorageKey))
	if err != nil {
		return err
	}

	_, err = io.Copy(entry, body)
	return err
}

// deleteBlob blob store silmesini best-effort yapar; hata yutulur ve loglanır.
func (s *PhotoService) deleteBlob(photo *models.Photos) {
	if err := s.store.Delete(photo.StorageKey); err != nil {
		s.logger.Warn("blob delete failed",
			zap.String("photo_id", photo.ID),
			zap.String("key", photo.StorageKey),
			zap.Error(err),
		)
	}
}
