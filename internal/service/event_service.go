package service

import (
	"github.com/sefazor/photobooth-backend/internal/models"
	"github.com/sefazor/photobooth-backend/internal/repository"
)

type EventService struct {
	eventRepo *repository.EventRepository
}

func NewEventService(eventRepo *repository.EventRepository) *EventService {
	return &EventService{
		eventRepo: eventRepo,
	}
}

// CreateEvent yeni bir etkinlik oluşturur. Guest code, owner secret ve
// varsayılan son kullanma tarihi model hook'unda üretilir.
func (s *EventService) CreateEvent(req models.CreateEventRequest) (*models.Event, error) {
	event := &models.Event{
		Name:           req.EventName,
		OwnerEmail:     req.OwnerEmail,
		IsActive:       true,
		UploadsEnabled: true,
	}

	return s.eventRepo.Create(event)
}

func (s *EventService) GetByGuestCode(guestCode string) (*models.Event, error) {
	return s.eventRepo.GetByGuestCode(guestCode)
}

func (s *EventService) GetByOwnerSecret(ownerSecret string) (*models.Event, error) {
	return s.eventRepo.GetByOwnerSecret(ownerSecret)
}

// ToggleUploads misafir yüklemelerini açıp kapatır. Tek satırlık
// read-modify-write; eşzamanlı istekler arasında son yazan kazanır.
func (s *EventService) ToggleUploads(ownerSecret string) (*models.Event, error) {
	event, err := s.eventRepo.GetByOwnerSecret(ownerSecret)
	if err != nil {
		return nil, err
	}

	event.UploadsEnabled = !event.UploadsEnabled
	if err := s.eventRepo.Update(event); err != nil {
		return nil, err
	}

	return event, nil
}
