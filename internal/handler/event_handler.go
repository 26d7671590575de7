package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/photobooth-backend/internal/config"
	"github.com/sefazor/photobooth-backend/internal/models"
	"github.com/sefazor/photobooth-backend/internal/service"
	"github.com/sefazor/photobooth-backend/pkg/email"
	"github.com/sefazor/photobooth-backend/pkg/qrcode"
	"github.com/sefazor/photobooth-backend/pkg/utils"
	"gorm.io/gorm"
)

type EventHandler struct {
	eventService *service.EventService
	photoService *service.PhotoService
	emailService *email.EmailService
	qrService    *qrcode.QRService
	validator    *utils.Validator
	cfg          *config.Config
}

func NewEventHandler(
	eventService *service.EventService,
	photoService *service.PhotoService,
	emailService *email.EmailService,
	qrService *qrcode.QRService,
	validator *utils.Validator,
	cfg *config.Config,
) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		photoService: photoService,
		emailService: emailService,
		qrService:    qrService,
		validator:    validator,
		cfg:          cfg,
	}
}

func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var req models.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	req.EventName = strings.TrimSpace(req.EventName)
	req.OwnerEmail = strings.TrimSpace(req.OwnerEmail)

	if req.EventName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Event name is required"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	event, err := h.eventService.CreateEvent(req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to create event"))
	}

	guestURL := h.guestURL(event.GuestCode)
	ownerURL := h.ownerURL(event.OwnerSecret)

	qrCode, err := h.qrService.GenerateDataURI(guestURL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to generate QR code"))
	}

	// Sahip e-postası verilmişse yönetim linkini gönder; sonuç yanıtı etkilemez
	if event.OwnerEmail != "" {
		go h.emailService.SendOwnerLink(event.OwnerEmail, event.Name, ownerURL, guestURL)
	}

	return c.JSON(models.CreateEventResponse{
		Success:   true,
		GuestURL:  guestURL,
		OwnerURL:  ownerURL,
		QRCode:    qrCode,
		EventName: event.Name,
		GuestCode: event.GuestCode,
	})
}

// GuestGallery misafir linkindeki galeri görünümüdür.
func (h *EventHandler) GuestGallery(c *fiber.Ctx) error {
	event, err := h.eventService.GetByGuestCode(c.Params("guestCode"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Event not found"))
	}

	photos, err := h.photoService.GetEventPhotos(event.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to load photos"))
	}

	return c.JSON(models.GalleryResponse{
		Success:        true,
		EventName:      event.Name,
		GuestCode:      event.GuestCode,
		UploadsEnabled: event.UploadsEnabled,
		ExpiresAt:      event.ExpiresAt,
		Photos:         toPhotoResponses(photos),
	})
}

// OwnerDashboard sahibin yönetim görünümüdür; fotoğraf sayısını da içerir.
func (h *EventHandler) OwnerDashboard(c *fiber.Ctx) error {
	event, err := h.eventService.GetByOwnerSecret(c.Params("ownerSecret"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Event not found"))
	}

	photos, err := h.photoService.GetEventPhotos(event.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to load photos"))
	}

	return c.JSON(models.DashboardResponse{
		Success:        true,
		EventName:      event.Name,
		GuestCode:      event.GuestCode,
		UploadsEnabled: event.UploadsEnabled,
		IsActive:       event.IsActive,
		ExpiresAt:      event.ExpiresAt,
		PhotoCount:     len(photos),
		Photos:         toPhotoResponses(photos),
	})
}

func (h *EventHandler) ToggleUploads(c *fiber.Ctx) error {
	event, err := h.eventService.ToggleUploads(c.Params("ownerSecret"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Event not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to update event"))
	}

	return c.JSON(models.ToggleUploadsResponse{
		Success:        true,
		UploadsEnabled: event.UploadsEnabled,
	})
}

func (h *EventHandler) guestURL(guestCode string) string {
	return fmt.Sprintf("%s/event/%s/", strings.TrimSuffix(h.cfg.PublicBaseURL, "/"), guestCode)
}

func (h *EventHandler) ownerURL(ownerSecret string) string {
	return fmt.Sprintf("%s/owner/%s/", strings.TrimSuffix(h.cfg.PublicBaseURL, "/"), ownerSecret)
}

func toPhotoResponses(photos []models.Photos) []models.PhotoResponse {
	responses := make([]models.PhotoResponse, 0, len(photos))
	for _, photo := range photos {
		responses = append(responses, models.PhotoResponse{
			ID:               photo.ID,
			EventID:          photo.EventID,
			PublicURL:        photo.PublicURL,
			OriginalFilename: photo.OriginalFilename,
			FileSize:         photo.FileSize,
			ContentType:      photo.ContentType,
			UploadedAt:       photo.UploadedAt,
		})
	}
	return responses
}
