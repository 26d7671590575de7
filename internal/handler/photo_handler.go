package handler

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/photobooth-backend/internal/models"
	"github.com/sefazor/photobooth-backend/internal/service"
	"gorm.io/gorm"
)

type PhotoHandler struct {
	photoService *service.PhotoService
	eventService *service.EventService
}

func NewPhotoHandler(photoService *service.PhotoService, eventService *service.EventService) *PhotoHandler {
	return &PhotoHandler{
		photoService: photoService,
		eventService: eventService,
	}
}

func (h *PhotoHandler) UploadPhoto(c *fiber.Ctx) error {
	event, err := h.eventService.GetByGuestCode(c.Params("guestCode"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Event not found"))
	}

	if !event.UploadsEnabled {
		return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("Uploads disabled"))
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("No photo provided"))
	}

	photo, err := h.photoService.UploadPhoto(event, file)
	if err != nil {
		var invalid *service.InvalidUploadError
		if errors.As(err, &invalid) {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(invalid.Reason))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Upload failed"))
	}

	return c.JSON(models.UploadPhotoResponse{
		Success:  true,
		PhotoID:  photo.ID,
		PhotoURL: photo.PublicURL,
	})
}

func (h *PhotoHandler) DeletePhoto(c *fiber.Ctx) error {
	event, err := h.eventService.GetByOwnerSecret(c.Params("ownerSecret"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Event not found"))
	}

	if err := h.photoService.DeletePhoto(event, c.Params("photoId")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Photo not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to delete photo"))
	}

	return c.JSON(models.SuccessResponse("Photo deleted successfully"))
}

func (h *PhotoHandler) BulkDeletePhotos(c *fiber.Ctx) error {
	event, err := h.eventService.GetByOwnerSecret(c.Params("ownerSecret"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Event not found"))
	}

	var req models.BulkDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if len(req.PhotoIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("No photo IDs provided"))
	}

	deleted, err := h.photoService.BulkDeletePhotos(event, req.PhotoIDs)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to delete photos"))
	}

	return c.JSON(models.BulkDeleteResponse{
		Success: true,
		Deleted: deleted,
	})
}

// DownloadArchive etkinliğin fotoğraflarını tek zip olarak indirir.
// Body'deki photo_ids ile alt küme seçilebilir; boş ya da bozuk body tümü
// anlamına gelir.
func (h *PhotoHandler) DownloadArchive(c *fiber.Ctx) error {
	event, err := h.eventService.GetByOwnerSecret(c.Params("ownerSecret"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Event not found"))
	}

	var req models.DownloadRequest
	// Body opsiyonel; parse edilemezse tüm fotoğraflar paketlenir
	_ = c.BodyParser(&req)

	var buf bytes.Buffer
	if err := h.photoService.WriteArchive(event, req.PhotoIDs, &buf); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to build archive"))
	}

	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s_photos.zip"`, event.Name))
	return c.Send(buf.Bytes())
}
