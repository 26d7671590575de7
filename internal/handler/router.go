package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/photobooth-backend/internal/models"
)

// RegisterRoutes uygulamanın tüm endpoint'lerini bağlar. Her path için
// tanımlı olmayan verb'ler 405 döner.
func RegisterRoutes(app *fiber.App, eventHandler *EventHandler, photoHandler *PhotoHandler) {
	app.Post("/create", eventHandler.CreateEvent)

	app.Get("/event/:guestCode", eventHandler.GuestGallery)
	app.Post("/event/:guestCode/upload", photoHandler.UploadPhoto)

	app.Get("/owner/:ownerSecret", eventHandler.OwnerDashboard)
	app.Post("/owner/:ownerSecret/photo/:photoId/delete", photoHandler.DeletePhoto)
	app.Post("/owner/:ownerSecret/photos/bulk-delete", photoHandler.BulkDeletePhotos)
	app.Post("/owner/:ownerSecret/toggle-uploads", eventHandler.ToggleUploads)
	app.Post("/owner/:ownerSecret/download", photoHandler.DownloadArchive)

	// Yanlış verb için 405; doğru verb yukarıda daha önce eşleştiği için
	// buraya düşmez
	app.All("/create", methodNotAllowed)
	app.All("/event/:guestCode/upload", methodNotAllowed)
	app.All("/event/:guestCode", methodNotAllowed)
	app.All("/owner/:ownerSecret/photo/:photoId/delete", methodNotAllowed)
	app.All("/owner/:ownerSecret/photos/bulk-delete", methodNotAllowed)
	app.All("/owner/:ownerSecret/toggle-uploads", methodNotAllowed)
	app.All("/owner/:ownerSecret/download", methodNotAllowed)
	app.All("/owner/:ownerSecret", methodNotAllowed)
}

func methodNotAllowed(c *fiber.Ctx) error {
	return c.Status(fiber.StatusMethodNotAllowed).JSON(models.ErrorResponse("Method not allowed"))
}
