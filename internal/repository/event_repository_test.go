package repository

import (
	"testing"
	"time"

	"github.com/sefazor/photobooth-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Event{}, &models.Photos{}))
	return db
}

func createEvent(t *testing.T, repo *EventRepository, name string) *models.Event {
	t.Helper()

	event, err := repo.Create(&models.Event{
		Name:           name,
		IsActive:       true,
		UploadsEnabled: true,
	})
	require.NoError(t, err)
	return event
}

func TestCreateGeneratesCapabilityCodes(t *testing.T) {
	repo := NewEventRepository(newTestDB(t))

	event := createEvent(t, repo, "Test Party")

	assert.Len(t, event.GuestCode, 12)
	assert.Len(t, event.OwnerSecret, 32)
	assert.NotEqual(t, event.GuestCode, event.OwnerSecret)
	assert.NotEmpty(t, event.ID)
}

func TestCreateCodesAreUniqueAcrossEvents(t *testing.T) {
	repo := NewEventRepository(newTestDB(t))

	first := createEvent(t, repo, "Event 1")
	second := createEvent(t, repo, "Event 2")

	assert.NotEqual(t, first.GuestCode, second.GuestCode)
	assert.NotEqual(t, first.OwnerSecret, second.OwnerSecret)
}

func TestCreateDefaultsExpiryToThirtyDays(t *testing.T) {
	repo := NewEventRepository(newTestDB(t))

	event := createEvent(t, repo, "Test Party")

	expected := time.Now().Add(models.DefaultEventLifetime)
	assert.WithinDuration(t, expected, event.ExpiresAt, 5*time.Second)
}

func TestCreateKeepsExplicitExpiry(t *testing.T) {
	repo := NewEventRepository(newTestDB(t))

	expiry := time.Now().Add(48 * time.Hour).Truncate(time.Second)
	event, err := repo.Create(&models.Event{Name: "Short Event", ExpiresAt: expiry})
	require.NoError(t, err)

	assert.WithinDuration(t, expiry, event.ExpiresAt, time.Second)
}

func TestGetByGuestCode(t *testing.T) {
	repo := NewEventRepository(newTestDB(t))
	event := createEvent(t, repo, "Test Party")

	found, err := repo.GetByGuestCode(event.GuestCode)
	require.NoError(t, err)
	assert.Equal(t, event.ID, found.ID)

	_, err = repo.GetByGuestCode("nope")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetByOwnerSecret(t *testing.T) {
	repo := NewEventRepository(newTestDB(t))
	event := createEvent(t, repo, "Test Party")

	found, err := repo.GetByOwnerSecret(event.OwnerSecret)
	require.NoError(t, err)
	assert.Equal(t, event.ID, found.ID)

	// Guest code owner lookup'ta asla eşleşmez
	_, err = repo.GetByOwnerSecret(event.GuestCode)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteCascadesToPhotos(t *testing.T) {
	db := newTestDB(t)
	eventRepo := NewEventRepository(db)
	photoRepo := NewPhotoRepository(db)

	event := createEvent(t, eventRepo, "Test Party")
	other := createEvent(t, eventRepo, "Other Party")

	require.NoError(t, photoRepo.Create(&models.Photos{
		EventID:          event.ID,
		StorageKey:       "events/x/a.jpg",
		PublicURL:        "https://cdn.example.com/a.jpg",
		OriginalFilename: "a.jpg",
		FileSize:         100,
		ContentType:      "image/jpeg",
	}))
	require.NoError(t, photoRepo.Create(&models.Photos{
		EventID:          other.ID,
		StorageKey:       "events/y/b.jpg",
		PublicURL:        "https://cdn.example.com/b.jpg",
		OriginalFilename: "b.jpg",
		FileSize:         100,
		ContentType:      "image/jpeg",
	}))

	require.NoError(t, eventRepo.Delete(event.ID))

	count, err := photoRepo.CountByEventID(event.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	// Diğer etkinliğin fotoğrafı yerinde durur
	count, err = photoRepo.CountByEventID(other.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
