package storage

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/sefazor/photobooth-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKeyNamespacedByEvent(t *testing.T) {
	key := ObjectKey("1b4e28ba-2fa1-11d2-883f-0016d3cca427", "My Photo.JPG")

	assert.True(t, strings.HasPrefix(key, "events/1b4e28ba-2fa1-11d2-883f-0016d3cca427/"))
	assert.True(t, strings.HasSuffix(key, ".JPG"))

	// Orijinal dosya adı anahtara sızmaz
	assert.NotContains(t, key, "My Photo")
}

func TestObjectKeyIsRandom(t *testing.T) {
	first := ObjectKey("event-1", "a.jpg")
	second := ObjectKey("event-1", "a.jpg")
	assert.NotEqual(t, first, second)
}

func TestObjectKeyWithoutExtension(t *testing.T) {
	key := ObjectKey("event-1", "camera-capture")
	assert.True(t, strings.HasSuffix(key, ".bin"))
}

func TestURLForDefaultsToAWSPattern(t *testing.T) {
	s := &S3Storage{bucket: "photobooth", region: "eu-central-1"}
	assert.Equal(t,
		"https://photobooth.s3.eu-central-1.amazonaws.com/events/e/x.jpg",
		s.URLFor("events/e/x.jpg"),
	)
}

func TestURLForUsesConfiguredPublicBase(t *testing.T) {
	s := &S3Storage{bucket: "photobooth", region: "auto", publicURL: "https://cdn.example.com/"}
	assert.Equal(t, "https://cdn.example.com/events/e/x.jpg", s.URLFor("events/e/x.jpg"))
}

func TestDownloadBodyOutlivesRequestContext(t *testing.T) {
	// Arşivleme Download döndükten sonra okur; gövde isteğin context'i
	// iptal edildi diye yarıda kesilmemeli
	payload := bytes.Repeat([]byte{0xAB}, 1<<20)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	cfg := &config.Config{}
	cfg.S3.Region = "auto"
	cfg.S3.Bucket = "photos"
	cfg.S3.AccessKeyID = "test"
	cfg.S3.SecretAccessKey = "test"
	cfg.S3.Endpoint = srv.URL

	s, err := NewS3Storage(cfg)
	require.NoError(t, err)

	body, err := s.Download("events/e/big.jpg")
	require.NoError(t, err)
	defer body.Close()

	got, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, len(payload), len(got))
}
