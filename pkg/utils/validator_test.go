package utils

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const maxSize = 10 * 1024 * 1024

var (
	jpegContent = append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, []byte("jfif-payload")...)
	pngContent  = append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, []byte("png-payload")...)
)

func TestValidateImageFileAcceptsDeclaredTypes(t *testing.T) {
	for _, contentType := range []string{"image/jpeg", "image/jpg", "image/png"} {
		// Bilinen içerik tipinde magic byte'a bakılmaz
		err := ValidateImageFile(bytes.NewReader([]byte("not-an-image")), 12, contentType, maxSize)
		assert.NoError(t, err, contentType)
	}
}

func TestValidateImageFileSniffsJPEG(t *testing.T) {
	err := ValidateImageFile(bytes.NewReader(jpegContent), int64(len(jpegContent)), "application/octet-stream", maxSize)
	assert.NoError(t, err)
}

func TestValidateImageFileSniffsPNG(t *testing.T) {
	err := ValidateImageFile(bytes.NewReader(pngContent), int64(len(pngContent)), "", maxSize)
	assert.NoError(t, err)
}

func TestValidateImageFileRejectsUnknownContent(t *testing.T) {
	content := []byte("GIF89a definitely not allowed")
	err := ValidateImageFile(bytes.NewReader(content), int64(len(content)), "application/octet-stream", maxSize)
	assert.ErrorIs(t, err, ErrInvalidFileType)
	assert.EqualError(t, err, "Invalid file type")
}

func TestValidateImageFileRejectsOversized(t *testing.T) {
	err := ValidateImageFile(bytes.NewReader(jpegContent), maxSize+1, "image/jpeg", maxSize)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "File size exceeds")
}

func TestValidateImageFileRewindsStreamAfterSniff(t *testing.T) {
	reader := bytes.NewReader(jpegContent)

	err := ValidateImageFile(reader, int64(len(jpegContent)), "application/octet-stream", maxSize)
	require.NoError(t, err)

	// Sniff sonrası içerik baştan okunabilir olmalı
	rest, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, jpegContent, rest)
}

func TestValidateImageFileHandlesTinyFiles(t *testing.T) {
	// 12 byte'tan kısa dosyalar sniff sırasında hata üretmemeli
	err := ValidateImageFile(bytes.NewReader([]byte{0xFF, 0xD8}), 2, "application/octet-stream", maxSize)
	assert.ErrorIs(t, err, ErrInvalidFileType)
}
