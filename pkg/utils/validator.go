package utils

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{
		validate: validator.New(),
	}
}

func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// İçerik tipi üzerinden doğrudan kabul edilen formatlar
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

var (
	jpegSignature = []byte{0xFF, 0xD8, 0xFF}
	pngSignature  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
)

// ErrInvalidFileType, içerik tipi ve magic byte kontrolünün ikisi de
// tutmadığında döner.
var ErrInvalidFileType = errors.New("Invalid file type")

// ValidateImageFile, yüklenen dosyanın boyutunu ve tipini kontrol eder.
// Kameradan çekilip JS File() ile sarılan yüklemeler content type olarak
// 'application/octet-stream' gelebiliyor; bu durumda ilk 12 byte'a bakılır.
// Sniff sonrası stream başa sarılır, içerik aynen tüketilebilir kalır.
func ValidateImageFile(file io.ReadSeeker, size int64, contentType string, maxSize int64) error {
	if size > maxSize {
		return fmt.Errorf("File size exceeds %d MB", maxSize/(1024*1024))
	}

	if allowedImageTypes[contentType] {
		return nil
	}

	header := make([]byte, 12)
	n, err := file.Read(header)
	if err != nil && err != io.EOF {
		return err
	}
	header = header[:n]

	// Stream'i başa sar, yoksa yükleme boş içerik alır
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return err
	}

	if bytes.HasPrefix(header, jpegSignature) {
		return nil
	}
	if bytes.HasPrefix(header, pngSignature) {
		return nil
	}

	return ErrInvalidFileType
}
