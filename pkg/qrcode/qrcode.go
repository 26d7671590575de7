package qrcode

import (
	"encoding/base64"
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QRService, QR kod oluşturma işlemlerini sağlayan servis
type QRService struct {
	size int
}

// NewQRService, yeni bir QRService oluşturur
func NewQRService() *QRService {
	return &QRService{size: 256}
}

// GenerateQRCode, verilen URL için PNG formatında QR kod bayt dizisi oluşturur
func (s *QRService) GenerateQRCode(url string) ([]byte, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code PNG: %w", err)
	}

	return png, nil
}

// GenerateDataURI, QR kodu inline gösterim için data URI olarak döner
func (s *QRService) GenerateDataURI(url string) (string, error) {
	png, err := s.GenerateQRCode(url)
	if err != nil {
		return "", err
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
