package service

import (
	"encoding/json"
	"fmt"

	"loyalty-rewards/internal/core/domain"

	qrcode "github.com/skip2/go-qrcode"
)

// QR image bounds in pixels.
const (
	DefaultQRSize = 200
	minQRSize     = 64
	maxQRSize     = 1024
)

// PNGQRService implements ports.QRService.
type PNGQRService struct {
	level qrcode.RecoveryLevel
}

func NewPNGQRService() *PNGQRService {
	return &PNGQRService{level: qrcode.Medium}
}

// Render encodes payload as JSON and returns a square PNG. A size of zero
// uses DefaultQRSize; other sizes are clamped to [64, 1024].
func (s *PNGQRService) Render(payload domain.QRPayload, size int) ([]byte, error) {
	if payload.UserID == "" {
		return nil, fmt.Errorf("qr payload: missing user id")
	}
	content, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("qr payload: %w", err)
	}

	switch {
	case size == 0:
		size = DefaultQRSize
	case size < minQRSize:
		size = minQRSize
	case size > maxQRSize:
		size = maxQRSize
	}

	png, err := qrcode.Encode(string(content), s.level, size)
	if err != nil {
		return nil, fmt.Errorf("encoding qr: %w", err)
	}
	return png, nil
}
