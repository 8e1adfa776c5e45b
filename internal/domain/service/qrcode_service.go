package service

import "bootwatcher/internal/domain/entity"

// QRCodeService defines the interface for lot share QR codes
type QRCodeService interface {
	// GenerateLotQR generates a PNG QR code that opens the lot's panel
	GenerateLotQR(lot entity.LotRef) ([]byte, error)

	// ParseLotQR parses QR code data and returns the referenced lot
	ParseLotQR(qrData string) (entity.LotRef, error)
}
