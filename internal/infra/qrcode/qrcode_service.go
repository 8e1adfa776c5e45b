package qrcode

import (
	"encoding/json"
	"net/url"
	"strings"

	"bootwatcher/config"
	"bootwatcher/internal/domain/entity"
	"bootwatcher/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256
	lotType     = "lot"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// LotQRData is the JSON payload encoded when no base URL is configured
type LotQRData struct {
	Type string `json:"type"`
	Name string `json:"name"`
	ID   string `json:"id,omitempty"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.QRCodeConfig) service.QRCodeService {
	if cfg == nil {
		cfg = &config.QRCodeConfig{}
	}

	var level qrcode.RecoveryLevel
	switch cfg.ErrorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	size := cfg.Size
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// GenerateLotQR generates a PNG QR code pointing at the lot's panel
func (s *qrcodeService) GenerateLotQR(lot entity.LotRef) ([]byte, error) {
	if strings.TrimSpace(lot.Name) == "" {
		return nil, errors.New("lot name is required")
	}

	content, err := s.encode(lot)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

func (s *qrcodeService) encode(lot entity.LotRef) (string, error) {
	if s.baseURL != "" {
		query := url.Values{}
		query.Set("lot", lot.Name)
		if lot.ID != "" {
			query.Set("id", lot.ID)
		}

		return s.baseURL + "/?" + query.Encode(), nil
	}

	jsonData, err := json.Marshal(LotQRData{Type: lotType, Name: lot.Name, ID: lot.ID})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal QR code data")
	}

	return string(jsonData), nil
}

// ParseLotQR accepts either payload form and returns the referenced lot
func (s *qrcodeService) ParseLotQR(qrData string) (entity.LotRef, error) {
	qrData = strings.TrimSpace(qrData)

	if strings.HasPrefix(qrData, "{") {
		var data LotQRData
		if err := json.Unmarshal([]byte(qrData), &data); err != nil {
			return entity.LotRef{}, errors.Wrap(err, "failed to unmarshal QR code data")
		}
		if data.Type != lotType {
			return entity.LotRef{}, errors.Errorf("invalid QR code type: %s", data.Type)
		}
		if data.Name == "" {
			return entity.LotRef{}, errors.New("QR code has no lot name")
		}

		return entity.LotRef{ID: data.ID, Name: data.Name}, nil
	}

	parsed, err := url.Parse(qrData)
	if err != nil {
		return entity.LotRef{}, errors.Wrap(err, "failed to parse QR code URL")
	}

	name := parsed.Query().Get("lot")
	if name == "" {
		return entity.LotRef{}, errors.New("QR code has no lot name")
	}

	return entity.LotRef{ID: parsed.Query().Get("id"), Name: name}, nil
}
