package qrcode

import (
	"testing"

	"bootwatcher/config"
	"bootwatcher/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPNG(t *testing.T, data []byte) {
	t.Helper()

	require.GreaterOrEqual(t, len(data), 4)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, data[:4])
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.QRCodeConfig
	}{
		{"Nil config", nil},
		{"Low error correction", &config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "L"}},
		{"Medium error correction", &config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}},
		{"High error correction", &config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "Q"}},
		{"Highest error correction", &config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "H"}},
		{"Default error correction", &config.QRCodeConfig{Size: 0, ErrorCorrectionLevel: "invalid"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.cfg)
			require.NotNil(t, svc)

			png, err := svc.GenerateLotQR(entity.LotRef{Name: "Civic Center Garage"})
			require.NoError(t, err)
			assertPNG(t, png)
		})
	}
}

func TestQRCodeService_GenerateLotQR_RequiresName(t *testing.T) {
	svc := NewQRCodeService(&config.QRCodeConfig{Size: 128})

	_, err := svc.GenerateLotQR(entity.LotRef{ID: "abc", Name: "  "})
	assert.Error(t, err)
}

func TestQRCodeService_EncodeParseRoundTrip(t *testing.T) {
	lot := entity.LotRef{ID: "ChIJ123", Name: "Lot A & B"}

	tests := []struct {
		name    string
		baseURL string
		prefix  string
	}{
		{"URL payload", "https://bootwatcher.com/", "https://bootwatcher.com/?"},
		{"JSON payload", "", `{"type":"lot"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(&config.QRCodeConfig{BaseURL: tt.baseURL}).(*qrcodeService)

			content, err := svc.encode(lot)
			require.NoError(t, err)
			assert.Contains(t, content, tt.prefix)

			parsed, err := svc.ParseLotQR(content)
			require.NoError(t, err)
			assert.Equal(t, lot, parsed)
		})
	}
}

func TestQRCodeService_ParseLotQR_Invalid(t *testing.T) {
	svc := NewQRCodeService(nil)

	tests := []struct {
		name string
		data string
	}{
		{"Invalid JSON", "{invalid"},
		{"Wrong type", `{"type":"subscription","name":"Lot A"}`},
		{"Missing name", `{"type":"lot"}`},
		{"URL without lot", "https://bootwatcher.com/?id=1"},
		{"Empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseLotQR(tt.data)
			assert.Error(t, err)
		})
	}
}
