package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"atelier/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		size int
		base string
	}{
		{"defaults", &config.Config{}, defaultSize, defaultShareBaseURL},
		{"configured", &config.Config{
			QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H"},
			Share:  &config.ShareConfig{BaseURL: "https://shop.example.com/"},
		}, 128, "https://shop.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, ok := NewQRCodeService(tt.cfg).(*qrcodeService)
			require.True(t, ok)
			assert.Equal(t, tt.size, svc.size)
			assert.Equal(t, tt.base, svc.shareBaseURL)
		})
	}
}

func TestQRCodeService_ProductShareURL(t *testing.T) {
	svc := newQRCodeService(256, "M", "https://shop.example.com/")
	productID := uuid.MustParse("7c9e6679-7425-40de-944b-e07fc1f90ae7")

	assert.Equal(t, "https://shop.example.com/discover/products/7c9e6679-7425-40de-944b-e07fc1f90ae7", svc.ProductShareURL(productID))
}

func TestQRCodeService_GenerateProductQR(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		svc := newQRCodeService(size, "Q", defaultShareBaseURL)

		qrBytes, err := svc.GenerateProductQR(uuid.New())
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(qrBytes))
		require.NoError(t, err)
		assert.Equal(t, size, img.Bounds().Dx())
	}
}

func TestNewQRCodeService_RecoveryLevel(t *testing.T) {
	assert.Equal(t, qrcode.Highest, newQRCodeService(64, "h", "").level)
	assert.Equal(t, qrcode.Low, newQRCodeService(64, "L", "").level)
	assert.Equal(t, qrcode.Medium, newQRCodeService(64, "X", "").level)
}
