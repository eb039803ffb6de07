// Package qrcode renders product share links as PNG QR codes.
package qrcode

import (
	"net/url"
	"strings"

	"atelier/config"
	"atelier/internal/domain/service"
	"atelier/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize         = 256
	defaultShareBaseURL = "http://localhost:3000"
	productPagePath     = "/discover/products/"
)

// recoveryLevels maps the configured L/M/Q/H letters onto go-qrcode's levels.
// go-qrcode names Q "High" and H "Highest".
var recoveryLevels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

type qrcodeService struct {
	size         int
	level        qrcode.RecoveryLevel
	shareBaseURL string
}

func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level, baseURL := defaultSize, "", defaultShareBaseURL
	if qc := cfg.QRCode; qc != nil {
		if qc.Size > 0 {
			size = qc.Size
		}
		level = qc.ErrorCorrectionLevel
	}
	if cfg.Share != nil && cfg.Share.BaseURL != "" {
		baseURL = cfg.Share.BaseURL
	}

	return newQRCodeService(size, level, baseURL)
}

// newQRCodeService falls back to medium recovery for unknown levels.
func newQRCodeService(size int, level, shareBaseURL string) *qrcodeService {
	recovery, ok := recoveryLevels[strings.ToUpper(level)]
	if !ok {
		recovery = qrcode.Medium
	}

	return &qrcodeService{
		size:         size,
		level:        recovery,
		shareBaseURL: strings.TrimRight(shareBaseURL, "/"),
	}
}

func (s *qrcodeService) ProductShareURL(productID uuid.UUID) string {
	return s.shareBaseURL + productPagePath + url.PathEscape(productID.String())
}

func (s *qrcodeService) GenerateProductQR(productID uuid.UUID) ([]byte, error) {
	png, err := qrcode.Encode(s.ProductShareURL(productID), s.level, s.size)
	if err != nil {
		return nil, errors.Wrapf(err, "encode qr code for product %s", productID)
	}

	return png, nil
}
