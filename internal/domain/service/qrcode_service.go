package service

import "github.com/google/uuid"

// QRCodeService renders the share codes printed on product tags.
type QRCodeService interface {
	// ProductShareURL is the public page a product's code points at.
	ProductShareURL(productID uuid.UUID) string
	// GenerateProductQR encodes ProductShareURL as a PNG.
	GenerateProductQR(productID uuid.UUID) ([]byte, error)
}
