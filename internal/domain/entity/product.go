package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProductImageSlots is the number of image URLs a product carries.
const ProductImageSlots = 5

// Product is a garment listed inside a collection.
type Product struct {
	ID                uuid.UUID
	Name              string
	Gender            string
	Category          string
	Colors            []string
	Description       string
	Price             float64 // May legitimately be 0.
	CollectionID      uuid.UUID
	CollectionAddress string // Copied from the collection at creation.
	ImageURLs         [ProductImageSlots]string
	JSONURL           string
	VideoURL          string
	DesignerID        uuid.UUID
	Username          string // Designer username, copied at creation.
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ProductSummary augments a product with the NFTs minted for it.
type ProductSummary struct {
	Product              *Product
	NFTCount             int64
	FirstNFTTokenAddress *string // Earliest created NFT, nil when none.
}
