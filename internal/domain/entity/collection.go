package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Collection groups a designer's products under one on-chain collection.
type Collection struct {
	ID                uuid.UUID
	Name              string
	CollectionAddress string // On-chain collection address.
	ImageURL          string
	JSONURL           string
	DesignerID        uuid.UUID // Owner, immutable after creation.
	DesignerUsername  string
	ProductIDs        []uuid.UUID // Index of products whose CollectionID is this collection.
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsOwnedBy reports whether the user owns the collection.
func (c *Collection) IsOwnedBy(userID uuid.UUID) bool {
	return c.DesignerID == userID
}

// AddProduct appends the product to the index.
func (c *Collection) AddProduct(productID uuid.UUID) {
	c.ProductIDs = append(c.ProductIDs, productID)
}

// RemoveProduct pulls the product from the index.
func (c *Collection) RemoveProduct(productID uuid.UUID) {
	c.ProductIDs = slices.DeleteFunc(c.ProductIDs, func(id uuid.UUID) bool { return id == productID })
}
