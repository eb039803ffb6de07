package entity

import (
	"time"

	"github.com/google/uuid"
)

// Size is the stock of one size label for a product.
type Size struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	Label     string
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
