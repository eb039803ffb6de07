package model

import (
	"time"

	"github.com/google/uuid"
)

// SizeModel mirrors the 'sizes' table.
type SizeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Label     string    `gorm:"type:varchar(50);not null"`
	Quantity  int       `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SizeModel) TableName() string {
	return "sizes"
}
