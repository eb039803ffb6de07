package model

import (
	"time"

	"github.com/google/uuid"
)

// CollectionModel mirrors the 'collections' table.
type CollectionModel struct {
	ID                uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name              string      `gorm:"type:varchar(255);not null"`
	CollectionAddress string      `gorm:"column:collection_address;type:varchar(64);not null;index"`
	ImageURL          string      `gorm:"column:image_url;type:text;not null"`
	JSONURL           string      `gorm:"column:json_url;type:text;not null"`
	DesignerID        uuid.UUID   `gorm:"type:uuid;not null;index"`
	DesignerUsername  string      `gorm:"type:varchar(100);not null"`
	ProductIDs        []uuid.UUID `gorm:"column:product_ids;type:jsonb;serializer:json;not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (CollectionModel) TableName() string {
	return "collections"
}
