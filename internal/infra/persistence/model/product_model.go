package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. CollectionID carries no foreign key so that
// products survive the deletion of their collection.
type ProductModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name              string    `gorm:"type:varchar(255);not null"`
	Gender            string    `gorm:"type:varchar(50);not null"`
	Category          string    `gorm:"type:varchar(100);not null;index"`
	Colors            []string  `gorm:"column:colors;type:jsonb;serializer:json;not null"`
	Description       string    `gorm:"type:text"`
	Price             float64   `gorm:"type:double precision;not null"`
	CollectionID      uuid.UUID `gorm:"type:uuid;not null;index"`
	CollectionAddress string    `gorm:"column:collection_address;type:varchar(64)"`
	ImageURL1         string    `gorm:"column:image_url1;type:text;not null"`
	ImageURL2         string    `gorm:"column:image_url2;type:text"`
	ImageURL3         string    `gorm:"column:image_url3;type:text"`
	ImageURL4         string    `gorm:"column:image_url4;type:text"`
	ImageURL5         string    `gorm:"column:image_url5;type:text"`
	JSONURL           string    `gorm:"column:json_url;type:text"`
	VideoURL          string    `gorm:"column:video_url;type:text"`
	DesignerID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Username          string    `gorm:"type:varchar(100);not null;index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
