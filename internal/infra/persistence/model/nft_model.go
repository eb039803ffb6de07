package model

import (
	"time"

	"github.com/google/uuid"
)

// NFTModel mirrors the 'nfts' table. The mint address is the primary key.
type NFTModel struct {
	TokenAddress  string     `gorm:"column:token_address;type:varchar(64);primaryKey"`
	WalletAddress string     `gorm:"type:varchar(64);not null"`
	DesignerID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Username      string     `gorm:"type:varchar(100);not null"`
	ProductID     *uuid.UUID `gorm:"type:uuid;index"`
	Active        bool       `gorm:"not null"`
	ListingState  string     `gorm:"type:varchar(20);not null"`
	ListingSource string     `gorm:"type:varchar(20);not null"`
	SyncedAt      *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (NFTModel) TableName() string {
	return "nfts"
}

// NFTEventModel mirrors the append-only 'nft_events' table.
type NFTEventModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TokenAddress string     `gorm:"column:token_address;type:varchar(64);not null;index"`
	Kind         string     `gorm:"type:varchar(32);not null"`
	FromState    string     `gorm:"type:varchar(20);not null"`
	ToState      string     `gorm:"type:varchar(20);not null"`
	Active       bool       `gorm:"not null"`
	Source       string     `gorm:"type:varchar(20);not null"`
	ActorID      *uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (NFTEventModel) TableName() string {
	return "nft_events"
}
