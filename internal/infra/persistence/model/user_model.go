// Package model holds the GORM persistence models. They are exported so the gorm/gen tool can read them.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ShippingAddress is stored as a jsonb document on the user row.
type ShippingAddress struct {
	Street     string `json:"street"`
	Apartment  string `json:"apartment"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// CollectionRef is one entry of a designer's collection index.
type CollectionRef struct {
	CollectionID      uuid.UUID `json:"collectionId"`
	CollectionAddress string    `json:"collectionAddress"`
}

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID                  uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Username            string           `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email               string           `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash        string           `gorm:"type:varchar(255);not null"`
	SolanaWallets       []string         `gorm:"column:solana_wallets;type:jsonb;serializer:json;not null"`
	Role                string           `gorm:"type:varchar(20);not null;index"`
	ShippingAddress     *ShippingAddress `gorm:"type:jsonb;serializer:json"`
	CollectionAddresses []CollectionRef  `gorm:"type:jsonb;serializer:json;not null"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
