// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// User is an account on the marketplace. Designers own collections, products and NFTs;
// regular users browse and buy.
type User struct {
	ID                  uuid.UUID        // The Global Unique Identifier (GUID) for the user.
	Username            string           // Unique login name.
	Email               string           // Unique contact email.
	PasswordHash        string           // bcrypt hash of the password.
	SolanaWallets       []string         // Wallet addresses linked to the account, in insertion order.
	Role                Role             // Fixed at registration.
	ShippingAddress     *ShippingAddress // Optional default delivery address.
	CollectionAddresses []CollectionRef  // Index of the collections this designer owns.
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// CollectionRef pairs a collection id with its on-chain address.
type CollectionRef struct {
	CollectionID      uuid.UUID
	CollectionAddress string
}

// IsDesigner reports whether the user registered as a designer.
func (u *User) IsDesigner() bool {
	return u.Role == RoleDesigner
}

// HasWallet reports whether the wallet address is linked to the user.
func (u *User) HasWallet(address string) bool {
	return slices.Contains(u.SolanaWallets, address)
}

// AddWallet links the address unless it is already present and reports whether the list changed.
func (u *User) AddWallet(address string) bool {
	if u.HasWallet(address) {
		return false
	}
	u.SolanaWallets = append(u.SolanaWallets, address)

	return true
}

// RemoveWallet drops every occurrence of the address and reports whether the list changed.
func (u *User) RemoveWallet(address string) bool {
	before := len(u.SolanaWallets)
	u.SolanaWallets = slices.DeleteFunc(u.SolanaWallets, func(w string) bool { return w == address })

	return len(u.SolanaWallets) != before
}

// AddCollectionRef appends the collection to the designer's index.
func (u *User) AddCollectionRef(ref CollectionRef) {
	u.CollectionAddresses = append(u.CollectionAddresses, ref)
}

// RemoveCollectionRef pulls every index entry for the collection.
func (u *User) RemoveCollectionRef(collectionID uuid.UUID) {
	u.CollectionAddresses = slices.DeleteFunc(u.CollectionAddresses, func(ref CollectionRef) bool {
		return ref.CollectionID == collectionID
	})
}

// ShippingAddress is the structured default delivery address of a user.
type ShippingAddress struct {
	Street     string
	Apartment  string
	City       string
	State      string
	PostalCode string
	Country    string
}
