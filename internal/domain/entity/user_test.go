package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUser_AddWallet_Idempotent(t *testing.T) {
	u := &User{SolanaWallets: []string{}}

	assert.True(t, u.AddWallet("W1"))
	assert.False(t, u.AddWallet("W1"))
	assert.Equal(t, []string{"W1"}, u.SolanaWallets)
}

func TestUser_RemoveWallet(t *testing.T) {
	u := &User{SolanaWallets: []string{"W1", "W2"}}

	assert.False(t, u.RemoveWallet("W3"))
	assert.Equal(t, []string{"W1", "W2"}, u.SolanaWallets)

	assert.True(t, u.RemoveWallet("W1"))
	assert.Equal(t, []string{"W2"}, u.SolanaWallets)
}

func TestUser_CollectionRefs(t *testing.T) {
	u := &User{}
	c1, c2 := uuid.New(), uuid.New()

	u.AddCollectionRef(CollectionRef{CollectionID: c1, CollectionAddress: "A1"})
	u.AddCollectionRef(CollectionRef{CollectionID: c2, CollectionAddress: "A2"})
	u.RemoveCollectionRef(c1)

	assert.Equal(t, []CollectionRef{{CollectionID: c2, CollectionAddress: "A2"}}, u.CollectionAddresses)
}

func TestRoleFromRequest(t *testing.T) {
	assert.Equal(t, RoleDesigner, RoleFromRequest("designer"))
	assert.Equal(t, RoleRegular, RoleFromRequest(""))
	assert.Equal(t, RoleRegular, RoleFromRequest("admin"))
}
