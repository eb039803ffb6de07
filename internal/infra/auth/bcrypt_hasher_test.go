package auth

import (
	"strings"
	"testing"

	"atelier/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	hash, err := hasher.Hash("p")
	require.NoError(t, err)
	assert.NotEqual(t, "p", hash)

	assert.True(t, hasher.Check("p", hash))
	assert.False(t, hasher.Check("wrong", hash))
}

func TestBcryptHasher_UniqueSalt(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	hash1, err := hasher.Hash("same-password")
	require.NoError(t, err)
	hash2, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2)
}

func TestBcryptHasher_CostFromConfig(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.Config
		wantCost int
	}{
		{name: "configured cost", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 5}}, wantCost: 5},
		{name: "missing auth block", cfg: &config.Config{}, wantCost: bcrypt.DefaultCost},
		{name: "out of range cost", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}, wantCost: bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := NewBcryptHasher(tt.cfg).(*bcryptHasher)
			assert.Equal(t, tt.wantCost, hasher.cost)
		})
	}
}

func TestBcryptHasher_CheckInvalidHash(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	assert.False(t, hasher.Check("password", "not-a-bcrypt-hash"))
}

func TestBcryptHasher_RejectsOverlongPassword(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	_, err := hasher.Hash(strings.Repeat("x", 73))

	assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
}
