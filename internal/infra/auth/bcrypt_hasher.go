// Package auth implements the password and session token ports.
package auth

import (
	"atelier/config"
	"atelier/internal/domain/service"
	"atelier/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher uses the configured bcrypt cost, falling back to
// bcrypt.DefaultCost when it is unset or outside bcrypt's accepted range.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	h := &bcryptHasher{cost: bcrypt.DefaultCost}
	if cfg.Auth == nil {
		return h
	}
	if c := cfg.Auth.BcryptCost; c >= bcrypt.MinCost && c <= bcrypt.MaxCost {
		h.cost = c
	}

	return h
}

// Hash salts and hashes password. bcrypt refuses passwords longer than 72 bytes.
func (h *bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt hash")
	}

	return string(hash), nil
}

func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
