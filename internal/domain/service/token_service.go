package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the session claims: the account id under "id" and its role.
type Claims struct {
	UserID uuid.UUID `json:"id"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the bearer tokens sent in Authorization headers.
type TokenService interface {
	GenerateToken(userID uuid.UUID, role string) (string, error)
	// ValidateToken returns the claims of a correctly signed, unexpired token.
	ValidateToken(tokenString string) (*Claims, error)
}
