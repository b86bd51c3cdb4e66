package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the verified contents of a control-API bearer token.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Roles  []string  `json:"roles"`
	jwt.RegisteredClaims
}

// TokenService verifies the bearer tokens presented to the control API.
// Token issuance belongs to the web application; this subsystem only checks.
type TokenService interface {
	// ValidateToken checks the validity of an access token string.
	ValidateToken(tokenString string) (*Claims, error)
}
