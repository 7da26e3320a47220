package models

import "github.com/golang-jwt/jwt/v5"

// JWTClaims carries the authenticated operator identity.
type JWTClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
