// Package models - JwtClaims thuộc domain auth.
package models

import "github.com/golang-jwt/jwt/v5"

// JwtClaims chứa data được mã hóa trong JWT access token.
type JwtClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}
