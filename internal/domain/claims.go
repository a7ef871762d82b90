package domain

import "github.com/golang-jwt/jwt/v5"

// Claims do token de chamador. Subject identifica o cliente (agente ou integração).
type Claims struct {
	Scope string `json:"scope,omitempty"`
	jwt.RegisteredClaims
}
