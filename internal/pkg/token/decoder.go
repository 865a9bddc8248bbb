// internal/pkg/token/decoder.go
package token

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the claim set carried in the payload segment of a bearer
// token: the account's login email (the JWT subject) and its role tag.
type Identity struct {
	Email string
	Role  string
}

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

var parser = jwt.NewParser()

// Decode extracts the identity claims from a bearer token without verifying
// the signature. The backend re-validates the token on every API call; the
// decoded claims only drive the UI and must never act as an authorization
// boundary.
func Decode(raw string) (*Identity, error) {
	var c claims
	if _, _, err := parser.ParseUnverified(raw, &c); err != nil {
		return nil, fmt.Errorf("failed to decode token payload: %w", err)
	}
	if c.Subject == "" {
		return nil, fmt.Errorf("token payload missing subject")
	}
	return &Identity{Email: c.Subject, Role: c.Role}, nil
}
