// Package auth derives the session viewer from a bearer token.
package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/clippy-oss/homie/storefront-realtime/internal/domain"
)

type claims struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// ParseToken reads the viewer identity from the token's claims. The signature is not
// verified here; the backend does that on every request and on the push auth frame.
func ParseToken(token string) (domain.AuthContext, error) {
	var c claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &c); err != nil {
		return domain.AuthContext{}, fmt.Errorf("parse token: %w", err)
	}
	userID := c.UserID
	if userID == "" {
		userID = c.Subject
	}
	return domain.AuthContext{
		Token:    token,
		UserID:   userID,
		UserName: c.Name,
		Role:     domain.Role(c.Role),
	}, nil
}

// Resolve merges explicit overrides over whatever the token carries.
// An opaque (non-JWT) token is accepted when the overrides identify the viewer.
func Resolve(token, userID, userName, role string) (domain.AuthContext, error) {
	if token == "" {
		return domain.AuthContext{}, domain.ErrNotAuthenticated
	}
	ac, err := ParseToken(token)
	if err != nil {
		ac = domain.AuthContext{Token: token}
	}
	if userID != "" {
		ac.UserID = userID
	}
	if userName != "" {
		ac.UserName = userName
	}
	if role != "" {
		ac.Role = domain.Role(role)
	}
	if ac.Role == "" {
		ac.Role = domain.RoleCustomer
	}
	if err := ac.Validate(); err != nil {
		return domain.AuthContext{}, err
	}
	return ac, nil
}
