package auth

import (
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/clippy-oss/homie/storefront-realtime/internal/domain"
)

func signed(t *testing.T, c jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return tok
}

func TestParseTokenReadsClaims(t *testing.T) {
	tok := signed(t, jwt.MapClaims{"user_id": "u-42", "role": "admin", "name": "Grace"})

	ac, err := ParseToken(tok)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if ac.UserID != "u-42" || ac.Role != domain.RoleAdmin || ac.UserName != "Grace" || ac.Token != tok {
		t.Fatalf("unexpected auth context: %+v", ac)
	}
}

func TestParseTokenFallsBackToSubject(t *testing.T) {
	tok := signed(t, jwt.MapClaims{"sub": "u-7", "role": "customer"})

	ac, err := ParseToken(tok)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if ac.UserID != "u-7" {
		t.Fatalf("UserID = %q, want u-7", ac.UserID)
	}
}

func TestResolveOverridesAndOpaqueTokens(t *testing.T) {
	tok := signed(t, jwt.MapClaims{"user_id": "u-1", "role": "customer"})

	ac, err := Resolve(tok, "", "", "admin")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if ac.Role != domain.RoleAdmin || ac.UserID != "u-1" {
		t.Fatalf("unexpected override result: %+v", ac)
	}

	ac, err = Resolve("opaque-token", "u-9", "", "")
	if err != nil {
		t.Fatalf("Resolve opaque: %v", err)
	}
	if ac.UserID != "u-9" || ac.Role != domain.RoleCustomer {
		t.Fatalf("unexpected opaque result: %+v", ac)
	}

	if _, err := Resolve("opaque-token", "", "", ""); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if _, err := Resolve("", "u-1", "", "admin"); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated for empty token, got %v", err)
	}
}
