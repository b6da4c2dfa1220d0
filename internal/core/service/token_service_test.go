package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dropshipping/storefront-api/internal/core/domain"
)

func TestTokenService_IssueVerify(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("user_1", domain.RoleCustomer, "alice@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.Subject != "user_1" {
		t.Fatalf("subject = %q", claims.Subject)
	}
	if claims.Role != domain.RoleCustomer {
		t.Fatalf("role = %q", claims.Role)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("email = %q", claims.Email)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	past := time.Now().Add(-2 * time.Hour)
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		Role:  domain.RoleCustomer,
		Email: "old@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user_1",
			IssuedAt:  jwt.NewNumericDate(past),
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
		},
	})
	signed, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Verify(signed); err != domain.ErrInvalidSession {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
}

func TestTokenService_Tampered(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("user_1", domain.RoleCustomer, "alice@example.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := svc.Verify(token + "x"); err != domain.ErrInvalidSession {
		t.Fatalf("expected ErrInvalidSession for tampered token, got %v", err)
	}

	other := NewTokenService("other-secret", time.Hour)
	if _, err := other.Verify(token); err != domain.ErrInvalidSession {
		t.Fatalf("expected ErrInvalidSession for wrong secret, got %v", err)
	}

	if _, err := svc.Verify("not-a-token"); err != domain.ErrInvalidSession {
		t.Fatalf("expected ErrInvalidSession for malformed token, got %v", err)
	}
}

func TestTokenService_RejectsUnsignedAlg(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, SessionClaims{
		Role: domain.RoleSuperAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user_1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Verify(signed); err != domain.ErrInvalidSession {
		t.Fatalf("expected ErrInvalidSession for alg=none, got %v", err)
	}
}
