package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.Issue(42, "admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q, want admin", claims.Role)
	}
	if claims.TokenID == "" {
		t.Error("TokenID is empty")
	}
	if remaining := time.Until(claims.ExpiresAt); remaining < 23*time.Hour {
		t.Errorf("expiry too soon: %v remaining", remaining)
	}
}

func TestIssueWithoutSecret(t *testing.T) {
	svc := NewTokenService("")

	if _, err := svc.Issue(1, "user"); !errors.Is(err, ErrNoSecret) {
		t.Fatalf("err = %v, want ErrNoSecret", err)
	}
}

func TestVerifyExpired(t *testing.T) {
	svc := NewTokenService("test-secret")

	token := signedToken(t, "test-secret", jwt.MapClaims{
		"sub":  float64(1),
		"role": "user",
		"exp":  time.Now().Add(-time.Hour).Unix(),
	})

	if _, err := svc.Verify(token); !errors.Is(err, ErrExpired) {
		t.Fatalf("err = %v, want ErrExpired", err)
	}
}

func TestVerifyMalformed(t *testing.T) {
	svc := NewTokenService("test-secret")

	cases := map[string]string{
		"garbage":      "not.a.token",
		"wrong secret": signedToken(t, "other-secret", jwt.MapClaims{"sub": float64(1), "role": "user"}),
		"missing role": signedToken(t, "test-secret", jwt.MapClaims{"sub": float64(1)}),
		"missing sub":  signedToken(t, "test-secret", jwt.MapClaims{"role": "user"}),
	}

	for name, token := range cases {
		if _, err := svc.Verify(token); !errors.Is(err, ErrMalformed) {
			t.Errorf("%s: err = %v, want ErrMalformed", name, err)
		}
	}
}

func TestVerifyRejectsNonHMAC(t *testing.T) {
	svc := NewTokenService("test-secret")

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":  float64(1),
		"role": "admin",
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}
}

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return token
}
