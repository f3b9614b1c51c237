package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	const secret = "test-secret"
	at, err := NewAccessToken(secret, 7, "Staff", 15)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}

	tok, err := jwt.Parse(at.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !tok.Valid {
		t.Fatal("token reported invalid")
	}
	claims := tok.Claims.(jwt.MapClaims)
	if claims["sub"].(float64) != 7 {
		t.Fatalf("sub = %v, want 7", claims["sub"])
	}
	if claims["role"] != "Staff" {
		t.Fatalf("role = %v, want Staff", claims["role"])
	}
	if !at.Exp.After(time.Now()) {
		t.Fatalf("expiry %v is not in the future", at.Exp)
	}
}

func TestAccessTokenWrongSecret(t *testing.T) {
	at, err := NewAccessToken("secret-a", 7, "Customer", 15)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	if _, err := jwt.Parse(at.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("secret-b"), nil
	}); err == nil {
		t.Fatal("token verified with the wrong secret")
	}
}

func TestRefreshTokenHashing(t *testing.T) {
	r1, err := NewRefreshToken(30)
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	r2, err := NewRefreshToken(30)
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	if r1.Raw == r2.Raw {
		t.Fatal("two refresh tokens are identical")
	}
	if HashRefreshRaw(r1.Raw) == HashRefreshRaw(r2.Raw) {
		t.Fatal("distinct tokens hash to the same digest")
	}
	if HashRefreshRaw(r1.Raw) != HashRefreshRaw(r1.Raw) {
		t.Fatal("hash is not deterministic")
	}
}
