package jwt

import (
	"errors"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims TokenClaims) string {
	t.Helper()
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestPeekReadsClaimsWithoutKey(t *testing.T) {
	raw := signedToken(t, TokenClaims{
		UserID: "user-1",
		Email:  "alice@example.com",
		Role:   "admin",
	})

	claims, err := Peek(raw)
	if err != nil {
		t.Fatalf("peek: %v", err)
	}
	if claims.UserID != "user-1" || claims.Role != "admin" {
		t.Fatalf("unexpected claims %+v", claims)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("unexpected email %q", claims.Email)
	}
}

func TestPeekRejectsMalformedTokens(t *testing.T) {
	for _, raw := range []string{"", "not-a-token", "a.b", "x.y.z"} {
		if _, err := Peek(raw); !errors.Is(err, ErrTokenMalformed) {
			t.Fatalf("token %q: expected ErrTokenMalformed, got %v", raw, err)
		}
	}
}

func TestExpired(t *testing.T) {
	now := time.Now()

	fresh := TokenClaims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(now.Add(time.Hour)),
		},
	}
	if fresh.Expired(now) {
		t.Fatal("future exp must not report expired")
	}

	stale := TokenClaims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	if !stale.Expired(now) {
		t.Fatal("past exp must report expired")
	}

	var noExp TokenClaims
	if noExp.Expired(now) {
		t.Fatal("missing exp must not report expired")
	}
}
