// AngelaMos | 2026
// jwt_test.go

package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/carterperez-dev/techbuzz-api/internal/config"
	"github.com/carterperez-dev/techbuzz-api/internal/core"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:   "test-signing-secret-at-least-32-bytes",
		Expire:   168 * time.Hour,
		Issuer:   "techbuzz-api",
		Audience: "techbuzz-client",
	}
}

func TestNewTokenManagerRequiresSecret(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Secret = ""

	if _, err := NewTokenManager(cfg); err == nil {
		t.Fatal("NewTokenManager() accepted an empty secret")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tm, err := NewTokenManager(testJWTConfig())
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}

	signed, err := tm.Issue("user@example.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if signed == "" {
		t.Fatal("Issue() returned empty token")
	}

	claims, err := tm.Verify(context.Background(), signed)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.Email != "user@example.com" {
		t.Errorf("Email = %q, want user@example.com", claims.Email)
	}
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	tm, err := NewTokenManager(testJWTConfig())
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}

	otherCfg := testJWTConfig()
	otherCfg.Secret = "a-completely-different-signing-secret"
	other, err := NewTokenManager(otherCfg)
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}

	signed, err := other.Issue("user@example.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := tm.Verify(
		context.Background(),
		signed,
	); !errors.Is(err, core.ErrTokenInvalid) {
		t.Fatalf("Verify() error = %v, want ErrTokenInvalid", err)
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Expire = -time.Hour

	tm, err := NewTokenManager(cfg)
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}

	signed, err := tm.Issue("user@example.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := tm.Verify(
		context.Background(),
		signed,
	); !errors.Is(err, core.ErrTokenExpired) {
		t.Fatalf("Verify() error = %v, want ErrTokenExpired", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	tm, err := NewTokenManager(testJWTConfig())
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}

	if _, err := tm.Verify(
		context.Background(),
		"not.a.token",
	); !errors.Is(err, core.ErrTokenInvalid) {
		t.Fatalf("Verify() error = %v, want ErrTokenInvalid", err)
	}
}
