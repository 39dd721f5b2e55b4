// AngelaMos | 2026
// jwt.go

package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"

	"github.com/carterperez-dev/techbuzz-api/internal/config"
	"github.com/carterperez-dev/techbuzz-api/internal/core"
	"github.com/carterperez-dev/techbuzz-api/internal/middleware"
)

// TokenManager signs and verifies identity tokens with a single shared
// secret. Tokens are stateless grants; there is no revocation path, only
// expiry.
type TokenManager struct {
	key    jwk.Key
	config config.JWTConfig
}

func NewTokenManager(cfg config.JWTConfig) (*TokenManager, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("token manager: signing secret is required")
	}

	key, err := jwk.Import([]byte(cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("import signing key: %w", err)
	}

	if setErr := key.Set(jwk.AlgorithmKey, jwa.HS256()); setErr != nil {
		return nil, fmt.Errorf("set algorithm: %w", setErr)
	}

	return &TokenManager{
		key:    key,
		config: cfg,
	}, nil
}

func (m *TokenManager) Issue(email string) (string, error) {
	now := time.Now()

	token, err := jwt.NewBuilder().
		JwtID(uuid.New().String()).
		Issuer(m.config.Issuer).
		Audience([]string{m.config.Audience}).
		Subject(email).
		IssuedAt(now).
		Expiration(now.Add(m.config.Expire)).
		NotBefore(now).
		Claim("email", email).
		Build()
	if err != nil {
		return "", fmt.Errorf("build token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), m.key))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return string(signed), nil
}

func (m *TokenManager) Verify(
	ctx context.Context,
	tokenString string,
) (*middleware.IdentityClaims, error) {
	token, err := jwt.Parse(
		[]byte(tokenString),
		jwt.WithKey(jwa.HS256(), m.key),
		jwt.WithValidate(true),
		jwt.WithIssuer(m.config.Issuer),
		jwt.WithAudience(m.config.Audience),
	)
	if err != nil {
		if isTokenExpiredError(err) {
			return nil, fmt.Errorf("verify token: %w", core.ErrTokenExpired)
		}
		return nil, fmt.Errorf("verify token: %w", core.ErrTokenInvalid)
	}

	var email string
	if err := token.Get("email", &email); err != nil || email == "" {
		subject, ok := token.Subject()
		if !ok || subject == "" {
			return nil, fmt.Errorf(
				"verify token: missing email claim: %w",
				core.ErrTokenInvalid,
			)
		}
		email = subject
	}

	return &middleware.IdentityClaims{Email: email}, nil
}

func isTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "exp") &&
		strings.Contains(errStr, "not satisfied")
}
