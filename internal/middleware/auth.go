// AngelaMos | 2026
// auth.go

package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/carterperez-dev/techbuzz-api/internal/core"
)

type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*IdentityClaims, error)
}

type IdentityClaims struct {
	Email string
}

// RoleLookup reads the caller's stored role. The gate hits the store on
// every request so role changes take effect on the caller's next request.
type RoleLookup interface {
	RoleByEmail(ctx context.Context, email string) (string, error)
}

func Authenticator(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r)

			if token == "" {
				core.JSONError(
					w,
					core.UnauthorizedError("unauthorized access"),
				)
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil {
				handleAuthError(w, err)
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, UserEmailKey, claims.Email)
			ctx = context.WithValue(ctx, ClaimsKey, claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireStoredRole gates on the persisted role rather than a token claim.
func RequireStoredRole(
	lookup RoleLookup,
	roles ...string,
) func(http.Handler) http.Handler {
	roleSet := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		roleSet[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := GetUserEmail(r.Context())

			if email == "" {
				core.JSONError(
					w,
					core.UnauthorizedError("authentication required"),
				)
				return
			}

			role, err := lookup.RoleByEmail(r.Context(), email)
			if err != nil {
				if errors.Is(err, core.ErrNotFound) {
					core.JSONError(w, core.ForbiddenError("forbidden access"))
					return
				}
				core.InternalServerError(w, err)
				return
			}

			if _, ok := roleSet[role]; !ok {
				core.JSONError(w, core.ForbiddenError("forbidden access"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func ExtractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

func handleAuthError(w http.ResponseWriter, err error) {
	if core.IsAppError(err) {
		core.JSONError(w, err)
		return
	}

	switch {
	case errors.Is(err, core.ErrTokenExpired):
		core.JSONError(w, core.TokenExpiredError())
	default:
		core.JSONError(w, core.TokenInvalidError())
	}
}
