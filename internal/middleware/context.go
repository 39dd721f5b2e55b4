// AngelaMos | 2026
// context.go

package middleware

import (
	"context"
)

type contextKey string

const (
	UserEmailKey contextKey = "user_email"
	ClaimsKey    contextKey = "jwt_claims"
	RequestIDKey contextKey = "request_id"
)

func GetUserEmail(ctx context.Context) string {
	if email, ok := ctx.Value(UserEmailKey).(string); ok {
		return email
	}
	return ""
}

func GetClaims(ctx context.Context) *IdentityClaims {
	if claims, ok := ctx.Value(ClaimsKey).(*IdentityClaims); ok {
		return claims
	}
	return nil
}

func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

func IsAuthenticated(ctx context.Context) bool {
	return GetUserEmail(ctx) != ""
}
