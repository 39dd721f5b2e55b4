// AngelaMos | 2026
// auth_test.go

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/carterperez-dev/techbuzz-api/internal/core"
)

type fakeVerifier struct {
	claims *IdentityClaims
	err    error
}

func (f *fakeVerifier) Verify(
	_ context.Context,
	_ string,
) (*IdentityClaims, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.claims, nil
}

type fakeRoleLookup struct {
	roles map[string]string
}

func (f *fakeRoleLookup) RoleByEmail(
	_ context.Context,
	email string,
) (string, error) {
	role, ok := f.roles[email]
	if !ok {
		return "", core.ErrNotFound
	}
	return role, nil
}

func okHandler(t *testing.T, gotEmail *string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotEmail != nil {
			*gotEmail = GetUserEmail(r.Context())
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticator(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		verifier   *fakeVerifier
		wantStatus int
	}{
		{
			name:       "missing token",
			authHeader: "",
			verifier:   &fakeVerifier{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			authHeader: "Token abc",
			verifier:   &fakeVerifier{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			authHeader: "Bearer expired",
			verifier:   &fakeVerifier{err: core.ErrTokenExpired},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer junk",
			verifier:   &fakeVerifier{err: core.ErrTokenInvalid},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "valid token",
			authHeader: "Bearer good",
			verifier: &fakeVerifier{
				claims: &IdentityClaims{Email: "user@example.com"},
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotEmail string
			handler := Authenticator(tt.verifier)(okHandler(t, &gotEmail))

			req := httptest.NewRequest(http.MethodGet, "/products", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK &&
				gotEmail != "user@example.com" {
				t.Errorf("context email = %q", gotEmail)
			}
		})
	}
}

func TestRequireStoredRole(t *testing.T) {
	lookup := &fakeRoleLookup{roles: map[string]string{
		"admin@example.com": "admin",
		"mod@example.com":   "moderator",
		"plain@example.com": "",
	}}

	tests := []struct {
		name       string
		email      string
		roles      []string
		wantStatus int
	}{
		{
			name:       "admin passes admin gate",
			email:      "admin@example.com",
			roles:      []string{"admin"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "moderator passes moderator gate",
			email:      "mod@example.com",
			roles:      []string{"moderator"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "admin blocked by moderator gate",
			email:      "admin@example.com",
			roles:      []string{"moderator"},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "plain user blocked",
			email:      "plain@example.com",
			roles:      []string{"admin"},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "unknown user blocked",
			email:      "ghost@example.com",
			roles:      []string{"admin"},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "unauthenticated request blocked",
			email:      "",
			roles:      []string{"admin"},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := RequireStoredRole(lookup, tt.roles...)(
				okHandler(t, nil),
			)

			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			if tt.email != "" {
				ctx := context.WithValue(
					req.Context(),
					UserEmailKey,
					tt.email,
				)
				req = req.WithContext(ctx)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

// Role changes must bind on the very next request: the gate may not cache
// lookups between calls.
func TestRequireStoredRoleReadsFresh(t *testing.T) {
	lookup := &fakeRoleLookup{roles: map[string]string{
		"user@example.com": "",
	}}
	handler := RequireStoredRole(lookup, "admin")(okHandler(t, nil))

	send := func() int {
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		ctx := context.WithValue(
			req.Context(),
			UserEmailKey,
			"user@example.com",
		)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req.WithContext(ctx))
		return rec.Code
	}

	if got := send(); got != http.StatusForbidden {
		t.Fatalf("before promotion: status = %d, want 403", got)
	}

	lookup.roles["user@example.com"] = "admin"

	if got := send(); got != http.StatusOK {
		t.Fatalf("after promotion: status = %d, want 200", got)
	}
}
