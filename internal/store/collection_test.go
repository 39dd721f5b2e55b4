// AngelaMos | 2026
// collection_test.go

package store

import (
	"errors"
	"testing"

	"github.com/carterperez-dev/techbuzz-api/internal/core"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid hex id", "665f1f77bcf86cd799439011", false},
		{"empty", "", true},
		{"too short", "abc123", true},
		{"not hex", "zzzzzzzzzzzzzzzzzzzzzzzz", true},
		{"too long", "665f1f77bcf86cd79943901100", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oid, err := ParseID(tt.id)
			if tt.wantErr {
				if !errors.Is(err, core.ErrInvalidInput) {
					t.Fatalf(
						"ParseID(%q) error = %v, want ErrInvalidInput",
						tt.id,
						err,
					)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseID(%q) error = %v", tt.id, err)
			}
			if oid.Hex() != tt.id {
				t.Errorf("round trip = %q, want %q", oid.Hex(), tt.id)
			}
		})
	}
}
