// AngelaMos | 2026
// service_test.go

package product

import (
	"context"
	"errors"
	"testing"

	"github.com/carterperez-dev/techbuzz-api/internal/core"
	"github.com/carterperez-dev/techbuzz-api/internal/store"
)

type fakeRepository struct {
	inserted    []*Product
	patches     map[string]map[string]any
	matched     int64
	deleted     int64
	votedID     string
	voteResult  *Product
	listPublic  []Product
	listTotal   int64
	lastParams  ListParams
	updateErr   error
	estimateVal int64
}

func (f *fakeRepository) Insert(_ context.Context, p *Product) (string, error) {
	f.inserted = append(f.inserted, p)
	return "665f1f77bcf86cd799439011", nil
}

func (f *fakeRepository) GetByID(_ context.Context, _ string) (*Product, error) {
	return nil, core.ErrNotFound
}

func (f *fakeRepository) ListAll(_ context.Context) ([]Product, error) {
	return nil, nil
}

func (f *fakeRepository) ListPublic(
	_ context.Context,
	params ListParams,
) ([]Product, int64, error) {
	f.lastParams = params
	return f.listPublic, f.listTotal, nil
}

func (f *fakeRepository) ListByOwner(
	_ context.Context,
	_ string,
) ([]Product, error) {
	return nil, nil
}

func (f *fakeRepository) ListFeatured(
	_ context.Context,
	_ bool,
) ([]Product, error) {
	return nil, nil
}

func (f *fakeRepository) ListReported(_ context.Context) ([]Product, error) {
	return nil, nil
}

func (f *fakeRepository) Update(
	_ context.Context,
	id string,
	fields map[string]any,
) (*store.UpdateResult, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.patches == nil {
		f.patches = make(map[string]map[string]any)
	}
	f.patches[id] = fields
	return &store.UpdateResult{MatchedCount: f.matched}, nil
}

func (f *fakeRepository) Delete(_ context.Context, _ string) (int64, error) {
	return f.deleted, nil
}

func (f *fakeRepository) Vote(_ context.Context, id string) (*Product, error) {
	f.votedID = id
	if f.voteResult == nil {
		return nil, core.ErrNotFound
	}
	return f.voteResult, nil
}

func (f *fakeRepository) EstimatedCount(_ context.Context) (int64, error) {
	return f.estimateVal, nil
}

func strPtr(s string) *string { return &s }

func TestServiceCreateDefaults(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewService(repo)

	id, err := svc.Create(context.Background(), CreateProductRequest{
		Name: "Widget",
		Tags: "tools",
		Owner: Owner{
			Name:  "Maker",
			Email: "maker@example.com",
		},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if id == "" {
		t.Error("Create() returned empty id")
	}

	if len(repo.inserted) != 1 {
		t.Fatalf("inserted %d products, want 1", len(repo.inserted))
	}
	got := repo.inserted[0]
	if got.Status != StatusPending {
		t.Errorf("Status = %q, want %q", got.Status, StatusPending)
	}
	if got.Votes != 0 {
		t.Errorf("Votes = %d, want 0", got.Votes)
	}
	if got.Timestamp.IsZero() {
		t.Error("Timestamp not set")
	}
}

func TestServiceUpdate(t *testing.T) {
	tests := []struct {
		name    string
		req     UpdateProductRequest
		matched int64
		wantErr error
		wantKey string
	}{
		{
			name:    "patch applies",
			req:     UpdateProductRequest{Name: strPtr("New Name")},
			matched: 1,
			wantKey: "name",
		},
		{
			name:    "missing id reports not found",
			req:     UpdateProductRequest{Name: strPtr("New Name")},
			matched: 0,
			wantErr: core.ErrNotFound,
		},
		{
			name:    "empty patch rejected",
			req:     UpdateProductRequest{},
			matched: 1,
			wantErr: core.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{matched: tt.matched}
			svc := NewService(repo)

			_, err := svc.Update(
				context.Background(),
				"665f1f77bcf86cd799439011",
				tt.req,
			)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Update() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Update() error = %v", err)
			}

			fields := repo.patches["665f1f77bcf86cd799439011"]
			if _, ok := fields[tt.wantKey]; !ok {
				t.Errorf("patch missing %q field: %v", tt.wantKey, fields)
			}
		})
	}
}

func TestServiceUpdateNeverCreates(t *testing.T) {
	repo := &fakeRepository{matched: 0}
	svc := NewService(repo)

	_, err := svc.Update(
		context.Background(),
		"665f1f77bcf86cd799439011",
		UpdateProductRequest{Name: strPtr("Ghost")},
	)
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("Update() error = %v, want ErrNotFound", err)
	}
	if len(repo.inserted) != 0 {
		t.Errorf("update of missing id inserted %d products", len(repo.inserted))
	}
}

func TestServiceDeleteMissing(t *testing.T) {
	svc := NewService(&fakeRepository{deleted: 0})

	err := svc.Delete(context.Background(), "665f1f77bcf86cd799439011")
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("Delete() error = %v, want ErrNotFound", err)
	}
}

func TestServiceVote(t *testing.T) {
	repo := &fakeRepository{voteResult: &Product{Votes: 6}}
	svc := NewService(repo)

	p, err := svc.Vote(context.Background(), "665f1f77bcf86cd799439011")
	if err != nil {
		t.Fatalf("Vote() error = %v", err)
	}
	if p.Votes != 6 {
		t.Errorf("Votes = %d, want 6", p.Votes)
	}
	if repo.votedID != "665f1f77bcf86cd799439011" {
		t.Errorf("voted id = %q", repo.votedID)
	}
}

func TestListParamsNormalize(t *testing.T) {
	tests := []struct {
		name     string
		in       ListParams
		wantPage int
		wantSize int
	}{
		{"defaults", ListParams{}, 1, 20},
		{"negative page", ListParams{Page: -3, Size: 10}, 1, 10},
		{"size capped", ListParams{Page: 2, Size: 500}, 2, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in
			got.Normalize()
			if got.Page != tt.wantPage || got.Size != tt.wantSize {
				t.Errorf(
					"Normalize() = page %d size %d, want page %d size %d",
					got.Page, got.Size, tt.wantPage, tt.wantSize,
				)
			}
		})
	}
}
