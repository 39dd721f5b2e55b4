// AngelaMos | 2026
// service_test.go

package coupon

import (
	"context"
	"errors"
	"testing"

	"github.com/carterperez-dev/techbuzz-api/internal/core"
	"github.com/carterperez-dev/techbuzz-api/internal/store"
)

type fakeRepository struct {
	byCode  map[string]*Coupon
	matched int64
	deleted int64
	patches map[string]map[string]any
}

func (f *fakeRepository) Insert(_ context.Context, _ *Coupon) (string, error) {
	return "665f1f77bcf86cd799439011", nil
}

func (f *fakeRepository) GetByID(_ context.Context, _ string) (*Coupon, error) {
	return nil, core.ErrNotFound
}

func (f *fakeRepository) GetByCode(
	_ context.Context,
	code string,
) (*Coupon, error) {
	c, ok := f.byCode[code]
	if !ok {
		return nil, core.ErrNotFound
	}
	return c, nil
}

func (f *fakeRepository) List(_ context.Context) ([]Coupon, error) {
	return nil, nil
}

func (f *fakeRepository) Update(
	_ context.Context,
	id string,
	fields map[string]any,
) (*store.UpdateResult, error) {
	if f.patches == nil {
		f.patches = make(map[string]map[string]any)
	}
	f.patches[id] = fields
	return &store.UpdateResult{MatchedCount: f.matched}, nil
}

func (f *fakeRepository) Delete(_ context.Context, _ string) (int64, error) {
	return f.deleted, nil
}

func TestServiceDiscountPercent(t *testing.T) {
	svc := NewService(&fakeRepository{byCode: map[string]*Coupon{
		"SAVE10": {CouponCode: "SAVE10", Amount: 10},
	}})

	tests := []struct {
		name string
		code string
		want int
	}{
		{"known code", "SAVE10", 10},
		{"unknown code yields zero", "NOPE", 0},
		{"empty code yields zero", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.DiscountPercent(context.Background(), tt.code)
			if err != nil {
				t.Fatalf("DiscountPercent() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DiscountPercent() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestServiceUpdate(t *testing.T) {
	t.Run("empty patch rejected", func(t *testing.T) {
		svc := NewService(&fakeRepository{matched: 1})

		err := svc.Update(
			context.Background(),
			"665f1f77bcf86cd799439011",
			&UpdateCouponRequest{},
		)
		if !errors.Is(err, core.ErrInvalidInput) {
			t.Fatalf("Update() error = %v, want ErrInvalidInput", err)
		}
	})

	t.Run("missing coupon reports not found", func(t *testing.T) {
		svc := NewService(&fakeRepository{matched: 0})

		amount := 25
		err := svc.Update(
			context.Background(),
			"665f1f77bcf86cd799439011",
			&UpdateCouponRequest{Amount: &amount},
		)
		if !errors.Is(err, core.ErrNotFound) {
			t.Fatalf("Update() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("patch maps to storage fields", func(t *testing.T) {
		repo := &fakeRepository{matched: 1}
		svc := NewService(repo)

		code := "NEWCODE"
		amount := 25
		err := svc.Update(
			context.Background(),
			"665f1f77bcf86cd799439011",
			&UpdateCouponRequest{CouponCode: &code, Amount: &amount},
		)
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}

		fields := repo.patches["665f1f77bcf86cd799439011"]
		if fields["coupon_code"] != "NEWCODE" || fields["amount"] != 25 {
			t.Errorf("patch = %v", fields)
		}
	})
}

func TestServiceDeleteMissing(t *testing.T) {
	svc := NewService(&fakeRepository{deleted: 0})

	err := svc.Delete(context.Background(), "665f1f77bcf86cd799439011")
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("Delete() error = %v, want ErrNotFound", err)
	}
}
