// AngelaMos | 2026
// service.go

package coupon

import (
	"context"
	"errors"
	"fmt"

	"github.com/carterperez-dev/techbuzz-api/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(
	ctx context.Context,
	req *CreateCouponRequest,
) (string, error) {
	const op = "coupon.Service.Create"

	id, err := s.repo.Insert(ctx, &Coupon{
		CouponCode:  req.CouponCode,
		Amount:      req.Amount,
		Description: req.Description,
		ExpiryDate:  req.ExpiryDate,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Coupon, error) {
	const op = "coupon.Service.Get"

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}

func (s *Service) List(ctx context.Context) ([]Coupon, error) {
	const op = "coupon.Service.List"

	coupons, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return coupons, nil
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	req *UpdateCouponRequest,
) error {
	const op = "coupon.Service.Update"

	fields := make(map[string]any)
	if req.CouponCode != nil {
		fields["coupon_code"] = *req.CouponCode
	}
	if req.Amount != nil {
		fields["amount"] = *req.Amount
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.ExpiryDate != nil {
		fields["expiryDate"] = *req.ExpiryDate
	}
	if len(fields) == 0 {
		return fmt.Errorf("%s: %w", op, core.ErrInvalidInput)
	}

	result, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, core.ErrNotFound)
	}

	return nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	const op = "coupon.Service.Delete"

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if deleted == 0 {
		return fmt.Errorf("%s: %w", op, core.ErrNotFound)
	}

	return nil
}

// DiscountPercent resolves a checkout code to its discount percentage.
// Unknown codes are not an error at checkout time; they simply yield
// zero discount.
func (s *Service) DiscountPercent(
	ctx context.Context,
	code string,
) (int, error) {
	const op = "coupon.Service.DiscountPercent"

	if code == "" {
		return 0, nil
	}

	c, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return c.Amount, nil
}
