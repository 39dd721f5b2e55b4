// AngelaMos | 2026
// service.go

package payment

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/carterperez-dev/techbuzz-api/internal/core"
)

// CouponResolver resolves a checkout code to a whole-percent discount.
// Unknown codes yield zero.
type CouponResolver interface {
	DiscountPercent(ctx context.Context, code string) (int, error)
}

type Service struct {
	repo     Repository
	coupons  CouponResolver
	provider IntentCreator
	currency string
}

func NewService(
	repo Repository,
	coupons CouponResolver,
	provider IntentCreator,
	currency string,
) *Service {
	return &Service{
		repo:     repo,
		coupons:  coupons,
		provider: provider,
		currency: currency,
	}
}

// Quote prices a checkout and opens a payment intent for the
// discounted amount. The discount is computed in the currency's minor
// unit and floored, so the customer is never overcharged by rounding.
func (s *Service) Quote(
	ctx context.Context,
	req *QuoteRequest,
) (*QuoteResponse, error) {
	const op = "payment.Service.Quote"

	percent, err := s.coupons.DiscountPercent(ctx, req.CouponCode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	amount := int64(math.Round(req.Price * 100))
	discount := amount * int64(percent) / 100
	charge := amount - discount

	secret, err := s.provider.CreateIntent(ctx, charge, s.currency)
	if err != nil {
		return nil, fmt.Errorf(
			"%s: %w",
			op,
			core.UpstreamError("payment provider unavailable"),
		)
	}

	return &QuoteResponse{
		ClientSecret:     secret,
		DiscountPercent:  percent,
		DiscountedAmount: float64(charge) / 100,
	}, nil
}

func (s *Service) Record(
	ctx context.Context,
	req *RecordPaymentRequest,
) (string, error) {
	const op = "payment.Service.Record"

	id, err := s.repo.Insert(ctx, &Payment{
		Email:         req.Email,
		Price:         req.Price,
		TransactionID: req.TransactionID,
		Status:        req.Status,
		CreatedAt:     time.Now().UTC(),
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Service) History(
	ctx context.Context,
	email string,
) ([]Payment, error) {
	const op = "payment.Service.History"

	payments, err := s.repo.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return payments, nil
}

func (s *Service) Latest(
	ctx context.Context,
	email string,
) (*Payment, error) {
	const op = "payment.Service.Latest"

	p, err := s.repo.LatestByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}
