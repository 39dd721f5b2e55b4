// AngelaMos | 2026
// stats.go

package stats

import (
	"context"
	"fmt"
)

// Counter reports an approximate document count for one collection.
// Estimated counts read collection metadata instead of scanning, which
// is what a dashboard tile needs.
type Counter interface {
	EstimatedCount(ctx context.Context) (int64, error)
}

type Snapshot struct {
	Users    int64 `json:"users"`
	Products int64 `json:"products"`
	Reviews  int64 `json:"reviews"`
}

type Service struct {
	users    Counter
	products Counter
	reviews  Counter
}

func NewService(users, products, reviews Counter) *Service {
	return &Service{users: users, products: products, reviews: reviews}
}

func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	const op = "stats.Service.Snapshot"

	users, err := s.users.EstimatedCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	products, err := s.products.EstimatedCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	reviews, err := s.reviews.EstimatedCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Snapshot{
		Users:    users,
		Products: products,
		Reviews:  reviews,
	}, nil
}
