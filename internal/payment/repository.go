// AngelaMos | 2026
// repository.go

package payment

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carterperez-dev/techbuzz-api/internal/core"
	"github.com/carterperez-dev/techbuzz-api/internal/store"
)

type Repository interface {
	Insert(ctx context.Context, p *Payment) (string, error)
	ListByEmail(ctx context.Context, email string) ([]Payment, error)
	LatestByEmail(ctx context.Context, email string) (*Payment, error)
}

type repository struct {
	payments *store.Collection[Payment]
}

func NewRepository(coll *mongo.Collection) Repository {
	return &repository{payments: store.NewCollection[Payment](coll)}
}

func (r *repository) Insert(ctx context.Context, p *Payment) (string, error) {
	return r.payments.InsertOne(ctx, p)
}

// ListByEmail returns a customer's payment history, newest first.
func (r *repository) ListByEmail(
	ctx context.Context,
	email string,
) ([]Payment, error) {
	return r.payments.FindMany(
		ctx,
		bson.M{"email": email},
		store.FindOptions{Sort: bson.D{{Key: "createdAt", Value: -1}}},
	)
}

func (r *repository) LatestByEmail(
	ctx context.Context,
	email string,
) (*Payment, error) {
	results, err := r.payments.FindMany(
		ctx,
		bson.M{"email": email},
		store.FindOptions{
			Sort:  bson.D{{Key: "createdAt", Value: -1}},
			Limit: 1,
		},
	)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, core.ErrNotFound
	}

	return &results[0], nil
}
