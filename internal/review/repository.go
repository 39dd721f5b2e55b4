// AngelaMos | 2026
// repository.go

package review

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carterperez-dev/techbuzz-api/internal/store"
)

type Repository interface {
	Insert(ctx context.Context, rev *Review) (string, error)
	ListByProduct(ctx context.Context, productID string) ([]Review, error)
	EstimatedCount(ctx context.Context) (int64, error)
}

type repository struct {
	reviews *store.Collection[Review]
}

func NewRepository(coll *mongo.Collection) Repository {
	return &repository{reviews: store.NewCollection[Review](coll)}
}

func (r *repository) Insert(
	ctx context.Context,
	rev *Review,
) (string, error) {
	return r.reviews.InsertOne(ctx, rev)
}

func (r *repository) ListByProduct(
	ctx context.Context,
	productID string,
) ([]Review, error) {
	return r.reviews.FindMany(
		ctx,
		bson.M{"productId": productID},
		store.FindOptions{},
	)
}

func (r *repository) EstimatedCount(ctx context.Context) (int64, error) {
	return r.reviews.EstimatedCount(ctx)
}
