// AngelaMos | 2026
// repository.go

package product

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carterperez-dev/techbuzz-api/internal/store"
)

type Repository interface {
	Insert(ctx context.Context, p *Product) (string, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	ListAll(ctx context.Context) ([]Product, error)
	ListPublic(ctx context.Context, params ListParams) ([]Product, int64, error)
	ListByOwner(ctx context.Context, email string) ([]Product, error)
	ListFeatured(ctx context.Context, ascending bool) ([]Product, error)
	ListReported(ctx context.Context) ([]Product, error)
	Update(
		ctx context.Context,
		id string,
		fields map[string]any,
	) (*store.UpdateResult, error)
	Delete(ctx context.Context, id string) (int64, error)
	Vote(ctx context.Context, id string) (*Product, error)
	EstimatedCount(ctx context.Context) (int64, error)
}

type repository struct {
	products *store.Collection[Product]
}

func NewRepository(coll *mongo.Collection) Repository {
	return &repository{products: store.NewCollection[Product](coll)}
}

func (r *repository) Insert(ctx context.Context, p *Product) (string, error) {
	return r.products.InsertOne(ctx, p)
}

func (r *repository) GetByID(
	ctx context.Context,
	id string,
) (*Product, error) {
	return r.products.FindByID(ctx, id)
}

func (r *repository) ListAll(ctx context.Context) ([]Product, error) {
	return r.products.FindMany(ctx, bson.M{}, store.FindOptions{})
}

// ListPublic only ever surfaces accepted products. The tag search is a
// case-insensitive substring match; an empty search term matches all tags.
func (r *repository) ListPublic(
	ctx context.Context,
	params ListParams,
) ([]Product, int64, error) {
	params.Normalize()

	filter := bson.M{
		"status": StatusAccepted,
		"tags": primitive.Regex{
			Pattern: params.Search,
			Options: "i",
		},
	}

	total, err := r.products.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	products, err := r.products.FindMany(ctx, filter, store.FindOptions{
		Skip:  params.Offset(),
		Limit: int64(params.Size),
	})
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *repository) ListByOwner(
	ctx context.Context,
	email string,
) ([]Product, error) {
	return r.products.FindMany(
		ctx,
		bson.M{"owner.email": email},
		store.FindOptions{},
	)
}

func (r *repository) ListFeatured(
	ctx context.Context,
	ascending bool,
) ([]Product, error) {
	order := -1
	if ascending {
		order = 1
	}

	return r.products.FindMany(
		ctx,
		bson.M{"isFeatured": true},
		store.FindOptions{Sort: bson.D{{Key: "timestamp", Value: order}}},
	)
}

func (r *repository) ListReported(ctx context.Context) ([]Product, error) {
	return r.products.FindMany(
		ctx,
		bson.M{"reported": true},
		store.FindOptions{},
	)
}

func (r *repository) Update(
	ctx context.Context,
	id string,
	fields map[string]any,
) (*store.UpdateResult, error) {
	return r.products.UpdateByID(ctx, id, bson.M(fields), false)
}

func (r *repository) Delete(ctx context.Context, id string) (int64, error) {
	return r.products.DeleteByID(ctx, id)
}

func (r *repository) Vote(ctx context.Context, id string) (*Product, error) {
	return r.products.IncByID(ctx, id, "votes", 1)
}

func (r *repository) EstimatedCount(ctx context.Context) (int64, error) {
	return r.products.EstimatedCount(ctx)
}
