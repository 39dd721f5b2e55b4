// AngelaMos | 2026
// repository.go

package coupon

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carterperez-dev/techbuzz-api/internal/store"
)

type Repository interface {
	Insert(ctx context.Context, c *Coupon) (string, error)
	GetByID(ctx context.Context, id string) (*Coupon, error)
	GetByCode(ctx context.Context, code string) (*Coupon, error)
	List(ctx context.Context) ([]Coupon, error)
	Update(
		ctx context.Context,
		id string,
		fields map[string]any,
	) (*store.UpdateResult, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type repository struct {
	coupons *store.Collection[Coupon]
}

func NewRepository(coll *mongo.Collection) Repository {
	return &repository{coupons: store.NewCollection[Coupon](coll)}
}

func (r *repository) Insert(ctx context.Context, c *Coupon) (string, error) {
	return r.coupons.InsertOne(ctx, c)
}

func (r *repository) GetByID(ctx context.Context, id string) (*Coupon, error) {
	return r.coupons.FindByID(ctx, id)
}

func (r *repository) GetByCode(
	ctx context.Context,
	code string,
) (*Coupon, error) {
	return r.coupons.FindOne(ctx, bson.M{"coupon_code": code})
}

func (r *repository) List(ctx context.Context) ([]Coupon, error) {
	return r.coupons.FindMany(ctx, bson.M{}, store.FindOptions{})
}

func (r *repository) Update(
	ctx context.Context,
	id string,
	fields map[string]any,
) (*store.UpdateResult, error) {
	return r.coupons.UpdateByID(ctx, id, bson.M(fields), false)
}

func (r *repository) Delete(ctx context.Context, id string) (int64, error) {
	return r.coupons.DeleteByID(ctx, id)
}
