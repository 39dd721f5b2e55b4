// AngelaMos | 2026
// repository.go

package user

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carterperez-dev/techbuzz-api/internal/store"
)

type Repository interface {
	Insert(ctx context.Context, user *User) (string, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	SetRole(ctx context.Context, id, role string) (*store.UpdateResult, error)
	EstimatedCount(ctx context.Context) (int64, error)
}

type repository struct {
	users *store.Collection[User]
}

func NewRepository(coll *mongo.Collection) Repository {
	return &repository{users: store.NewCollection[User](coll)}
}

func (r *repository) Insert(ctx context.Context, user *User) (string, error) {
	return r.users.InsertOne(ctx, user)
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	return r.users.FindOne(ctx, bson.M{"email": email})
}

func (r *repository) List(ctx context.Context) ([]User, error) {
	return r.users.FindMany(ctx, bson.M{}, store.FindOptions{})
}

func (r *repository) SetRole(
	ctx context.Context,
	id, role string,
) (*store.UpdateResult, error) {
	return r.users.UpdateByID(ctx, id, bson.M{"role": role}, false)
}

func (r *repository) EstimatedCount(ctx context.Context) (int64, error) {
	return r.users.EstimatedCount(ctx)
}
