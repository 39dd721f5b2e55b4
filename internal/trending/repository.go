// AngelaMos | 2026
// repository.go

package trending

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carterperez-dev/techbuzz-api/internal/store"
)

type Repository interface {
	List(ctx context.Context, ascending bool) ([]Entry, error)
	Vote(ctx context.Context, id string) (*Entry, error)
}

type repository struct {
	entries *store.Collection[Entry]
}

func NewRepository(coll *mongo.Collection) Repository {
	return &repository{entries: store.NewCollection[Entry](coll)}
}

func (r *repository) List(
	ctx context.Context,
	ascending bool,
) ([]Entry, error) {
	order := -1
	if ascending {
		order = 1
	}

	return r.entries.FindMany(ctx, bson.M{}, store.FindOptions{
		Sort: bson.D{{Key: "votes", Value: order}},
	})
}

func (r *repository) Vote(ctx context.Context, id string) (*Entry, error) {
	return r.entries.IncByID(ctx, id, "votes", 1)
}
