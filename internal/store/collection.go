// AngelaMos | 2026
// collection.go

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/carterperez-dev/techbuzz-api/internal/core"
)

// Collection is a typed adapter over a single mongo collection. Every
// operation is single-document; there are no multi-document transactions.
type Collection[T any] struct {
	coll *mongo.Collection
}

func NewCollection[T any](coll *mongo.Collection) *Collection[T] {
	return &Collection[T]{coll: coll}
}

type FindOptions struct {
	Skip  int64
	Limit int64
	Sort  bson.D
}

type UpdateResult struct {
	MatchedCount  int64
	ModifiedCount int64
	UpsertedID    string
}

func (c *Collection[T]) FindMany(
	ctx context.Context,
	filter bson.M,
	opts FindOptions,
) ([]T, error) {
	findOpts := options.Find()
	if opts.Skip > 0 {
		findOpts.SetSkip(opts.Skip)
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}
	if opts.Sort != nil {
		findOpts.SetSort(opts.Sort)
	}

	cursor, err := c.coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", c.coll.Name(), err)
	}
	defer cursor.Close(ctx) //nolint:errcheck // cursor cleanup

	docs := make([]T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.coll.Name(), err)
	}

	return docs, nil
}

func (c *Collection[T]) FindOne(
	ctx context.Context,
	filter bson.M,
) (*T, error) {
	var doc T
	err := c.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("find one %s: %w", c.coll.Name(), core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find one %s: %w", c.coll.Name(), err)
	}

	return &doc, nil
}

func (c *Collection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	return c.FindOne(ctx, bson.M{"_id": oid})
}

func (c *Collection[T]) InsertOne(
	ctx context.Context,
	doc any,
) (string, error) {
	result, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", fmt.Errorf(
				"insert %s: %w",
				c.coll.Name(),
				core.ErrDuplicateKey,
			)
		}
		return "", fmt.Errorf("insert %s: %w", c.coll.Name(), err)
	}

	return formatInsertedID(result.InsertedID), nil
}

// UpdateByID applies patch as a $set merge. Upsert is explicit opt-in:
// silently fabricating a record on a missing id masks broken lookups, so
// edit flows pass false and surface zero matches instead.
func (c *Collection[T]) UpdateByID(
	ctx context.Context,
	id string,
	patch bson.M,
	upsert bool,
) (*UpdateResult, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	result, err := c.coll.UpdateOne(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": patch},
		options.Update().SetUpsert(upsert),
	)
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", c.coll.Name(), err)
	}

	return &UpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
		UpsertedID:    formatInsertedID(result.UpsertedID),
	}, nil
}

// IncByID atomically increments a numeric field and returns the document as
// it stands after the update. A separate read+write would race; the store's
// findOneAndUpdate is the only correct primitive here.
func (c *Collection[T]) IncByID(
	ctx context.Context,
	id string,
	field string,
	delta int64,
) (*T, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	var doc T
	err = c.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$inc": bson.M{field: delta}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf(
			"increment %s: %w",
			c.coll.Name(),
			core.ErrNotFound,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("increment %s: %w", c.coll.Name(), err)
	}

	return &doc, nil
}

func (c *Collection[T]) DeleteByID(
	ctx context.Context,
	id string,
) (int64, error) {
	oid, err := ParseID(id)
	if err != nil {
		return 0, err
	}

	result, err := c.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("delete %s: %w", c.coll.Name(), err)
	}

	return result.DeletedCount, nil
}

// Count is an exact filtered count, used for pagination totals.
func (c *Collection[T]) Count(
	ctx context.Context,
	filter bson.M,
) (int64, error) {
	count, err := c.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", c.coll.Name(), err)
	}

	return count, nil
}

// EstimatedCount is the collection-size estimate, not an exact count.
func (c *Collection[T]) EstimatedCount(ctx context.Context) (int64, error) {
	count, err := c.coll.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", c.coll.Name(), err)
	}

	return count, nil
}

func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf(
			"parse id %q: %w",
			id,
			core.ErrInvalidInput,
		)
	}
	return oid, nil
}

func formatInsertedID(id any) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
