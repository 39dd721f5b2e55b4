// AngelaMos | 2026
// database.go

package core

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/carterperez-dev/techbuzz-api/internal/config"
)

// Database holds the single long-lived mongo client shared by every request.
// The driver pools and interleaves connections internally.
type Database struct {
	Client *mongo.Client
	db     *mongo.Database
}

func NewDatabase(
	ctx context.Context,
	cfg config.DatabaseConfig,
) (*Database, error) {
	connectTimeout := cfg.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = 10 * time.Second
	}

	opts := options.Client().
		ApplyURI(cfg.URL).
		SetServerAPIOptions(
			options.ServerAPI(options.ServerAPIVersion1).SetStrict(true),
		).
		SetConnectTimeout(connectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx) //nolint:errcheck // cleanup on connection failure
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Database{
		Client: client,
		db:     client.Database(cfg.Name),
	}, nil
}

func (d *Database) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

func (d *Database) Close(ctx context.Context) error {
	if d.Client != nil {
		return d.Client.Disconnect(ctx)
	}
	return nil
}

func (d *Database) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := d.Client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}
