package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ErrFailedToConnectToMongo is returned when the mongo server cannot be reached.
var ErrFailedToConnectToMongo = errors.New("kv: failed to connect to mongo server")

// MongoConfig holds the connection settings for a MongoDB-backed store.
type MongoConfig struct {
	ConnectionURL  string        `env:"TOAST_MONGODB_URL,required"`                      // ConnectionURL is the URL of the database.
	Database       string        `env:"TOAST_MONGODB_DATABASE" envDefault:"toastkit"`    // Database is the database holding the store collection.
	Collection     string        `env:"TOAST_MONGODB_COLLECTION" envDefault:"kv"`        // Collection is the collection documents are stored in.
	ConnectTimeout time.Duration `env:"TOAST_MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`  // ConnectTimeout is the timeout for connecting to the database.
	RetryAttempts  int           `env:"TOAST_MONGODB_RETRY_ATTEMPTS" envDefault:"3"`     // RetryAttempts is the number of connection attempts before giving up.
	RetryInterval  time.Duration `env:"TOAST_MONGODB_RETRY_INTERVAL" envDefault:"5s"`    // RetryInterval is the wait between connection attempts.
}

// mongoDoc is the stored document shape: one document per key.
type mongoDoc struct {
	Key       string    `bson:"_id"`
	Value     []byte    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// ConnectMongo establishes a connection to a MongoDB server, retrying per the
// config, and returns a Store backed by the configured collection.
func ConnectMongo(ctx context.Context, cfg MongoConfig) (*Mongo, error) {
	for attempt := 0; attempt < cfg.RetryAttempts; attempt++ {
		client, err := mongo.Connect(
			options.Client().
				ApplyURI(cfg.ConnectionURL).
				SetConnectTimeout(cfg.ConnectTimeout),
		)
		if err == nil {
			if err := client.Ping(ctx, nil); err == nil {
				coll := client.Database(cfg.Database).Collection(cfg.Collection)
				return NewMongo(coll), nil
			}
			_ = client.Disconnect(ctx)
		}

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrFailedToConnectToMongo, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrFailedToConnectToMongo
}

// Mongo is a MongoDB-backed implementation of the Store interface.
type Mongo struct {
	coll *mongo.Collection
}

// NewMongo creates a store on top of an existing collection.
func NewMongo(coll *mongo.Collection) *Mongo {
	return &Mongo{coll: coll}
}

func (m *Mongo) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	var doc mongoDoc
	if err := m.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("kv: mongo get %q: %w", key, err)
	}

	return doc.Value, nil
}

func (m *Mongo) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}

	doc := mongoDoc{Key: key, Value: value, UpdatedAt: time.Now()}
	_, err := m.coll.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("kv: mongo set %q: %w", key, err)
	}

	return nil
}

func (m *Mongo) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	if _, err := m.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("kv: mongo delete %q: %w", key, err)
	}

	return nil
}
