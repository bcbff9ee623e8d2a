package config

import (
	"context"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var (
	client *mongo.Client
	DB     *mongo.Database
	dbMu   sync.Mutex
)

// ConnectDB initializes the shared Mongo client and database (idempotent).
func ConnectDB(env Env) *mongo.Database {
	dbMu.Lock()
	defer dbMu.Unlock()

	if DB != nil {
		return DB
	}

	cl, err := mongo.Connect(options.Client().
		ApplyURI(env.MongoURI).
		SetConnectTimeout(5 * time.Second))
	if err != nil {
		log.Fatalf("failed to open mongo client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := cl.Ping(ctx, nil); err != nil {
		log.Fatalf("failed to ping mongo: %v", err)
	}

	client = cl
	DB = cl.Database(env.MongoDB)
	log.Printf("connected to mongodb database %q", env.MongoDB)
	return DB
}

// EnsureDB verifies the connection is alive.
func EnsureDB() error {
	dbMu.Lock()
	defer dbMu.Unlock()

	if client == nil {
		return mongo.ErrClientDisconnected
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return client.Ping(ctx, nil)
}

func CloseDB() {
	dbMu.Lock()
	defer dbMu.Unlock()

	if client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
		client = nil
		DB = nil
	}
}

// Collection returns a handle by name from the shared database. Repositories
// hold their own injected handle and fall back to this at runtime.
func Collection(name string) *mongo.Collection {
	dbMu.Lock()
	defer dbMu.Unlock()

	if DB == nil {
		return nil
	}
	return DB.Collection(name)
}
