package mongodb

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DialFunc opens a client for the given options.
type DialFunc func(ctx context.Context, opts *options.ClientOptions) (*mongo.Client, error)

// Connector owns the process-wide MongoDB connection. The client is dialed
// on first use; concurrent first callers block on the same dial and share
// its result. A failed dial is not remembered, so the next call retries.
type Connector struct {
	uri     string
	dbName  string
	maxPool uint64
	dial    DialFunc

	mu        sync.Mutex
	client    *mongo.Client
	db        *mongo.Database
	onConnect []func(ctx context.Context, db *mongo.Database) error
}

func NewConnector(uri, dbName string, maxPool uint64) *Connector {
	return &Connector{uri: uri, dbName: dbName, maxPool: maxPool, dial: DialAndPing}
}

// WithDialer replaces the dial function. Used by tests.
func (c *Connector) WithDialer(d DialFunc) *Connector {
	c.dial = d
	return c
}

// OnConnect registers a hook run once, right after the first successful dial.
func (c *Connector) OnConnect(fn func(ctx context.Context, db *mongo.Database) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onConnect = append(c.onConnect, fn)
}

// Database returns the shared database handle, connecting if needed.
func (c *Connector) Database(ctx context.Context) (*mongo.Database, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.db != nil {
		return c.db, nil
	}
	if c.uri == "" {
		return nil, errors.New("mongodb uri not configured")
	}

	opts := options.Client().
		ApplyURI(c.uri).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})
	if c.maxPool > 0 {
		opts.SetMaxPoolSize(c.maxPool)
	}
	client, err := c.dial(ctx, opts)
	if err != nil {
		return nil, err
	}
	db := client.Database(c.dbName)
	for _, fn := range c.onConnect {
		if err := fn(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
	}
	c.client = client
	c.db = db
	return db, nil
}

// Collection is shorthand for Database(ctx).Collection(name).
func (c *Connector) Collection(ctx context.Context, name string) (*mongo.Collection, error) {
	db, err := c.Database(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(name), nil
}

// Close disconnects the client if one was ever created.
func (c *Connector) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client == nil {
		return nil
	}
	err := c.client.Disconnect(ctx)
	c.client, c.db = nil, nil
	return err
}

// DialAndPing connects and verifies the deployment is reachable.
func DialAndPing(ctx context.Context, opts *options.ClientOptions) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}
