package mongo

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dropshipping/storefront-api/internal/core/domain"
)

const (
	defaultTimeout         = 10 * time.Second
	serverSelectionTimeout = 10 * time.Second
	reconnectDelay         = 5 * time.Second
)

// Config captures the minimal settings required to establish a MongoDB
// connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connector owns the process-wide MongoDB handle. It is constructed once
// in main and injected into repositories; while the store is unreachable
// every Collection call fails fast with domain.ErrStoreUnavailable
// instead of hanging the request.
type Connector struct {
	cfg Config
	log zerolog.Logger
	db  atomic.Pointer[mongo.Database]
}

func NewConnector(cfg Config, log zerolog.Logger) *Connector {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Connector{cfg: cfg, log: log}
}

// Start launches the background connect loop and returns immediately.
// The loop retries on a fixed delay until the first successful ping,
// then exits; request handling is never blocked on it.
func (c *Connector) Start(ctx context.Context) {
	go func() {
		for {
			if err := c.connect(ctx); err == nil {
				return
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(reconnectDelay):
			}
		}
	}()
}

func (c *Connector) connect(ctx context.Context) error {
	connectCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(c.cfg.URI).
		SetServerSelectionTimeout(serverSelectionTimeout)

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		c.log.Error().Err(err).Msg("mongo connect failed")
		return fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		c.log.Error().Err(err).Msg("mongo ping failed, will retry")
		return fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(c.cfg.Database)
	c.db.Store(db)
	c.log.Info().Str("database", c.cfg.Database).Msg("mongo connected")

	if err := c.ensureIndexes(ctx, db); err != nil {
		c.log.Warn().Err(err).Msg("index creation failed")
	}
	return nil
}

// ensureIndexes creates the unique indexes that guard email and
// employee_id, plus the category index used by catalog listing. The
// unique indexes are the actual concurrency guard for registration and
// provisioning; the application-level pre-checks are advisory.
func (c *Connector) ensureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, userEmailIndex()); err != nil {
		return fmt.Errorf("users index: %w", err)
	}
	if _, err := db.Collection(adminsCollection).Indexes().CreateOne(ctx, adminEmployeeIDIndex()); err != nil {
		return fmt.Errorf("admins index: %w", err)
	}
	if _, err := db.Collection(productsCollection).Indexes().CreateOne(ctx, productCategoryIndex()); err != nil {
		return fmt.Errorf("products index: %w", err)
	}
	return nil
}

// Ready reports whether the store has been reached at least once.
func (c *Connector) Ready() bool {
	return c.db.Load() != nil
}

// Collection returns a live collection handle or ErrStoreUnavailable.
func (c *Connector) Collection(name string) (*mongo.Collection, error) {
	db := c.db.Load()
	if db == nil {
		return nil, domain.ErrStoreUnavailable
	}
	return db.Collection(name), nil
}

// Database exposes the raw handle for health probes; nil until connected.
func (c *Connector) Database() *mongo.Database {
	return c.db.Load()
}

// Close disconnects the underlying client.
func (c *Connector) Close(ctx context.Context) error {
	db := c.db.Load()
	if db == nil {
		return nil
	}
	return db.Client().Disconnect(ctx)
}
