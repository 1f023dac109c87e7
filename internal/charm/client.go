// ABOUTME: Charm KV client wrapper using transactional Do API
// ABOUTME: Short-lived connections so several commentbox sessions can share one database

package charm

import (
	"os"
	"time"

	"github.com/charmbracelet/charm/kv"
	"github.com/charmbracelet/log"
)

const (
	// DBName is the default charm kv database for comments.
	DBName = "commentbox"
)

// Settings holds the charm server configuration.
type Settings struct {
	// Host is the charm server (exported to the charm library as CHARM_HOST).
	Host string

	// DBName overrides the default database name.
	DBName string

	// AutoSync pushes to the server after every write.
	AutoSync bool

	// StaleThreshold triggers a pull before reads when the last sync is older.
	// Zero disables stale checks.
	StaleThreshold time.Duration
}

// Client holds configuration for KV operations.
// It does NOT hold a persistent connection: each operation opens the
// database, performs the operation, and closes it.
type Client struct {
	dbName         string
	autoSync       bool
	staleThreshold time.Duration
	logger         *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithDBName sets the database name.
func WithDBName(name string) Option {
	return func(c *Client) {
		c.dbName = name
	}
}

// WithAutoSync enables or disables auto-sync after writes.
func WithAutoSync(enabled bool) Option {
	return func(c *Client) {
		c.autoSync = enabled
	}
}

// WithLogger sets the logger used for sync notices.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates a new client from settings, then applies options.
func NewClient(s Settings, opts ...Option) (*Client, error) {
	if s.Host != "" {
		if err := os.Setenv("CHARM_HOST", s.Host); err != nil {
			return nil, err
		}
	}

	c := &Client{
		dbName:         DBName,
		autoSync:       s.AutoSync,
		staleThreshold: s.StaleThreshold,
		logger:         log.Default(),
	}
	if s.DBName != "" {
		c.dbName = s.DBName
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Get retrieves a value by key (read-only, no lock contention).
func (c *Client) Get(key []byte) ([]byte, error) {
	var val []byte
	err := kv.DoReadOnly(c.dbName, func(k *kv.KV) error {
		var err error
		val, err = k.Get(key)
		return err
	})
	return val, err
}

// Set stores a value with the given key.
func (c *Client) Set(key, value []byte) error {
	return c.Do(func(k *kv.KV) error {
		return k.Set(key, value)
	})
}

// Delete removes a key.
func (c *Client) Delete(key []byte) error {
	return c.Do(func(k *kv.KV) error {
		return k.Delete(key)
	})
}

// Keys returns all keys in the database, pulling first if the local copy is stale.
func (c *Client) Keys() ([][]byte, error) {
	if err := c.SyncIfStale(); err != nil {
		return nil, err
	}
	var keys [][]byte
	err := kv.DoReadOnly(c.dbName, func(k *kv.KV) error {
		var err error
		keys, err = k.Keys()
		return err
	})
	return keys, err
}

// Do executes a function with write access to the database,
// syncing afterwards when auto-sync is enabled.
func (c *Client) Do(fn func(k *kv.KV) error) error {
	return kv.Do(c.dbName, func(k *kv.KV) error {
		if err := fn(k); err != nil {
			return err
		}
		if c.autoSync {
			return k.Sync()
		}
		return nil
	})
}

// Sync triggers a manual sync with the charm server.
func (c *Client) Sync() error {
	return kv.Do(c.dbName, func(k *kv.KV) error {
		return k.Sync()
	})
}

// IsStale checks if the data is stale based on the configured threshold.
func (c *Client) IsStale() bool {
	if c.staleThreshold == 0 {
		return false
	}
	var isStale bool
	_ = kv.DoReadOnly(c.dbName, func(k *kv.KV) error {
		isStale = k.IsStale(c.staleThreshold)
		return nil
	})
	return isStale
}

// SyncIfStale syncs with the charm server if data is stale.
func (c *Client) SyncIfStale() error {
	if !c.IsStale() {
		return nil
	}
	c.logger.Warn("data stale, syncing", "threshold", c.staleThreshold)
	return c.Sync()
}

// Close is a no-op; connections are closed after each operation.
func (c *Client) Close() error {
	return nil
}
