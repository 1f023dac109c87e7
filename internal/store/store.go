// ABOUTME: Storage contract for comment persistence backends.
// ABOUTME: Implemented by the redis hash store and the charm KV store.

package store

import (
	"context"
	"errors"

	"github.com/harper/commentbox/internal/models"
)

var (
	// ErrNotFound is returned when a key listed by the backend has no
	// readable record.
	ErrNotFound = errors.New("comment not found")

	// ErrUnknownBackend is returned for a backend name no store implements.
	ErrUnknownBackend = errors.New("unknown store backend")
)

// Store is the external keyed record store holding comments.
//
// Implementations do not lock across calls. A caller that lists and later
// saves or deletes may observe writes made by other clients in between.
type Store interface {
	// Migrate registers or rebuilds whatever index the backend needs so that
	// All sees every saved record. It is idempotent and cheap to repeat.
	Migrate(ctx context.Context) error

	// Create persists a new record under c.PK.
	Create(ctx context.Context, c *models.Comment) error

	// All returns every stored comment in the backend's natural order.
	// The order is not guaranteed to be stable between calls.
	All(ctx context.Context) ([]*models.Comment, error)

	// Save writes the record stored under c.PK. A record removed by another
	// client since it was listed is written back.
	Save(ctx context.Context, c *models.Comment) error

	// Delete removes the record stored under pk. Removing a record that is
	// already gone succeeds.
	Delete(ctx context.Context, pk string) error

	Close() error
}
