// ABOUTME: Comment board client composing validation and a comment store.
// ABOUTME: Update and delete address comments by position in the last listing.

package board

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/harper/commentbox/internal/models"
	"github.com/harper/commentbox/internal/store"
)

// ErrNotFound is returned when a display index is outside the listing.
var ErrNotFound = errors.New("invalid selection")

// Board issues create, list, update and delete calls against a store.
type Board struct {
	store  store.Store
	logger *log.Logger
}

// New creates a board over s. A nil logger selects the default logger.
func New(s store.Store, logger *log.Logger) *Board {
	if logger == nil {
		logger = log.Default()
	}
	return &Board{store: s, logger: logger}
}

// Migrate runs the store's index setup step.
func (b *Board) Migrate(ctx context.Context) error {
	if err := b.store.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate store: %w", err)
	}
	return nil
}

// Create stores a new comment and re-runs the index step so the comment is
// listed immediately. A blank name is stored as models.DefaultName.
func (b *Board) Create(ctx context.Context, title, body, name string) (*models.Comment, error) {
	c := models.NewComment(title, body, name)
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := b.store.Create(ctx, c); err != nil {
		return nil, err
	}
	if err := b.Migrate(ctx); err != nil {
		return nil, err
	}

	b.logger.Debug("comment created", "pk", c.PK)
	return c, nil
}

// List returns every stored comment in the store's natural order.
// Each call builds a fresh slice; the order may differ between calls.
func (b *Board) List(ctx context.Context) ([]*models.Comment, error) {
	comments, err := b.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	b.logger.Debug("comments listed", "count", len(comments))
	return comments, nil
}

// Select resolves a display index against a listing.
func Select(listed []*models.Comment, index int) (*models.Comment, error) {
	if index < 0 || index >= len(listed) {
		return nil, ErrNotFound
	}
	return listed[index], nil
}

// Update replaces the body of the comment at index in listed.
func (b *Board) Update(ctx context.Context, listed []*models.Comment, index int, body string) (*models.Comment, error) {
	target, err := Select(listed, index)
	if err != nil {
		return nil, err
	}
	if body == "" {
		return nil, models.ErrEmptyBody
	}

	updated := *target
	updated.Body = body
	if err := b.store.Save(ctx, &updated); err != nil {
		return nil, fmt.Errorf("save comment %s: %w", target.PK, err)
	}

	b.logger.Debug("comment updated", "pk", updated.PK, "index", index)
	return &updated, nil
}

// Delete removes the comment at index in listed.
func (b *Board) Delete(ctx context.Context, listed []*models.Comment, index int) (*models.Comment, error) {
	target, err := Select(listed, index)
	if err != nil {
		return nil, err
	}

	if err := b.store.Delete(ctx, target.PK); err != nil {
		return nil, fmt.Errorf("delete comment %s: %w", target.PK, err)
	}

	b.logger.Debug("comment deleted", "pk", target.PK, "index", index)
	return target, nil
}

// Close releases the underlying store.
func (b *Board) Close() error {
	return b.store.Close()
}
