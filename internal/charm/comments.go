// ABOUTME: Comment store on top of Charm KV
// ABOUTME: Uses type-prefixed keys (comment:<pk>) holding JSON records

package charm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/harper/commentbox/internal/models"
	"github.com/harper/commentbox/internal/store"
)

const (
	// CommentPrefix is the key prefix for comments.
	CommentPrefix = "comment:"
)

// KV is the subset of Client the comment store needs.
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key, value []byte) error
	Delete(key []byte) error
	Keys() ([][]byte, error)
	SyncIfStale() error
	Close() error
}

// CommentData represents a comment stored in charm KV.
type CommentData struct {
	PK        string    `json:"pk"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"datetime"`
}

// ToModel converts CommentData to a models.Comment.
func (d *CommentData) ToModel() *models.Comment {
	name := d.Name
	if name == "" {
		name = models.DefaultName
	}
	return &models.Comment{
		PK:        d.PK,
		Title:     d.Title,
		Body:      d.Body,
		Name:      name,
		CreatedAt: d.CreatedAt,
	}
}

// FromModel creates CommentData from a models.Comment.
func FromModel(c *models.Comment) *CommentData {
	return &CommentData{
		PK:        c.PK,
		Title:     c.Title,
		Body:      c.Body,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
	}
}

func commentKey(pk string) []byte {
	return []byte(CommentPrefix + pk)
}

// CommentStore implements store.Store over a charm KV database.
type CommentStore struct {
	kv KV
}

var _ store.Store = (*CommentStore)(nil)

// NewCommentStore creates a comment store backed by the given KV.
func NewCommentStore(kv KV) *CommentStore {
	return &CommentStore{kv: kv}
}

// Migrate pulls from the server when the local copy is stale.
// Charm KV needs no index registration, so there is nothing else to do.
func (s *CommentStore) Migrate(_ context.Context) error {
	return s.kv.SyncIfStale()
}

// Create stores a new comment.
func (s *CommentStore) Create(_ context.Context, c *models.Comment) error {
	encoded, err := json.Marshal(FromModel(c))
	if err != nil {
		return fmt.Errorf("marshal comment: %w", err)
	}
	return s.kv.Set(commentKey(c.PK), encoded)
}

// All returns every comment in key order.
func (s *CommentStore) All(_ context.Context) ([]*models.Comment, error) {
	keys, err := s.kv.Keys()
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}

	prefix := []byte(CommentPrefix)
	var comments []*models.Comment
	for _, key := range keys {
		if !bytes.HasPrefix(key, prefix) {
			continue
		}
		c, err := s.get(key)
		if errors.Is(err, store.ErrNotFound) {
			continue // Removed by another client since Keys
		}
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, nil
}

func (s *CommentStore) get(key []byte) (*models.Comment, error) {
	data, err := s.kv.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}

	var cd CommentData
	if err := json.Unmarshal(data, &cd); err != nil {
		return nil, fmt.Errorf("unmarshal comment: %w", err)
	}
	return cd.ToModel(), nil
}

// Save writes the comment, re-creating it if another client removed it.
func (s *CommentStore) Save(_ context.Context, c *models.Comment) error {
	encoded, err := json.Marshal(FromModel(c))
	if err != nil {
		return fmt.Errorf("marshal comment: %w", err)
	}
	return s.kv.Set(commentKey(c.PK), encoded)
}

// Delete removes a comment. A missing key is not an error.
func (s *CommentStore) Delete(_ context.Context, pk string) error {
	return s.kv.Delete(commentKey(pk))
}

func (s *CommentStore) Close() error {
	return s.kv.Close()
}
