// ABOUTME: Redis-backed comment store using one hash per comment.
// ABOUTME: Keeps a set of live primary keys that Migrate rebuilds from a key scan.

package redisstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/harper/commentbox/internal/models"
	"github.com/harper/commentbox/internal/store"
	"github.com/redis/go-redis/v9"
)

// DefaultPrefix matches the key prefix the comment hashes have always used.
const DefaultPrefix = "commentbox:Comments"

const (
	fieldPK        = "pk"
	fieldTitle     = "title"
	fieldBody      = "body"
	fieldName      = "name"
	fieldCreatedAt = "datetime"

	scanCount = 100
)

// Options holds connection settings for the redis server.
type Options struct {
	Addr     string
	Username string
	Password string
	DB       int
	Prefix   string
}

// Store keeps each comment as a hash under "<prefix>:<pk>" and the set of
// live primary keys under "<prefix>:index".
type Store struct {
	client *redis.Client
	prefix string
}

var _ store.Store = (*Store)(nil)

// New wraps an existing client. An empty prefix selects DefaultPrefix.
func New(client *redis.Client, prefix string) *Store {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Store{client: client, prefix: prefix}
}

// Dial connects to redis and verifies the connection with a PING.
func Dial(ctx context.Context, opts Options) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Username: opts.Username,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis %s: %w", opts.Addr, err)
	}
	return New(client, opts.Prefix), nil
}

func (s *Store) key(pk string) string {
	return s.prefix + ":" + pk
}

func (s *Store) indexKey() string {
	return s.prefix + ":index"
}

// Migrate rebuilds the primary key index from the hashes currently stored.
func (s *Store) Migrate(ctx context.Context) error {
	var pks []interface{}
	keyPrefix := s.prefix + ":"
	index := s.indexKey()

	iter := s.client.Scan(ctx, 0, keyPrefix+"*", scanCount).Iterator()
	for iter.Next(ctx) {
		k := iter.Val()
		if k == index {
			continue
		}
		pks = append(pks, strings.TrimPrefix(k, keyPrefix))
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan comment keys: %w", err)
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, index)
		if len(pks) > 0 {
			pipe.SAdd(ctx, index, pks...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("rebuild index: %w", err)
	}
	return nil
}

// Create writes the comment hash. It becomes visible to All after Migrate.
func (s *Store) Create(ctx context.Context, c *models.Comment) error {
	if err := s.client.HSet(ctx, s.key(c.PK), encode(c)).Err(); err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

// All loads every indexed comment. Index entries whose hash has disappeared
// are skipped.
func (s *Store) All(ctx context.Context) ([]*models.Comment, error) {
	pks, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("read index: %w", err)
	}
	if len(pks) == 0 {
		return nil, nil
	}

	cmds := make([]*redis.MapStringStringCmd, len(pks))
	_, err = s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, pk := range pks {
			cmds[i] = pipe.HGetAll(ctx, s.key(pk))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}

	comments := make([]*models.Comment, 0, len(pks))
	for i, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			continue
		}
		c, err := decode(pks[i], fields)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, nil
}

// Save writes every field of the comment and keeps it in the index. A hash
// removed by another client since it was listed is written back.
func (s *Store) Save(ctx context.Context, c *models.Comment) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, s.key(c.PK), encode(c))
		pipe.SAdd(ctx, s.indexKey(), c.PK)
		return nil
	})
	if err != nil {
		return fmt.Errorf("save comment: %w", err)
	}
	return nil
}

// Delete removes the comment hash and its index entry. Deleting a key that is
// already gone succeeds.
func (s *Store) Delete(ctx context.Context, pk string) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.key(pk))
		pipe.SRem(ctx, s.indexKey(), pk)
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

func encode(c *models.Comment) map[string]interface{} {
	return map[string]interface{}{
		fieldPK:        c.PK,
		fieldTitle:     c.Title,
		fieldBody:      c.Body,
		fieldName:      c.Name,
		fieldCreatedAt: c.CreatedAt.Format(time.RFC3339Nano),
	}
}

func decode(pk string, fields map[string]string) (*models.Comment, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, fields[fieldCreatedAt])
	if err != nil {
		return nil, fmt.Errorf("parse timestamp of comment %s: %w", pk, err)
	}
	name := fields[fieldName]
	if name == "" {
		name = models.DefaultName
	}
	return &models.Comment{
		PK:        pk,
		Title:     fields[fieldTitle],
		Body:      fields[fieldBody],
		Name:      name,
		CreatedAt: createdAt,
	}, nil
}
