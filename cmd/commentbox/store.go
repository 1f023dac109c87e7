// ABOUTME: Store selection for the configured backend.

package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/harper/commentbox/internal/charm"
	"github.com/harper/commentbox/internal/config"
	"github.com/harper/commentbox/internal/redisstore"
	"github.com/harper/commentbox/internal/store"
)

func openStore(ctx context.Context, cfg *config.Config, logger *log.Logger) (store.Store, error) {
	switch cfg.Backend {
	case config.BackendRedis:
		logger.Debug("opening redis store", "addr", cfg.Redis.Addr, "prefix", cfg.Redis.Prefix)
		return redisstore.Dial(ctx, redisstore.Options{
			Addr:     cfg.Redis.Addr,
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
	case config.BackendCharm:
		logger.Debug("opening charm store", "host", cfg.Charm.Host, "db", cfg.Charm.DBName)
		client, err := charm.NewClient(charm.Settings{
			Host:           cfg.Charm.Host,
			DBName:         cfg.Charm.DBName,
			AutoSync:       cfg.Charm.AutoSync,
			StaleThreshold: cfg.Charm.StaleThreshold,
		}, charm.WithLogger(logger))
		if err != nil {
			return nil, fmt.Errorf("create charm client: %w", err)
		}
		return charm.NewCommentStore(client), nil
	}
	return nil, fmt.Errorf("%w: %q", store.ErrUnknownBackend, cfg.Backend)
}
