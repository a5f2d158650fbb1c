package main

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"tunecard/internal/config"
	"tunecard/internal/logging"
	"tunecard/internal/musicbrainz"
	"tunecard/internal/querycache"
	"tunecard/internal/resolve"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// newLogger builds the session logger. Every record carries a session id
// so interleaved runs can be told apart in aggregated logs.
func (c *commandContext) newLogger(cfg *config.Config) (*slog.Logger, error) {
	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return nil, err
	}
	return logger.With(logging.String(logging.FieldSessionID, uuid.NewString())), nil
}

// newResolver wires the lookup client, optionally behind the query cache.
// The returned cleanup closes the cache store and must always be called.
func (c *commandContext) newResolver(cfg *config.Config, logger *slog.Logger) (*resolve.Resolver, func(), error) {
	client, err := musicbrainz.New(
		cfg.Lookup.BaseURL,
		cfg.Lookup.UserAgent,
		time.Duration(cfg.Lookup.RequestDelayMS)*time.Millisecond,
		time.Duration(cfg.Lookup.TimeoutSeconds)*time.Second,
	)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {}
	var searcher resolve.Searcher = client
	if cfg.Lookup.CacheEnabled {
		store, err := querycache.Open(cfg.Lookup.CachePath)
		if err != nil {
			return nil, nil, err
		}
		cleanup = func() { _ = store.Close() }
		searcher = querycache.NewCachingSearcher(store, client, logger)
	}

	return resolve.New(searcher, logger), cleanup, nil
}
