package querycache

import (
	"context"
	"log/slog"

	"tunecard/internal/logging"
	"tunecard/internal/musicbrainz"
)

// Searcher matches the lookup client surface the cache sits in front of.
type Searcher interface {
	SearchRecordings(ctx context.Context, artist, title string) ([]musicbrainz.Recording, error)
}

// CachingSearcher serves cached responses and falls through to the inner
// searcher on a miss. Failed calls are never cached.
type CachingSearcher struct {
	store  *Store
	inner  Searcher
	logger *slog.Logger
}

// NewCachingSearcher wraps inner with the given store.
func NewCachingSearcher(store *Store, inner Searcher, logger *slog.Logger) *CachingSearcher {
	return &CachingSearcher{
		store:  store,
		inner:  inner,
		logger: logging.NewComponentLogger(logger, "querycache"),
	}
}

// SearchRecordings implements the Searcher surface.
func (c *CachingSearcher) SearchRecordings(ctx context.Context, artist, title string) ([]musicbrainz.Recording, error) {
	cached, hit, err := c.store.Get(ctx, artist, title)
	if err != nil {
		c.logger.Warn("cache read failed, querying service directly", logging.Error(err))
	} else if hit {
		c.logger.Debug("cache hit", logging.String("artist", artist), logging.String("title", title))
		return cached, nil
	}

	recordings, err := c.inner.SearchRecordings(ctx, artist, title)
	if err != nil {
		return nil, err
	}

	if err := c.store.Put(ctx, artist, title, recordings); err != nil {
		c.logger.Warn("cache write failed", logging.Error(err))
	}
	return recordings, nil
}
