// Package ingest runs the bulk resolution pass over freshly fetched feed
// entries, splitting them into accepted songs and the unresolved queue.
package ingest

import (
	"context"
	"io"
	"log/slog"

	"github.com/schollz/progressbar/v3"

	"tunecard/internal/catalog"
	"tunecard/internal/feed"
	"tunecard/internal/logging"
	"tunecard/internal/normalize"
	"tunecard/internal/resolve"
	"tunecard/internal/services"
)

// Resolver is the recording lookup used during the bulk pass.
type Resolver interface {
	Resolve(ctx context.Context, artist, title string) ([]resolve.RecordingMatch, error)
}

// Result is the outcome of one bulk pass. Unresolved songs carry only a
// fallback year and go to the review queue in feed order.
type Result struct {
	Accepted   []catalog.Song
	Unresolved []catalog.Song
}

// Ingestor drives the bulk pass.
type Ingestor struct {
	resolver Resolver
	out      io.Writer
	logger   *slog.Logger
}

// New builds an ingestor. Progress is drawn to out.
func New(resolver Resolver, out io.Writer, logger *slog.Logger) *Ingestor {
	if out == nil {
		out = io.Discard
	}
	return &Ingestor{
		resolver: resolver,
		out:      out,
		logger:   logging.NewComponentLogger(logger, "ingest"),
	}
}

// Run resolves every entry once. Lookup failures defer the entry to the
// unresolved queue; only non-lookup errors abort the pass.
func (in *Ingestor) Run(ctx context.Context, entries []feed.Entry) (Result, error) {
	bar := progressbar.NewOptions(len(entries),
		progressbar.OptionSetWriter(in.out),
		progressbar.OptionSetDescription("resolving"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	var result Result
	for _, entry := range entries {
		artist, title := normalize.Candidate(entry.RawTitle, entry.ChannelName)
		song := catalog.Song{
			Artist:       artist,
			Title:        title,
			FallbackYear: entry.PublishedYear,
			SourceID:     entry.ID,
			RawTitle:     entry.RawTitle,
		}

		matches, err := in.resolver.Resolve(ctx, artist, title)
		switch {
		case err == nil:
			// The list is sorted ascending, so the first match is the
			// earliest known release.
			song.ReleaseYear = matches[0].Year
			song.MatchedTitle = matches[0].CanonicalTitle
			result.Accepted = append(result.Accepted, song)
		case services.RoutesToReview(err):
			in.logger.Debug("deferred to review",
				logging.String("raw_title", entry.RawTitle),
				logging.Error(err))
			result.Unresolved = append(result.Unresolved, song)
		default:
			return Result{}, err
		}

		_ = bar.Add(1)
	}

	in.logger.Info("bulk pass complete",
		logging.Int("accepted", len(result.Accepted)),
		logging.Int("unresolved", len(result.Unresolved)))
	return result, nil
}
