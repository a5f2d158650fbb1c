// Package resolve turns raw recording search results into ranked
// RecordingMatch candidates.
//
// Candidates without a release date are dropped, dates are reduced to a
// 4-digit year, and survivors are sorted ascending by (year, canonical
// title) so the earliest known release is always presented first. An empty
// survivor set is a NotFound outcome, which callers route to review rather
// than treat as a failure.
package resolve

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"tunecard/internal/logging"
	"tunecard/internal/musicbrainz"
	"tunecard/internal/services"
)

// RecordingMatch is one ranked candidate answer for a query. Ephemeral:
// resolver output only, never persisted.
type RecordingMatch struct {
	Year           int
	CanonicalTitle string
	Disambiguation string
}

// Searcher is the lookup surface the resolver consumes.
type Searcher interface {
	SearchRecordings(ctx context.Context, artist, title string) ([]musicbrainz.Recording, error)
}

// Resolver maps artist/title queries to ranked recording matches.
type Resolver struct {
	searcher Searcher
	logger   *slog.Logger
}

// New creates a Resolver on top of the given searcher.
func New(searcher Searcher, logger *slog.Logger) *Resolver {
	return &Resolver{
		searcher: searcher,
		logger:   logging.NewComponentLogger(logger, "resolver"),
	}
}

// Resolve issues one search and returns the ranked candidates. The request
// is issued at most once; retry is the caller's decision.
func (r *Resolver) Resolve(ctx context.Context, artist, title string) ([]RecordingMatch, error) {
	r.logger.Debug("querying", logging.String("artist", artist), logging.String("title", title))

	recordings, err := r.searcher.SearchRecordings(ctx, artist, title)
	if err != nil {
		return nil, err
	}

	matches := make([]RecordingMatch, 0, len(recordings))
	for _, rec := range recordings {
		date := strings.TrimSpace(rec.FirstReleaseDate)
		if date == "" {
			continue
		}
		year, err := parseReleaseYear(date)
		if err != nil {
			r.logger.Warn("dropping candidate with unparseable release date",
				logging.String("canonical_title", rec.CanonicalTitle()),
				logging.String("release_date", date),
				logging.Error(err),
			)
			continue
		}
		matches = append(matches, RecordingMatch{
			Year:           year,
			CanonicalTitle: rec.CanonicalTitle(),
			Disambiguation: strings.TrimSpace(rec.Disambiguation),
		})
	}

	if len(matches) == 0 {
		return nil, services.Wrap(services.ErrNotFound, "resolver", "search", fmt.Sprintf("no dated recordings for %s - %s", artist, title), nil)
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Year != matches[j].Year {
			return matches[i].Year < matches[j].Year
		}
		return matches[i].CanonicalTitle < matches[j].CanonicalTitle
	})

	r.logger.Info("found",
		logging.String("canonical_title", matches[0].CanonicalTitle),
		logging.Int("year", matches[0].Year),
		logging.Int("candidates", len(matches)),
	)
	return matches, nil
}

// parseReleaseYear reduces a release date to its year: the integer prefix
// before the first dash, or the whole string when no dash is present.
func parseReleaseYear(date string) (int, error) {
	value := date
	if idx := strings.Index(value, "-"); idx >= 0 {
		value = value[:idx]
	}
	year, err := strconv.Atoi(value)
	if err != nil {
		return 0, services.Wrap(services.ErrDateParse, "resolver", "parse release date", fmt.Sprintf("%q", date), err)
	}
	return year, nil
}
