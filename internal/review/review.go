// Package review walks the unresolved queue after ingestion and gets every
// deferred song to a finalized release year.
package review

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"tunecard/internal/catalog"
	"tunecard/internal/logging"
	"tunecard/internal/prompt"
	"tunecard/internal/resolve"
)

// BulkMode is a sticky override that answers all remaining entries the same
// way once the operator picks a "for all remaining" action.
type BulkMode int

const (
	BulkNone BulkMode = iota
	BulkFallback
	BulkManual
)

const (
	minYear = 0
	maxYear = 9999
)

// Resolver re-runs a recording lookup on operator-edited input.
type Resolver interface {
	Resolve(ctx context.Context, artist, title string) ([]resolve.RecordingMatch, error)
}

// Session drives one pass over the unresolved queue.
type Session struct {
	resolver Resolver
	prompter prompt.Prompter
	out      io.Writer
	logger   *slog.Logger
}

// NewSession builds a review session.
func NewSession(resolver Resolver, prompter prompt.Prompter, out io.Writer, logger *slog.Logger) *Session {
	return &Session{
		resolver: resolver,
		prompter: prompter,
		out:      out,
		logger:   logging.NewComponentLogger(logger, "review"),
	}
}

// Run decides every song in the queue and returns them in queue order.
// Songs come back with a finalized ReleaseYear; the caller appends them to
// the accepted set without re-sorting.
func (s *Session) Run(ctx context.Context, unresolved []catalog.Song) ([]catalog.Song, error) {
	mode := BulkNone
	decided := make([]catalog.Song, 0, len(unresolved))

	for i := range unresolved {
		song := unresolved[i]
		remaining := len(unresolved) - i

		switch mode {
		case BulkFallback:
			song.ReleaseYear = song.FallbackYear
		case BulkManual:
			year, err := s.promptManualYear(song)
			if err != nil {
				return nil, err
			}
			song.ReleaseYear = year
		default:
			var err error
			song, mode, err = s.decide(ctx, song, remaining)
			if err != nil {
				return nil, err
			}
		}

		decided = append(decided, song)
		s.logger.Info("song decided",
			logging.String("artist", song.Artist),
			logging.String("title", song.Title),
			logging.Int("release_year", song.ReleaseYear))
	}
	return decided, nil
}

// decide runs the interactive menu for one song until it is resolved.
// A failed re-query redisplays the menu instead of advancing.
func (s *Session) decide(ctx context.Context, song catalog.Song, remaining int) (catalog.Song, BulkMode, error) {
	for {
		fmt.Fprintf(s.out, "\nno match for %q\n", song.RawTitle)
		fmt.Fprintf(s.out, "current guess: %s (upload year %d, %d left to review)\n", song.Display(), song.FallbackYear, remaining)
		fmt.Fprintf(s.out, "  1) use upload year %d\n", song.FallbackYear)
		fmt.Fprintln(s.out, "  2) enter a year")
		fmt.Fprintln(s.out, "  3) search again with edited artist/title")
		fmt.Fprintln(s.out, "  4) use upload year for this and all remaining")
		fmt.Fprintln(s.out, "  5) enter years for this and all remaining")

		choice, err := s.prompter.ReadInt("action [1-5]:", 1, 5)
		if err != nil {
			return song, BulkNone, err
		}

		switch choice {
		case 1:
			song.ReleaseYear = song.FallbackYear
			return song, BulkNone, nil
		case 2:
			year, err := s.prompter.ReadInt("release year:", minYear, maxYear)
			if err != nil {
				return song, BulkNone, err
			}
			song.ReleaseYear = year
			return song, BulkNone, nil
		case 3:
			updated, ok, err := s.requery(ctx, song)
			if err != nil {
				return song, BulkNone, err
			}
			if ok {
				return updated, BulkNone, nil
			}
			// fall through and redisplay the menu
		case 4:
			song.ReleaseYear = song.FallbackYear
			return song, BulkFallback, nil
		case 5:
			year, err := s.promptManualYear(song)
			if err != nil {
				return song, BulkNone, err
			}
			song.ReleaseYear = year
			return song, BulkManual, nil
		}
	}
}

func (s *Session) promptManualYear(song catalog.Song) (int, error) {
	fmt.Fprintf(s.out, "\n%s (raw: %q, upload year %d)\n", song.Display(), song.RawTitle, song.FallbackYear)
	return s.prompter.ReadInt("release year:", minYear, maxYear)
}

// requery runs the resolver on edited input and lets the operator pick a
// match. Returns ok=false when the lookup failed or no match was chosen.
func (s *Session) requery(ctx context.Context, song catalog.Song) (catalog.Song, bool, error) {
	artist, err := s.prompter.ReadLine("artist:")
	if err != nil {
		return song, false, err
	}
	title, err := s.prompter.ReadLine("title:")
	if err != nil {
		return song, false, err
	}

	matches, err := s.resolver.Resolve(ctx, artist, title)
	if err != nil {
		fmt.Fprintf(s.out, "lookup failed: %v\n", err)
		return song, false, nil
	}

	choice, err := pickMatch(s.prompter, s.out, matches, artist, title)
	if err != nil {
		return song, false, err
	}
	if choice == nil {
		return song, false, nil
	}

	song.Artist = artist
	song.Title = title
	song.ReleaseYear = choice.Year
	song.MatchedTitle = choice.CanonicalTitle
	return song, true, nil
}

// pickMatch lists the matches and returns the chosen one, or nil when the
// operator rejects them all.
func pickMatch(prompter prompt.Prompter, out io.Writer, matches []resolve.RecordingMatch, artist, title string) (*resolve.RecordingMatch, error) {
	for i, match := range matches {
		line := resolve.Highlight(match.CanonicalTitle, artist, title)
		if match.Disambiguation != "" {
			line += " (" + match.Disambiguation + ")"
		}
		fmt.Fprintf(out, "  %d) %d  %s\n", i+1, match.Year, line)
	}
	choice, err := prompter.ReadInt(fmt.Sprintf("match [1-%d, 0 = none]:", len(matches)), 0, len(matches))
	if err != nil {
		return nil, err
	}
	if choice == 0 {
		return nil, nil
	}
	return &matches[choice-1], nil
}
