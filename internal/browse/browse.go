// Package browse is the final audit pass: a paginated table over the whole
// accepted set with per-row editing before the catalog is exported.
package browse

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"tunecard/internal/catalog"
	"tunecard/internal/logging"
	"tunecard/internal/prompt"
	"tunecard/internal/resolve"
)

const (
	minPageSize  = 10
	pageSizeStep = 10
	minYear      = 0
	maxYear      = 9999
)

// Resolver re-runs a recording lookup on operator-edited input.
type Resolver interface {
	Resolve(ctx context.Context, artist, title string) ([]resolve.RecordingMatch, error)
}

// Browser pages through the accepted set and applies row edits in place.
type Browser struct {
	resolver Resolver
	prompter prompt.Prompter
	out      io.Writer
	pageSize int
	logger   *slog.Logger
}

// New builds a browser. Page sizes below the floor are raised to it.
func New(resolver Resolver, prompter prompt.Prompter, out io.Writer, pageSize int, logger *slog.Logger) *Browser {
	if pageSize < minPageSize {
		pageSize = minPageSize
	}
	return &Browser{
		resolver: resolver,
		prompter: prompter,
		out:      out,
		pageSize: pageSize,
		logger:   logging.NewComponentLogger(logger, "browse"),
	}
}

// Run loops until the operator confirms completion, then sorts the set
// ascending by release year and returns it.
func (b *Browser) Run(ctx context.Context, songs []catalog.Song) ([]catalog.Song, error) {
	page := 0

	for {
		pageCount := (len(songs) + b.pageSize - 1) / b.pageSize
		if pageCount < 1 {
			pageCount = 1
		}
		if page > pageCount-1 {
			page = pageCount - 1
		}
		if page < 0 {
			page = 0
		}

		start := page * b.pageSize
		end := start + b.pageSize
		if end > len(songs) {
			end = len(songs)
		}
		b.renderPage(songs[start:end], page, pageCount, len(songs))

		input, err := b.prompter.ReadLine("row to edit, (a)back / (d)next page, (+/-) page size, (y) finish:")
		if err != nil {
			return nil, err
		}

		switch input {
		case "a":
			if page > 0 {
				page--
			}
		case "d":
			if page < pageCount-1 {
				page++
			}
		case "+":
			b.pageSize += pageSizeStep
		case "-":
			if b.pageSize-pageSizeStep >= minPageSize {
				b.pageSize -= pageSizeStep
			}
		case "y":
			catalog.SortByYear(songs)
			b.logger.Info("browsing finished", logging.Int("songs", len(songs)))
			return songs, nil
		default:
			row, convErr := strconv.Atoi(input)
			if convErr != nil || row < 1 || row > end-start {
				// Out-of-range selection redisplays the page unchanged.
				continue
			}
			if err := b.editSong(ctx, &songs[start+row-1]); err != nil {
				return nil, err
			}
		}
	}
}

func (b *Browser) renderPage(page []catalog.Song, pageIndex, pageCount, total int) {
	tw := table.NewWriter()
	tw.SetOutputMirror(b.out)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"#", "Year", "Artist", "Title", "Matched As"})
	for i, song := range page {
		tw.AppendRow(table.Row{i + 1, song.ReleaseYear, song.Artist, song.Title, song.MatchedTitle})
	}
	tw.Render()
	fmt.Fprintf(b.out, "page %d/%d, %d songs\n", pageIndex+1, pageCount, total)
}

// editSong runs the per-row menu until the operator returns to the page.
func (b *Browser) editSong(ctx context.Context, song *catalog.Song) error {
	for {
		fmt.Fprintf(b.out, "\n%s (%d)  raw: %q\n", song.Display(), song.ReleaseYear, song.RawTitle)
		fmt.Fprintln(b.out, "  1) search again with edited artist/title")
		fmt.Fprintln(b.out, "  2) edit artist")
		fmt.Fprintln(b.out, "  3) edit title")
		fmt.Fprintln(b.out, "  4) edit year")
		fmt.Fprintf(b.out, "  5) reset year to upload year %d\n", song.FallbackYear)
		fmt.Fprintln(b.out, "  6) back")

		choice, err := b.prompter.ReadInt("action [1-6]:", 1, 6)
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			if err := b.requery(ctx, song); err != nil {
				return err
			}
		case 2:
			artist, err := b.prompter.ReadLine("artist:")
			if err != nil {
				return err
			}
			song.Artist = artist
		case 3:
			title, err := b.prompter.ReadLine("title:")
			if err != nil {
				return err
			}
			song.Title = title
		case 4:
			year, err := b.prompter.ReadInt("release year:", minYear, maxYear)
			if err != nil {
				return err
			}
			song.ReleaseYear = year
		case 5:
			song.ResetToFallback()
		case 6:
			return nil
		}
	}
}

// requery mirrors the review pass's edited lookup. A failed call reports
// and leaves the song untouched so the menu redisplays.
func (b *Browser) requery(ctx context.Context, song *catalog.Song) error {
	artist, err := b.prompter.ReadLine("artist:")
	if err != nil {
		return err
	}
	title, err := b.prompter.ReadLine("title:")
	if err != nil {
		return err
	}

	matches, err := b.resolver.Resolve(ctx, artist, title)
	if err != nil {
		fmt.Fprintf(b.out, "lookup failed: %v\n", err)
		return nil
	}

	for i, match := range matches {
		line := resolve.Highlight(match.CanonicalTitle, artist, title)
		if match.Disambiguation != "" {
			line += " (" + match.Disambiguation + ")"
		}
		fmt.Fprintf(b.out, "  %d) %d  %s\n", i+1, match.Year, line)
	}
	choice, err := b.prompter.ReadInt(fmt.Sprintf("match [1-%d, 0 = none]:", len(matches)), 0, len(matches))
	if err != nil {
		return err
	}
	if choice == 0 {
		return nil
	}

	match := matches[choice-1]
	song.Artist = artist
	song.Title = title
	song.ReleaseYear = match.Year
	song.MatchedTitle = match.CanonicalTitle
	return nil
}
