package ingest

import (
	"context"
	"io"
	"strings"
	"testing"

	"tunecard/internal/catalog"
	"tunecard/internal/feed"
	"tunecard/internal/resolve"
	"tunecard/internal/review"
	"tunecard/internal/services"
	"tunecard/internal/testsupport"
)

// mapResolver answers by artist name and reports NotFound for the rest.
type mapResolver struct {
	matches map[string][]resolve.RecordingMatch
}

func (r *mapResolver) Resolve(_ context.Context, artist, _ string) ([]resolve.RecordingMatch, error) {
	if matches, ok := r.matches[artist]; ok {
		return matches, nil
	}
	return nil, services.Wrap(services.ErrNotFound, "resolver", "search", "no candidates", nil)
}

func testEntries() []feed.Entry {
	return []feed.Entry{
		{ID: "v1", RawTitle: "Daft Punk - One More Time [Official Video]", ChannelName: "Daft Punk", PublishedYear: 2009},
		{ID: "v2", RawTitle: "Bohemian Rhapsody", ChannelName: "Queen - Topic", PublishedYear: 2008},
		{ID: "v3", RawTitle: "Totally Obscure Demo", ChannelName: "Basement Tapes", PublishedYear: 2019},
	}
}

func testResolver() *mapResolver {
	return &mapResolver{matches: map[string][]resolve.RecordingMatch{
		"Daft Punk": {{Year: 2000, CanonicalTitle: "Daft Punk - One More Time"}},
		"Queen":     {{Year: 1975, CanonicalTitle: "Queen - Bohemian Rhapsody"}},
	}}
}

func TestRunSplitsAcceptedAndUnresolved(t *testing.T) {
	ingestor := New(testResolver(), io.Discard, nil)

	result, err := ingestor.Run(context.Background(), testEntries())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Accepted) != 2 {
		t.Fatalf("accepted = %d", len(result.Accepted))
	}
	if len(result.Unresolved) != 1 {
		t.Fatalf("unresolved = %d", len(result.Unresolved))
	}

	first := result.Accepted[0]
	if first.Artist != "Daft Punk" || first.Title != "One More Time" {
		t.Errorf("normalization lost: %+v", first)
	}
	if first.ReleaseYear != 2000 || first.MatchedTitle != "Daft Punk - One More Time" {
		t.Errorf("match not adopted: %+v", first)
	}
	if first.FallbackYear != 2009 || first.SourceID != "v1" {
		t.Errorf("provenance lost: %+v", first)
	}

	deferred := result.Unresolved[0]
	if deferred.ReleaseYear != 0 || deferred.FallbackYear != 2019 {
		t.Errorf("deferred song = %+v", deferred)
	}
}

func TestRunAbortsOnNonLookupError(t *testing.T) {
	ingestor := New(testResolver(), io.Discard, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	failing := resolverFunc(func(ctx context.Context, _, _ string) ([]resolve.RecordingMatch, error) {
		return nil, ctx.Err()
	})
	ingestor.resolver = failing

	if _, err := ingestor.Run(ctx, testEntries()); err == nil {
		t.Fatal("expected context error to abort the pass")
	}
}

type resolverFunc func(ctx context.Context, artist, title string) ([]resolve.RecordingMatch, error)

func (f resolverFunc) Resolve(ctx context.Context, artist, title string) ([]resolve.RecordingMatch, error) {
	return f(ctx, artist, title)
}

// Full pipeline: three entries, two resolvable, one reviewed by hand.
func TestIngestThenReviewProducesSortedCatalog(t *testing.T) {
	ctx := context.Background()
	resolver := testResolver()

	ingestor := New(resolver, io.Discard, nil)
	result, err := ingestor.Run(ctx, testEntries())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// Accept the fallback year for the one unresolved song.
	session := review.NewSession(resolver, testsupport.NewScriptedPrompter("1"), &strings.Builder{}, nil)
	decided, err := session.Run(ctx, result.Unresolved)
	if err != nil {
		t.Fatalf("review: %v", err)
	}

	songs := append(result.Accepted, decided...)
	catalog.SortByYear(songs)

	if len(songs) != 3 {
		t.Fatalf("catalog has %d songs", len(songs))
	}
	for i, song := range songs {
		if song.ReleaseYear == 0 {
			t.Errorf("song %d has no release year: %+v", i, song)
		}
		if i > 0 && songs[i-1].ReleaseYear > song.ReleaseYear {
			t.Errorf("not sorted at %d: %d > %d", i, songs[i-1].ReleaseYear, song.ReleaseYear)
		}
	}
	if songs[0].ReleaseYear != 1975 || songs[len(songs)-1].ReleaseYear != 2019 {
		t.Errorf("unexpected year range: first %d last %d", songs[0].ReleaseYear, songs[len(songs)-1].ReleaseYear)
	}
}
