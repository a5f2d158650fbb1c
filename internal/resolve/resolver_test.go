package resolve

import (
	"context"
	"errors"
	"testing"

	"tunecard/internal/musicbrainz"
	"tunecard/internal/services"
)

type stubSearcher struct {
	recordings []musicbrainz.Recording
	err        error
}

func (s *stubSearcher) SearchRecordings(_ context.Context, _, _ string) ([]musicbrainz.Recording, error) {
	return s.recordings, s.err
}

func recording(artist, title, date string) musicbrainz.Recording {
	return musicbrainz.Recording{
		Title:            title,
		FirstReleaseDate: date,
		ArtistCredit:     []musicbrainz.ArtistCredit{{Name: artist}},
	}
}

func TestResolveSortsByYearThenTitle(t *testing.T) {
	searcher := &stubSearcher{recordings: []musicbrainz.Recording{
		recording("Zeta", "Song", "2005-01-01"),
		recording("Alpha", "Song", "2005-03-09"),
		recording("Beta", "Song", "1999-11-13"),
	}}
	resolver := New(searcher, nil)

	matches, err := resolver.Resolve(context.Background(), "x", "y")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("got %d matches", len(matches))
	}
	for i := 1; i < len(matches); i++ {
		if matches[i-1].Year > matches[i].Year {
			t.Errorf("years out of order: %d before %d", matches[i-1].Year, matches[i].Year)
		}
		if matches[i-1].Year == matches[i].Year && matches[i-1].CanonicalTitle > matches[i].CanonicalTitle {
			t.Errorf("titles out of order within year: %q before %q", matches[i-1].CanonicalTitle, matches[i].CanonicalTitle)
		}
	}
	if matches[0].Year != 1999 || matches[0].CanonicalTitle != "Beta - Song" {
		t.Errorf("first match = %+v", matches[0])
	}
}

func TestResolveDropsNullReleaseDates(t *testing.T) {
	searcher := &stubSearcher{recordings: []musicbrainz.Recording{
		recording("Artist", "Undated", ""),
		recording("Artist", "Dated", "2012-05-01"),
	}}
	resolver := New(searcher, nil)

	matches, err := resolver.Resolve(context.Background(), "x", "y")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(matches) != 1 || matches[0].CanonicalTitle != "Artist - Dated" {
		t.Fatalf("matches = %+v", matches)
	}
}

func TestResolveDropsUnparseableDates(t *testing.T) {
	searcher := &stubSearcher{recordings: []musicbrainz.Recording{
		recording("Artist", "Broken", "????"),
		recording("Artist", "Bare Year", "1987"),
	}}
	resolver := New(searcher, nil)

	matches, err := resolver.Resolve(context.Background(), "x", "y")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(matches) != 1 || matches[0].Year != 1987 {
		t.Fatalf("matches = %+v", matches)
	}
}

func TestResolveNotFound(t *testing.T) {
	tests := []struct {
		name       string
		recordings []musicbrainz.Recording
	}{
		{"no candidates", nil},
		{"only undated candidates", []musicbrainz.Recording{recording("Artist", "Undated", "")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := New(&stubSearcher{recordings: tt.recordings}, nil)
			_, err := resolver.Resolve(context.Background(), "x", "y")
			if !errors.Is(err, services.ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
		})
	}
}

func TestResolvePropagatesTransportErrors(t *testing.T) {
	wrapped := services.Wrap(services.ErrTransport, "lookup", "search recordings", "status 503", nil)
	resolver := New(&stubSearcher{err: wrapped}, nil)

	_, err := resolver.Resolve(context.Background(), "x", "y")
	if !errors.Is(err, services.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestParseReleaseYear(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"2000-11-13", 2000, false},
		{"1975", 1975, false},
		{"abcd-01-01", 0, true},
	}
	for _, tt := range tests {
		got, err := parseReleaseYear(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseReleaseYear(%q) error = %v", tt.input, err)
			continue
		}
		if err != nil && !errors.Is(err, services.ErrDateParse) {
			t.Errorf("parseReleaseYear(%q) should tag ErrDateParse, got %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("parseReleaseYear(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
