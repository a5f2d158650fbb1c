package browse

import (
	"context"
	"strings"
	"testing"

	"tunecard/internal/catalog"
	"tunecard/internal/resolve"
	"tunecard/internal/services"
	"tunecard/internal/testsupport"
)

type stubResolver struct {
	matches []resolve.RecordingMatch
	err     error
}

func (r *stubResolver) Resolve(_ context.Context, _, _ string) ([]resolve.RecordingMatch, error) {
	return r.matches, r.err
}

func catalogOf(n int) []catalog.Song {
	songs := make([]catalog.Song, n)
	for i := range songs {
		songs[i] = catalog.Song{
			Artist:       "Artist",
			Title:        "Song " + string(rune('A'+i%26)),
			ReleaseYear:  2000 - i,
			FallbackYear: 2015,
			RawTitle:     "raw",
		}
	}
	return songs
}

func TestRunFinishSortsByYear(t *testing.T) {
	prompter := testsupport.NewScriptedPrompter("y")
	browser := New(&stubResolver{}, prompter, &strings.Builder{}, 10, nil)

	songs, err := browser.Run(context.Background(), catalogOf(5))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i := 1; i < len(songs); i++ {
		if songs[i-1].ReleaseYear > songs[i].ReleaseYear {
			t.Fatalf("not sorted: %d before %d", songs[i-1].ReleaseYear, songs[i].ReleaseYear)
		}
	}
}

func TestRunOutOfRangeRowIsNoOp(t *testing.T) {
	// Row 0 and row pageSize+1 must redisplay the page without mutating.
	prompter := testsupport.NewScriptedPrompter("0", "11", "y")
	browser := New(&stubResolver{}, prompter, &strings.Builder{}, 10, nil)

	before := catalogOf(5)
	want := make([]catalog.Song, len(before))
	copy(want, before)
	catalog.SortByYear(want)

	songs, err := browser.Run(context.Background(), before)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(songs) != len(want) {
		t.Fatalf("len = %d", len(songs))
	}
	for i := range want {
		if songs[i] != want[i] {
			t.Errorf("song %d = %+v, want %+v", i, songs[i], want[i])
		}
	}
	if !prompter.Exhausted() {
		t.Error("script not fully consumed")
	}
}

func TestRunPageNavigationClamps(t *testing.T) {
	// 25 songs at page size 10 gives 3 pages. Retreating at page 0 and
	// advancing past the last page must both stay put.
	prompter := testsupport.NewScriptedPrompter("a", "d", "d", "d", "d", "y")
	var out strings.Builder
	browser := New(&stubResolver{}, prompter, &out, 10, nil)

	if _, err := browser.Run(context.Background(), catalogOf(25)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "page 3/3") {
		t.Errorf("never reached last page:\n%s", out.String())
	}
	if strings.Contains(out.String(), "page 4/") {
		t.Errorf("advanced past last page:\n%s", out.String())
	}
}

func TestRunPageSizeAdjustments(t *testing.T) {
	// Narrowing below the floor of 10 is refused; widening adds 10.
	prompter := testsupport.NewScriptedPrompter("-", "+", "y")
	var out strings.Builder
	browser := New(&stubResolver{}, prompter, &out, 10, nil)

	if _, err := browser.Run(context.Background(), catalogOf(25)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "page 1/3") {
		t.Errorf("floor not enforced:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "page 1/2") {
		t.Errorf("widened size not applied:\n%s", out.String())
	}
}

func TestEditSongDirectFields(t *testing.T) {
	// Row 1, edit artist, edit title, edit year, back, finish.
	prompter := testsupport.NewScriptedPrompter(
		"1",
		"2", "New Artist",
		"3", "New Title",
		"4", "1971",
		"6",
		"y",
	)
	browser := New(&stubResolver{}, prompter, &strings.Builder{}, 10, nil)

	songs, err := browser.Run(context.Background(), catalogOf(1))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	song := songs[0]
	if song.Artist != "New Artist" || song.Title != "New Title" || song.ReleaseYear != 1971 {
		t.Errorf("song = %+v", song)
	}
}

func TestEditSongResetToFallback(t *testing.T) {
	prompter := testsupport.NewScriptedPrompter("1", "5", "6", "y")
	browser := New(&stubResolver{}, prompter, &strings.Builder{}, 10, nil)

	songs, err := browser.Run(context.Background(), catalogOf(1))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if songs[0].ReleaseYear != songs[0].FallbackYear {
		t.Errorf("ReleaseYear = %d, want fallback %d", songs[0].ReleaseYear, songs[0].FallbackYear)
	}
}

func TestEditSongRequeryAdoptsMatch(t *testing.T) {
	resolver := &stubResolver{matches: []resolve.RecordingMatch{
		{Year: 1988, CanonicalTitle: "Real Artist - Real Song"},
	}}
	prompter := testsupport.NewScriptedPrompter(
		"1",
		"1", "Real Artist", "Real Song", "1",
		"6",
		"y",
	)
	browser := New(resolver, prompter, &strings.Builder{}, 10, nil)

	songs, err := browser.Run(context.Background(), catalogOf(1))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	song := songs[0]
	if song.ReleaseYear != 1988 || song.MatchedTitle != "Real Artist - Real Song" {
		t.Errorf("song = %+v", song)
	}
}

func TestEditSongRequeryFailureRedisplaysMenu(t *testing.T) {
	resolver := &stubResolver{err: services.Wrap(services.ErrTransport, "lookup", "search recordings", "status 503", nil)}
	prompter := testsupport.NewScriptedPrompter(
		"1",
		"1", "a", "b",
		"6",
		"y",
	)
	var out strings.Builder
	browser := New(resolver, prompter, &out, 10, nil)

	songs, err := browser.Run(context.Background(), catalogOf(1))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if songs[0].Artist != "Artist" {
		t.Errorf("song mutated on failed lookup: %+v", songs[0])
	}
	if !strings.Contains(out.String(), "lookup failed") {
		t.Errorf("failure not reported:\n%s", out.String())
	}
}
