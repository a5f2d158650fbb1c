package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tunecard/internal/catalog"
)

func testOptions(t *testing.T) Options {
	t.Helper()
	return Options{
		OutputPath: filepath.Join(t.TempDir(), "cards.svg"),
		FontFamily: "Helvetica",
		Columns:    3,
		Rows:       4,
	}
}

func TestRenderSingleSheet(t *testing.T) {
	opts := testOptions(t)
	renderer := New(opts, nil)

	songs := []catalog.Song{
		{Artist: "Queen", Title: "Bohemian Rhapsody", ReleaseYear: 1975},
		{Artist: "Mo & Co", Title: `Songs <"Quoted">`, ReleaseYear: 1999},
	}
	paths, err := renderer.Render(songs)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(paths) != 1 || paths[0] != opts.OutputPath {
		t.Fatalf("paths = %v", paths)
	}

	data, err := os.ReadFile(paths[0])
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	sheet := string(data)
	if !strings.Contains(sheet, ">1975</text>") {
		t.Errorf("year missing:\n%s", sheet)
	}
	if !strings.Contains(sheet, "Mo &amp; Co") || !strings.Contains(sheet, "&lt;&quot;Quoted&quot;&gt;") {
		t.Errorf("text not escaped:\n%s", sheet)
	}
}

func TestRenderSplitsAcrossSheets(t *testing.T) {
	opts := testOptions(t)
	opts.Columns = 2
	opts.Rows = 2
	renderer := New(opts, nil)

	songs := make([]catalog.Song, 5)
	for i := range songs {
		songs[i] = catalog.Song{Artist: "A", Title: "T", ReleaseYear: 1990 + i}
	}
	paths, err := renderer.Render(songs)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("paths = %v", paths)
	}
	if !strings.HasSuffix(paths[1], "cards-2.svg") {
		t.Errorf("second sheet path = %q", paths[1])
	}
}

func TestRenderEmbedsConfiguredAssets(t *testing.T) {
	opts := testOptions(t)
	dir := t.TempDir()
	opts.IconPath = filepath.Join(dir, "icon.svg")
	opts.DesignPath = filepath.Join(dir, "design.svg")
	if err := os.WriteFile(opts.IconPath, []byte(`<circle cx="50" cy="50" r="40"/>`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(opts.DesignPath, []byte(`<rect id="design-bg" width="100" height="100"/>`), 0o644); err != nil {
		t.Fatal(err)
	}

	paths, err := New(opts, nil).Render([]catalog.Song{{Artist: "A", Title: "T", ReleaseYear: 2001}})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	data, _ := os.ReadFile(paths[0])
	if !strings.Contains(string(data), "design-bg") || !strings.Contains(string(data), "<circle") {
		t.Errorf("assets not embedded:\n%s", data)
	}
}

func TestRenderMissingConfiguredAssetFails(t *testing.T) {
	opts := testOptions(t)
	opts.IconPath = filepath.Join(t.TempDir(), "nope.svg")

	if _, err := New(opts, nil).Render([]catalog.Song{{ReleaseYear: 2000}}); err == nil {
		t.Fatal("expected error for unreadable asset")
	}
}

func TestRenderRejectsDegenerateGrid(t *testing.T) {
	opts := testOptions(t)
	opts.Columns = 0

	if _, err := New(opts, nil).Render([]catalog.Song{{ReleaseYear: 2000}}); err == nil {
		t.Fatal("expected error for zero-column grid")
	}
}
