package resolve

import (
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/text"
)

func TestHighlightMarksMatchedSegments(t *testing.T) {
	text.EnableColors()
	t.Cleanup(text.DisableColors)

	out := Highlight("Daft Punk - One More Time", "daft punk", "one more time")
	if !strings.Contains(out, text.FgGreen.Sprint("Daft Punk")) {
		t.Errorf("artist segment not highlighted: %q", out)
	}
	if !strings.Contains(out, text.FgGreen.Sprint("One More Time")) {
		t.Errorf("title segment not highlighted: %q", out)
	}
}

func TestHighlightLeavesMismatchesAlone(t *testing.T) {
	text.EnableColors()
	t.Cleanup(text.DisableColors)

	out := Highlight("Daft Punk - One More Time", "someone else", "different song")
	if out != "Daft Punk - One More Time" {
		t.Errorf("unexpected decoration: %q", out)
	}
}

func TestHighlightWithoutSeparator(t *testing.T) {
	if out := Highlight("no separator here", "a", "b"); out != "no separator here" {
		t.Errorf("out = %q", out)
	}
}
