package resolve

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
)

// Highlight colorizes the parts of a detected canonical title that also
// appear in the query the user entered. Display decoration only; it plays no
// part in ranking.
func Highlight(canonicalTitle, queryArtist, queryTitle string) string {
	artistPart, titlePart, ok := strings.Cut(canonicalTitle, " - ")
	if !ok {
		return canonicalTitle
	}

	out := canonicalTitle
	for _, name := range strings.Split(artistPart, ", ") {
		if name == "" {
			continue
		}
		if strings.Contains(strings.ToLower(queryArtist), strings.ToLower(name)) {
			out = strings.Replace(out, name, text.FgGreen.Sprint(name), 1)
		}
	}
	if titlePart != "" && strings.Contains(strings.ToLower(queryTitle), strings.ToLower(titlePart)) {
		out = strings.Replace(out, titlePart, text.FgGreen.Sprint(titlePart), 1)
	}
	return out
}
