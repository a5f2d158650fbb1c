// Package normalize turns raw playlist titles and channel names into
// artist/title query candidates.
//
// Everything here is pure string work: no I/O, no failure modes. Empty
// results are valid and simply resolve to nothing downstream.
package normalize

import (
	"regexp"
	"strings"
)

const topicSuffix = " - Topic"

var (
	bracketRe  = regexp.MustCompile(`\[[^\]]*\]`)
	parenRe    = regexp.MustCompile(`\([^)]*\)`)
	pipeTailRe = regexp.MustCompile(`\|.*`)
)

// versionKeywords mark parenthesized spans that denote a meaningful alternate
// version of a track and must survive cleaning.
var versionKeywords = []string{"remix", "edit", "vip"}

// Candidate splits a raw video title into an artist/title query pair. Titles
// in the common "Artist - Title" form are split on the first separator;
// otherwise the channel name stands in for the artist.
func Candidate(rawTitle, channelName string) (artist, title string) {
	if idx := strings.Index(rawTitle, " - "); idx >= 0 {
		return CleanArtist(rawTitle[:idx]), CleanTitle(rawTitle[idx+3:])
	}
	return CleanArtist(strings.TrimSuffix(channelName, topicSuffix)), CleanTitle(rawTitle)
}

// CleanArtist strips bracketed spans, then discards any leading channel-handle
// prefix: if a '-' or '|' remains, only the text after the first such
// character is kept.
func CleanArtist(input string) string {
	out := strings.TrimSpace(bracketRe.ReplaceAllString(input, ""))
	if idx := strings.IndexAny(out, "-|"); idx >= 0 {
		out = out[idx+1:]
	}
	return strings.TrimSpace(out)
}

// CleanTitle strips bracketed spans unconditionally, keeps parenthesized
// spans only when they name an alternate version (remix/edit/vip), drops
// trailing metadata from the first '|' onward, and removes stray quotes.
func CleanTitle(input string) string {
	out := bracketRe.ReplaceAllString(input, "")
	out = parenRe.ReplaceAllStringFunc(out, func(span string) string {
		lowered := strings.ToLower(span)
		for _, keyword := range versionKeywords {
			if strings.Contains(lowered, keyword) {
				return span
			}
		}
		return ""
	})
	out = pipeTailRe.ReplaceAllString(out, "")
	out = strings.ReplaceAll(out, `"`, "")
	return strings.TrimSpace(out)
}
