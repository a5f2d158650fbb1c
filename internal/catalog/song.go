// Package catalog holds the curated song records and their on-disk snapshot.
package catalog

import (
	"sort"
	"strings"
)

// Song is one curated record destined for a printed card.
//
// SourceID and RawTitle identify the feed entry the record came from and
// never change after ingestion. MatchedTitle keeps the canonical recording
// title the year was resolved from, when there was one, so a reviewer can
// judge later whether the match was sound.
type Song struct {
	Artist       string
	Title        string
	ReleaseYear  int
	FallbackYear int
	SourceID     string
	RawTitle     string
	MatchedTitle string
}

// ResetToFallback discards the resolved year in favor of the upload year.
func (s *Song) ResetToFallback() {
	s.ReleaseYear = s.FallbackYear
	s.MatchedTitle = ""
}

// Display returns the record in "Artist - Title (Year)" form for menus.
func (s Song) Display() string {
	var b strings.Builder
	b.WriteString(s.Artist)
	b.WriteString(" - ")
	b.WriteString(s.Title)
	return b.String()
}

// SortByYear orders songs ascending by release year, with artist and then
// title breaking ties so the ordering is stable across runs.
func SortByYear(songs []Song) {
	sort.SliceStable(songs, func(i, j int) bool {
		if songs[i].ReleaseYear != songs[j].ReleaseYear {
			return songs[i].ReleaseYear < songs[j].ReleaseYear
		}
		if songs[i].Artist != songs[j].Artist {
			return songs[i].Artist < songs[j].Artist
		}
		return songs[i].Title < songs[j].Title
	})
}
