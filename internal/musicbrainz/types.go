package musicbrainz

import "strings"

// Recording is one candidate from a recording search.
type Recording struct {
	Title            string         `json:"title"`
	FirstReleaseDate string         `json:"first-release-date"`
	Disambiguation   string         `json:"disambiguation"`
	ArtistCredit     []ArtistCredit `json:"artist-credit"`
}

// ArtistCredit is one credited artist on a recording.
type ArtistCredit struct {
	Name string `json:"name"`
}

// CanonicalTitle joins all credited artist names with ", " and appends the
// recording title after " - ".
func (r Recording) CanonicalTitle() string {
	names := make([]string, 0, len(r.ArtistCredit))
	for _, credit := range r.ArtistCredit {
		names = append(names, credit.Name)
	}
	return strings.Join(names, ", ") + " - " + r.Title
}

// searchResponse models the recording search payload. The service reports
// some failures inside a 200 body, so the error field is checked explicitly.
type searchResponse struct {
	Error      string      `json:"error"`
	Recordings []Recording `json:"recordings"`
}
