package feed

// Entry is one raw playlist item, immutable once fetched.
type Entry struct {
	ID            string
	RawTitle      string
	ChannelName   string
	PublishedYear int
}

// playlistItemsResponse models one page of the playlist items endpoint.
type playlistItemsResponse struct {
	NextPageToken string         `json:"nextPageToken"`
	Items         []playlistItem `json:"items"`
}

type playlistItem struct {
	Snippet struct {
		Title                  string `json:"title"`
		VideoOwnerChannelTitle string `json:"videoOwnerChannelTitle"`
	} `json:"snippet"`
	ContentDetails struct {
		VideoID          string `json:"videoId"`
		VideoPublishedAt string `json:"videoPublishedAt"`
	} `json:"contentDetails"`
}
