// Package feed fetches the raw entry list from the paginated playlist API.
//
// The client follows continuation tokens until the source reports no further
// pages and returns a flat ordered sequence of entries. Individual entries
// with unusable publish dates are skipped with a warning; a continuation
// token that fails to advance is treated as a malformed cursor and aborts
// the run.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tunecard/internal/logging"
	"tunecard/internal/services"
)

// Client provides access to the playlist items API.
type Client struct {
	apiKey     string
	baseURL    string
	pageSize   int
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates a playlist feed client.
func New(apiKey, baseURL string, pageSize int, logger *slog.Logger, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("feed api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("feed base url required")
	}
	if pageSize <= 0 {
		pageSize = 50
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		pageSize:   pageSize,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logging.NewComponentLogger(logger, "feed"),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// FetchPlaylist returns every entry of the playlist in source order,
// following continuation tokens to exhaustion.
func (c *Client) FetchPlaylist(ctx context.Context, playlistID string) ([]Entry, error) {
	playlistID = strings.TrimSpace(playlistID)
	if playlistID == "" {
		return nil, services.Wrap(services.ErrConfiguration, "feed", "fetch playlist", "playlist id required", nil)
	}

	var entries []Entry
	var skipped int
	pageToken := ""

	for {
		page, err := c.fetchPage(ctx, playlistID, pageToken)
		if err != nil {
			return nil, err
		}

		for _, item := range page.Items {
			entry, ok := c.toEntry(item)
			if !ok {
				skipped++
				continue
			}
			entries = append(entries, entry)
		}

		next := strings.TrimSpace(page.NextPageToken)
		if next == "" {
			break
		}
		if next == pageToken {
			return nil, services.Wrap(services.ErrConfiguration, "feed", "fetch playlist", fmt.Sprintf("continuation cursor %q did not advance", next), nil)
		}
		pageToken = next
	}

	if skipped > 0 {
		c.logger.Warn("skipped entries with unusable publish dates", logging.Int("skipped", skipped))
	}
	c.logger.Info("playlist fetched", logging.Int("entries", len(entries)))
	return entries, nil
}

func (c *Client) fetchPage(ctx context.Context, playlistID, pageToken string) (*playlistItemsResponse, error) {
	endpoint, err := url.Parse(c.baseURL + "/playlistItems")
	if err != nil {
		return nil, fmt.Errorf("parse feed url: %w", err)
	}
	params := url.Values{}
	params.Add("part", "snippet")
	params.Add("part", "contentDetails")
	params.Set("maxResults", strconv.Itoa(c.pageSize))
	params.Set("playlistId", playlistID)
	params.Set("key", c.apiKey)
	if pageToken != "" {
		params.Set("pageToken", pageToken)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, services.Wrap(services.ErrTransport, "feed", "fetch page", "execute request", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, services.Wrap(services.ErrTransport, "feed", "fetch page", fmt.Sprintf("status %d", resp.StatusCode), nil)
	}

	var payload playlistItemsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, services.Wrap(services.ErrTransport, "feed", "fetch page", "decode response", err)
	}
	return &payload, nil
}

// toEntry converts one playlist item, parsing the publish year from the
// leading digits of the publish date.
func (c *Client) toEntry(item playlistItem) (Entry, bool) {
	year, err := parseYear(item.ContentDetails.VideoPublishedAt)
	if err != nil {
		c.logger.Warn("dropping entry with unusable publish date",
			logging.String("video_id", item.ContentDetails.VideoID),
			logging.String("published_at", item.ContentDetails.VideoPublishedAt),
			logging.Error(err),
		)
		return Entry{}, false
	}
	return Entry{
		ID:            item.ContentDetails.VideoID,
		RawTitle:      item.Snippet.Title,
		ChannelName:   item.Snippet.VideoOwnerChannelTitle,
		PublishedYear: year,
	}, true
}

func parseYear(date string) (int, error) {
	date = strings.TrimSpace(date)
	if idx := strings.Index(date, "-"); idx >= 0 {
		date = date[:idx]
	}
	year, err := strconv.Atoi(date)
	if err != nil {
		return 0, fmt.Errorf("parse year from %q: %w", date, err)
	}
	return year, nil
}
