package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeState(); err != nil {
		return err
	}
	if err := c.normalizeFeed(); err != nil {
		return err
	}
	if err := c.normalizeLookup(); err != nil {
		return err
	}
	c.normalizeBrowser()
	if err := c.normalizeRender(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeState() error {
	var err error
	if strings.TrimSpace(c.State.Dir) == "" {
		c.State.Dir = defaultStateDir
	}
	if c.State.Dir, err = expandPath(c.State.Dir); err != nil {
		return fmt.Errorf("state.dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeFeed() error {
	if c.Feed.APIKey == "" {
		if value, ok := os.LookupEnv("YOUTUBE_API_KEY"); ok {
			c.Feed.APIKey = strings.TrimSpace(value)
		}
	}
	c.Feed.APIKey = strings.TrimSpace(c.Feed.APIKey)
	c.Feed.BaseURL = strings.TrimSpace(c.Feed.BaseURL)
	if c.Feed.BaseURL == "" {
		c.Feed.BaseURL = defaultFeedBaseURL
	}
	c.Feed.PlaylistID = strings.TrimSpace(c.Feed.PlaylistID)
	if c.Feed.PageSize <= 0 {
		c.Feed.PageSize = defaultFeedPageSize
	}
	return nil
}

func (c *Config) normalizeLookup() error {
	c.Lookup.BaseURL = strings.TrimSpace(c.Lookup.BaseURL)
	if c.Lookup.BaseURL == "" {
		c.Lookup.BaseURL = defaultLookupBaseURL
	}
	c.Lookup.UserAgent = strings.TrimSpace(c.Lookup.UserAgent)
	if c.Lookup.UserAgent == "" {
		c.Lookup.UserAgent = defaultLookupAgent
	}
	if c.Lookup.RequestDelayMS <= 0 {
		c.Lookup.RequestDelayMS = defaultRequestDelayMS
	}
	if c.Lookup.TimeoutSeconds <= 0 {
		c.Lookup.TimeoutSeconds = defaultLookupTimeout
	}
	var err error
	if strings.TrimSpace(c.Lookup.CachePath) == "" {
		c.Lookup.CachePath = filepath.Join(c.State.Dir, "lookupcache.db")
	}
	if c.Lookup.CachePath, err = expandPath(c.Lookup.CachePath); err != nil {
		return fmt.Errorf("lookup.cache_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeBrowser() {
	if c.Browser.PageSize < 10 {
		c.Browser.PageSize = defaultBrowserPage
	}
}

func (c *Config) normalizeRender() error {
	var err error
	if strings.TrimSpace(c.Render.OutputPath) == "" {
		c.Render.OutputPath = defaultRenderOutput
	}
	if c.Render.OutputPath, err = expandPath(c.Render.OutputPath); err != nil {
		return fmt.Errorf("render.output_path: %w", err)
	}
	if strings.TrimSpace(c.Render.IconPath) != "" {
		if c.Render.IconPath, err = expandPath(c.Render.IconPath); err != nil {
			return fmt.Errorf("render.icon_path: %w", err)
		}
	}
	if strings.TrimSpace(c.Render.DesignPath) != "" {
		if c.Render.DesignPath, err = expandPath(c.Render.DesignPath); err != nil {
			return fmt.Errorf("render.design_path: %w", err)
		}
	}
	if strings.TrimSpace(c.Render.FontFamily) == "" {
		c.Render.FontFamily = defaultFontFamily
	}
	if c.Render.Columns <= 0 {
		c.Render.Columns = defaultRenderColumns
	}
	if c.Render.Rows <= 0 {
		c.Render.Rows = defaultRenderRows
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
