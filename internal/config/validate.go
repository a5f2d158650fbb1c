package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateFeed(); err != nil {
		return err
	}
	if err := c.validateLookup(); err != nil {
		return err
	}
	if err := c.validateBrowser(); err != nil {
		return err
	}
	if err := c.validateRender(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateFeed() error {
	if c.Feed.APIKey == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/tunecard/config.toml"
		}
		return fmt.Errorf("feed.api_key is required. Set YOUTUBE_API_KEY env var or edit %s (create with 'tunecard config init')", defaultPath)
	}
	if c.Feed.PageSize < 1 || c.Feed.PageSize > 50 {
		return errors.New("feed.page_size must be between 1 and 50")
	}
	return nil
}

func (c *Config) validateLookup() error {
	if c.Lookup.RequestDelayMS < 1000 {
		return errors.New("lookup.request_delay_ms must be at least 1000 (the lookup service allows about one request per second)")
	}
	if c.Lookup.TimeoutSeconds <= 0 {
		return errors.New("lookup.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateBrowser() error {
	if c.Browser.PageSize < 10 {
		return errors.New("browser.page_size must be at least 10")
	}
	return nil
}

func (c *Config) validateRender() error {
	if c.Render.Columns < 1 {
		return errors.New("render.columns must be positive")
	}
	if c.Render.Rows < 1 {
		return errors.New("render.rows must be positive")
	}
	return nil
}
