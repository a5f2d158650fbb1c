package config

const (
	defaultStateDir       = "~/.local/share/tunecard"
	defaultFeedBaseURL    = "https://youtube.googleapis.com/youtube/v3"
	defaultFeedPageSize   = 50
	defaultLookupBaseURL  = "https://musicbrainz.org/ws/2"
	defaultLookupAgent    = "tunecard/1.0 (https://github.com/tunecard/tunecard)"
	defaultRequestDelayMS = 1050
	defaultLookupTimeout  = 30
	defaultBrowserPage    = 20
	defaultRenderOutput   = "cards.svg"
	defaultFontFamily     = "sans-serif"
	defaultRenderColumns  = 3
	defaultRenderRows     = 4
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Feed: Feed{
			BaseURL:  defaultFeedBaseURL,
			PageSize: defaultFeedPageSize,
		},
		Lookup: Lookup{
			BaseURL:        defaultLookupBaseURL,
			UserAgent:      defaultLookupAgent,
			RequestDelayMS: defaultRequestDelayMS,
			TimeoutSeconds: defaultLookupTimeout,
			CacheEnabled:   true,
		},
		State: State{
			Dir: defaultStateDir,
		},
		Browser: Browser{
			PageSize: defaultBrowserPage,
		},
		Render: Render{
			OutputPath: defaultRenderOutput,
			FontFamily: defaultFontFamily,
			Columns:    defaultRenderColumns,
			Rows:       defaultRenderRows,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
