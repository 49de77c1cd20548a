package config

import "time"

const (
	defaultAPIBaseURL   = "http://localhost:8000/api/v1"
	defaultWSURL        = "ws://localhost:8000/api/v1/ws"
	defaultPollInterval = 30 * time.Second
	defaultFeedInterval = 2 * time.Second
)

// Config holds the dashboard runtime configuration.
type Config struct {
	APIBaseURL   string   `json:"api_base_url"`
	WSURL        string   `json:"ws_url"`
	PollInterval Duration `json:"poll_interval"`
	FeedInterval Duration `json:"feed_interval"`
}

// Validate applies local-development defaults for any unset field.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		c.APIBaseURL = defaultAPIBaseURL
	}

	if c.WSURL == "" {
		c.WSURL = defaultWSURL
	}

	if c.PollInterval == 0 {
		c.PollInterval = Duration(defaultPollInterval)
	}

	if c.FeedInterval == 0 {
		c.FeedInterval = Duration(defaultFeedInterval)
	}

	return nil
}
