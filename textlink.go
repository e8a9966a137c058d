package textlink

import (
	"github.com/textlink-sms/textlink-go/internal/api"
)

// Client is the TextLink API client. A zero-key client can be created and
// configured later with UseKey; operations invoked before a key is set fail
// locally with an API-key message and never reach the network.
type Client struct {
	apiClient *api.Client
}

// New creates a new TextLink client.
func New(opts ...Option) *Client {
	cfg := &clientConfig{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient := api.New(
		api.WithBaseURL(cfg.baseURL),
		api.WithTimeout(cfg.timeout),
	)
	if cfg.httpClient != nil {
		apiClient.SetHTTPClient(cfg.httpClient)
	}
	apiClient.SetAPIKey(cfg.apiKey)

	return &Client{apiClient: apiClient}
}

// UseKey sets the API key used by all subsequent operations. It overwrites
// any previously set key; last write wins. Setting the empty string is
// equivalent to never having set a key.
func (c *Client) UseKey(key string) {
	c.apiClient.SetAPIKey(key)
}

// APIKey returns the currently configured API key, or the empty string if
// none has been set.
func (c *Client) APIKey() string {
	return c.apiClient.APIKey()
}
