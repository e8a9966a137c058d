package textlink

import (
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the TextLink API endpoint.
	DefaultBaseURL = "https://textlinksms.com"

	// DefaultTimeout bounds each request. The remote API imposes no
	// timeout of its own; override with WithTimeout or WithHTTPClient.
	DefaultTimeout = 30 * time.Second
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// messageConfig holds optional fields for message-sending operations.
// Unset fields are serialized as JSON null on the wire.
type messageConfig struct {
	serviceName    *string
	expirationTime *int
	sourceCountry  *string
}

// Option configures the client.
type Option func(*clientConfig)

// MessageOption configures a message-sending operation.
type MessageOption func(*messageConfig)

// WithAPIKey sets the API key at construction. Equivalent to calling
// UseKey on the returned client.
func WithAPIKey(key string) Option {
	return func(c *clientConfig) {
		c.apiKey = key
	}
}

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client. The client's own timeout
// applies; WithTimeout is ignored when a custom client is supplied.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithServiceName sets the service name shown in the verification SMS
// ("Your <service name> code is ..."). Only used by SendVerificationSMS.
func WithServiceName(name string) MessageOption {
	return func(c *messageConfig) {
		c.serviceName = &name
	}
}

// WithExpirationTime sets how long the verification code stays valid.
// Truncated to whole seconds on the wire. Only used by SendVerificationSMS.
func WithExpirationTime(d time.Duration) MessageOption {
	return func(c *messageConfig) {
		seconds := int(d.Seconds())
		c.expirationTime = &seconds
	}
}

// WithSourceCountry sets the ISO country code used to pick the sending
// phone number.
func WithSourceCountry(country string) MessageOption {
	return func(c *messageConfig) {
		c.sourceCountry = &country
	}
}
