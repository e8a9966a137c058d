package textlink

import (
	"testing"
	"time"
)

func TestMessageOptions(t *testing.T) {
	cfg := &messageConfig{}
	for _, opt := range []MessageOption{
		WithServiceName("MyApp"),
		WithExpirationTime(90 * time.Second),
		WithSourceCountry("DE"),
	} {
		opt(cfg)
	}

	if cfg.serviceName == nil || *cfg.serviceName != "MyApp" {
		t.Errorf("serviceName = %v, want MyApp", cfg.serviceName)
	}
	if cfg.expirationTime == nil || *cfg.expirationTime != 90 {
		t.Errorf("expirationTime = %v, want 90", cfg.expirationTime)
	}
	if cfg.sourceCountry == nil || *cfg.sourceCountry != "DE" {
		t.Errorf("sourceCountry = %v, want DE", cfg.sourceCountry)
	}
}

func TestMessageOptions_Defaults(t *testing.T) {
	cfg := &messageConfig{}

	if cfg.serviceName != nil || cfg.expirationTime != nil || cfg.sourceCountry != nil {
		t.Errorf("zero messageConfig = %+v, want all nil", cfg)
	}
}

func TestWithExpirationTime_TruncatesToSeconds(t *testing.T) {
	cfg := &messageConfig{}
	WithExpirationTime(1500 * time.Millisecond)(cfg)

	if cfg.expirationTime == nil || *cfg.expirationTime != 1 {
		t.Errorf("expirationTime = %v, want 1", cfg.expirationTime)
	}
}

func TestClientOptions(t *testing.T) {
	cfg := &clientConfig{baseURL: DefaultBaseURL, timeout: DefaultTimeout}
	for _, opt := range []Option{
		WithAPIKey("abc"),
		WithBaseURL("https://example.com"),
		WithTimeout(time.Minute),
	} {
		opt(cfg)
	}

	if cfg.apiKey != "abc" {
		t.Errorf("apiKey = %q, want abc", cfg.apiKey)
	}
	if cfg.baseURL != "https://example.com" {
		t.Errorf("baseURL = %q, want https://example.com", cfg.baseURL)
	}
	if cfg.timeout != time.Minute {
		t.Errorf("timeout = %v, want 1m", cfg.timeout)
	}
}
