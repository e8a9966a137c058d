package textlink

import (
	"context"

	"github.com/textlink-sms/textlink-go/internal/api"
)

// SendSMSResult is the outcome of a SendSMS call.
type SendSMSResult struct {
	// OK reports whether the message was accepted.
	OK bool `json:"ok"`
	// Queued reports whether the message was queued for delivery.
	Queued bool `json:"queued,omitempty"`
	// Message is a human-readable description of the outcome.
	Message string `json:"message,omitempty"`
}

// SendSMS sends a plain text message to phoneNumber. WithSourceCountry is
// the only option that applies; the others are verification-specific.
//
// Missing arguments, a missing API key, API rejections and network
// failures are all reported through the result with OK=false; the returned
// error is non-nil only when the response body cannot be decoded.
func (c *Client) SendSMS(ctx context.Context, phoneNumber, text string, opts ...MessageOption) (*SendSMSResult, error) {
	if phoneNumber == "" {
		return &SendSMSResult{Message: MsgNoPhoneNumber}, nil
	}
	if text == "" {
		return &SendSMSResult{Message: MsgNoText}, nil
	}
	if c.APIKey() == "" {
		return &SendSMSResult{Message: MsgNoAPIKey}, nil
	}

	cfg := &messageConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	resp, err := c.apiClient.SendSMS(ctx, &api.SendSMSRequest{
		PhoneNumber:   phoneNumber,
		Text:          text,
		SourceCountry: cfg.sourceCountry,
	})
	if err != nil {
		if msg, ok := failureMessage(err); ok {
			return &SendSMSResult{Message: msg}, nil
		}
		return nil, wrapError(err)
	}

	return &SendSMSResult{
		OK:      resp.OK,
		Queued:  resp.Queued,
		Message: resp.Message,
	}, nil
}
