package textlink

import (
	"context"

	"github.com/textlink-sms/textlink-go/internal/api"
)

// VerifyCodeResult is the outcome of a VerifyCode call.
type VerifyCodeResult struct {
	// OK reports whether the code matched.
	OK bool `json:"ok"`
	// Message is a human-readable description of the outcome.
	Message string `json:"message"`
}

// SendCodeResult is the outcome of a SendVerificationSMS call.
type SendCodeResult struct {
	// OK reports whether the verification SMS was accepted.
	OK bool `json:"ok"`
	// Queued reports whether the message was queued for delivery.
	Queued bool `json:"queued,omitempty"`
	// Code is the generated verification code, when the API returns it.
	Code string `json:"code,omitempty"`
	// Message is a human-readable description of the outcome.
	Message string `json:"message"`
}

// VerifyCode checks a verification code previously sent to phoneNumber
// with SendVerificationSMS.
//
// Missing arguments, a missing API key, API rejections and network
// failures are all reported through the result with OK=false; the returned
// error is non-nil only when the response body cannot be decoded.
func (c *Client) VerifyCode(ctx context.Context, phoneNumber, code string) (*VerifyCodeResult, error) {
	if phoneNumber == "" {
		return &VerifyCodeResult{Message: MsgNoPhoneNumber}, nil
	}
	if code == "" {
		return &VerifyCodeResult{Message: MsgNoCode}, nil
	}
	if c.APIKey() == "" {
		return &VerifyCodeResult{Message: MsgNoAPIKey}, nil
	}

	resp, err := c.apiClient.VerifyCode(ctx, &api.VerifyCodeRequest{
		PhoneNumber: phoneNumber,
		Code:        code,
	})
	if err != nil {
		if msg, ok := failureMessage(err); ok {
			return &VerifyCodeResult{Message: msg}, nil
		}
		return nil, wrapError(err)
	}

	return &VerifyCodeResult{OK: resp.OK, Message: resp.Message}, nil
}

// SendVerificationSMS sends a verification code to phoneNumber. The code
// is generated by the API and later checked with VerifyCode.
//
// Options that are not supplied are sent as JSON null, which the API
// treats as its defaults.
func (c *Client) SendVerificationSMS(ctx context.Context, phoneNumber string, opts ...MessageOption) (*SendCodeResult, error) {
	if phoneNumber == "" {
		return &SendCodeResult{Message: MsgNoPhoneNumber}, nil
	}
	if c.APIKey() == "" {
		return &SendCodeResult{Message: MsgNoAPIKey}, nil
	}

	cfg := &messageConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	resp, err := c.apiClient.SendCode(ctx, &api.SendCodeRequest{
		PhoneNumber:    phoneNumber,
		ServiceName:    cfg.serviceName,
		ExpirationTime: cfg.expirationTime,
		SourceCountry:  cfg.sourceCountry,
	})
	if err != nil {
		if msg, ok := failureMessage(err); ok {
			return &SendCodeResult{Message: msg}, nil
		}
		return nil, wrapError(err)
	}

	return &SendCodeResult{
		OK:      resp.OK,
		Queued:  resp.Queued,
		Code:    resp.Code,
		Message: resp.Message,
	}, nil
}
