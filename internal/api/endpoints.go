package api

import "context"

// VerifyCode checks a verification code.
func (c *Client) VerifyCode(ctx context.Context, req *VerifyCodeRequest) (*VerifyCodeResponse, error) {
	var result VerifyCodeResponse
	if err := c.Post(ctx, "/api/verify-code", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SendCode sends a verification SMS.
func (c *Client) SendCode(ctx context.Context, req *SendCodeRequest) (*SendCodeResponse, error) {
	var result SendCodeResponse
	if err := c.Post(ctx, "/api/send-code", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SendSMS sends a plain text message.
func (c *Client) SendSMS(ctx context.Context, req *SendSMSRequest) (*SendSMSResponse, error) {
	var result SendSMSResponse
	if err := c.Post(ctx, "/api/send-sms", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
